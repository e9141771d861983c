package strutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLStripWS(t *testing.T) {
	require.Equal(t, "abc", LStripWS("  \tabc"))
	require.Equal(t, "", LStripWS("   "))
	require.Equal(t, "abc", LStripWS("abc"))
}

func TestRStripWS(t *testing.T) {
	require.Equal(t, "abc", RStripWS("abc  \t"))
	require.Equal(t, "", RStripWS("   "))
	require.Equal(t, "abc", RStripWS("abc"))
}
