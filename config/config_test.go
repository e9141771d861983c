package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Equal(t, 8*1024, cfg.HeaderLimit)
	require.Equal(t, 0, cfg.BodyLimit)
	require.Equal(t, Request, cfg.Variant)
	require.True(t, cfg.ValidateFieldCharacters)
}

func TestVariant_Override(t *testing.T) {
	cfg := Default()
	cfg.Variant = Response

	require.Equal(t, Response, cfg.Variant)
}
