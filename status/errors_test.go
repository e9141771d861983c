package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPError(t *testing.T) {
	require.Equal(t, "malformed header field name", ErrBadField.Error())
	require.Equal(t, HeaderFieldsTooLarge, ErrHeaderLimit.Code)
	require.True(t, errors.Is(ErrBadChunk, ErrBadChunk))
}
