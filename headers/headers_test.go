package headers

import (
	"testing"

	"github.com/httpcore-go/httpcore/http/field"
	"github.com/stretchr/testify/require"
)

func TestHeaders_AppendAndStr(t *testing.T) {
	h := New(true)
	require.NoError(t, h.Append(field.Host, "example.com"))
	require.NoError(t, h.AppendName("X-Request-Id", "abc123"))

	require.Equal(t, "Host: example.com\r\nX-Request-Id: abc123\r\n\r\n", h.Str())
	require.Equal(t, 2, h.Size())
}

func TestHeaders_FindExistsCount(t *testing.T) {
	h := New(true)
	require.NoError(t, h.Append(field.Cookie, "a=1"))
	require.NoError(t, h.Append(field.Cookie, "b=2"))

	require.True(t, h.Exists(field.Cookie))
	require.True(t, h.ExistsName("cookie"))
	require.Equal(t, 2, h.Count(field.Cookie))
	require.Equal(t, 2, h.CountName("COOKIE"))

	i, ok := h.Find(field.Cookie)
	require.True(t, ok)
	require.Equal(t, "a=1", h.Value(h.Index(i)))
}

func TestHeaders_ValueByIDAndName(t *testing.T) {
	h := New(true)
	require.NoError(t, h.Append(field.ContentType, "text/plain"))

	v, err := h.ValueByID(field.ContentType)
	require.NoError(t, err)
	require.Equal(t, "text/plain", v)

	_, err = h.ValueByID(field.Host)
	require.Error(t, err)

	require.Equal(t, "text/plain", h.ValueOr(field.ContentType, "fallback"))
	require.Equal(t, "fallback", h.ValueOr(field.Host, "fallback"))
}

func TestHeaders_Matching(t *testing.T) {
	h := New(true)
	require.NoError(t, h.Append(field.Cookie, "a=1"))
	require.NoError(t, h.Append(field.Cookie, "b=2"))
	require.NoError(t, h.Append(field.Host, "example.com"))

	var got []string
	for v := range h.Matching(field.Cookie) {
		got = append(got, v)
	}
	require.Equal(t, []string{"a=1", "b=2"}, got)
}

func TestHeaders_CaseInsensitiveIdentity(t *testing.T) {
	h := New(true)
	require.NoError(t, h.AppendName("hOsT", "example.com"))

	require.True(t, h.Exists(field.Host))
	require.True(t, h.ExistsName("HOST"))
	require.Equal(t, 1, h.Count(field.Host))
}

func TestHeaders_ValidationRejectsBadField(t *testing.T) {
	h := New(true)
	require.Error(t, h.AppendName("Bad Name", "value"))
	require.Error(t, h.AppendName("Good-Name", "bad\x01value"))
}

func TestHeaders_ValidationDisabled(t *testing.T) {
	h := New(false)
	require.NoError(t, h.AppendName("Bad Name", "value"))
}

func TestHeaders_ResizePrefix(t *testing.T) {
	h := New(true)
	require.NoError(t, h.Append(field.Host, "example.com"))

	prefix := h.ResizePrefix(16)
	copy(prefix, "GET / HTTP/1.1\r\n"[:16])

	require.Equal(t, "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n", h.Str())
	require.True(t, h.Exists(field.Host))
	require.Equal(t, "example.com", h.ValueOr(field.Host, ""))
}

func TestHeaders_ClearKeepsCapacity(t *testing.T) {
	h := New(true)
	require.NoError(t, h.Append(field.Host, "example.com"))
	h.Clear()

	require.Equal(t, 0, h.Size())
	require.Equal(t, "\r\n", h.Str())

	require.NoError(t, h.Append(field.Host, "other.com"))
	require.Equal(t, "other.com", h.ValueOr(field.Host, ""))
}

func TestHeaders_Detach(t *testing.T) {
	h := New(true)
	require.NoError(t, h.Append(field.Host, "example.com"))

	clone := h.Detach()
	require.NoError(t, h.Append(field.ContentType, "text/plain"))

	require.Equal(t, 1, clone.Size())
	require.Equal(t, 2, h.Size())
	require.False(t, clone.Exists(field.ContentType))
}

func TestHeaders_ShrinkToFit(t *testing.T) {
	h := New(true)
	h.Reserve(4096)
	require.NoError(t, h.Append(field.Host, "x"))

	h.ShrinkToFit()
	require.Equal(t, "Host: x\r\n\r\n", h.Str())
}
