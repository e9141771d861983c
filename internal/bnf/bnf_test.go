package bnf

import (
	"testing"

	"github.com/httpcore-go/httpcore/internal/charset"
	"github.com/stretchr/testify/require"
)

// token is a minimal Element matching one RFC 7230 token.
type token struct{}

func (token) Parse(data []byte) (next int, st Status, err error) {
	if len(data) == 0 {
		return 0, NeedMore, nil
	}

	i := 0
	for i < len(data) && charset.IsTchar(data[i]) {
		i++
	}
	if i == 0 {
		return 0, OK, nil
	}

	return i, End, nil
}

// commaList is a minimal List matching "token *( OWS "," OWS token )".
type commaList struct{}

func (commaList) Begin(data []byte) (next int, st Status, err error) {
	return commaList{}.Increment(data, 0)
}

func (commaList) Increment(data []byte, pos int) (next int, st Status, err error) {
	for pos < len(data) && (data[pos] == ' ' || data[pos] == ',') {
		pos++
	}
	if pos >= len(data) {
		return pos, End, nil
	}

	n, tst, terr := (token{}).Parse(data[pos:])
	if terr != nil {
		return 0, OK, terr
	}
	if tst != End {
		return 0, OK, nil
	}

	return pos + n, OK, nil
}

func TestConsume(t *testing.T) {
	t.Run("matches a full token", func(t *testing.T) {
		next, st, err := Consume(token{}, []byte("gzip"))
		require.NoError(t, err)
		require.Equal(t, End, st)
		require.Equal(t, 4, next)
	})

	t.Run("need more leaves start untouched", func(t *testing.T) {
		next, _, err := Consume(token{}, []byte(""))
		require.NoError(t, err)
		require.Equal(t, 0, next)
	})
}

func TestConsumeList(t *testing.T) {
	t.Run("matches a comma separated list", func(t *testing.T) {
		next, st, err := ConsumeList(commaList{}, []byte("gzip, chunked, identity"))
		require.NoError(t, err)
		require.Equal(t, End, st)
		require.Equal(t, len("gzip, chunked, identity"), next)
	})

	t.Run("empty input ends immediately", func(t *testing.T) {
		next, st, err := ConsumeList(commaList{}, []byte(""))
		require.NoError(t, err)
		require.Equal(t, End, st)
		require.Equal(t, 0, next)
	})
}

func TestIsValid(t *testing.T) {
	require.True(t, IsValid(token{}, []byte("gzip")))
	require.False(t, IsValid(token{}, []byte("gzip;q=1")))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(token{}, []byte("gzip")))
	require.Error(t, Validate(token{}, []byte("")))
}
