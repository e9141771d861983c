package hexconv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHalfbyte(t *testing.T) {
	require.Equal(t, byte(0), Halfbyte['0'])
	require.Equal(t, byte(9), Halfbyte['9'])
	require.Equal(t, byte(0xa), Halfbyte['a'])
	require.Equal(t, byte(0xf), Halfbyte['f'])
	require.Equal(t, byte(0xA), Halfbyte['A'])
	require.Equal(t, byte(0xF), Halfbyte['F'])
	require.Equal(t, byte(0xFF), Halfbyte['g'])
	require.Equal(t, byte(0xFF), Halfbyte[' '])
}

func benchLocal(b *testing.B, str string) {
	b.SetBytes(int64(len(str)))
	b.ResetTimer()

	for range b.N {
		var result uint64

		for j := range str {
			result = (result << 4) | uint64(Halfbyte[str[j]])
		}
	}
}

func BenchmarkHalfbyte(b *testing.B) {
	b.Run("short", func(b *testing.B) {
		benchLocal(b, "123456789abcdef")
	})

	b.Run("long", func(b *testing.B) {
		benchLocal(b, strings.Repeat("123456789abcdef", 100))
	})
}
