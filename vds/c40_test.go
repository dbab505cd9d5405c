package vds

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestC40Encode(t *testing.T) {
	t.Run("known vector", func(t *testing.T) {
		b, err := C40Encode("XK CD")
		require.NoError(t, err)
		assert.Equal(t, []byte{0xEB, 0x04, 0x66, 0xA9}, b)
	})

	t.Run("full triple", func(t *testing.T) {
		// U=34, T=33, O=28: 1600*34 + 40*33 + 28 + 1 = 55749 = 0xD9C5.
		b, err := C40Encode("UTO")
		require.NoError(t, err)
		assert.Equal(t, []byte{0xD9, 0xC5}, b)
	})

	t.Run("single leftover character escapes to ASCII mode", func(t *testing.T) {
		b, err := C40Encode("ABCD")
		require.NoError(t, err)
		require.Len(t, b, 4)
		assert.Equal(t, byte(0xFE), b[2])
		assert.Equal(t, byte('D'+1), b[3])
	})

	t.Run("empty input", func(t *testing.T) {
		b, err := C40Encode("")
		require.NoError(t, err)
		assert.Empty(t, b)
	})

	t.Run("space and filler encode alike", func(t *testing.T) {
		withSpace, err := C40Encode("A B")
		require.NoError(t, err)
		withFiller, err := C40Encode("A<B")
		require.NoError(t, err)
		assert.Equal(t, withSpace, withFiller)
	})

	t.Run("rejects characters outside the alphabet", func(t *testing.T) {
		_, err := C40Encode("a*c")
		require.Error(t, err)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestC40Decode(t *testing.T) {
	t.Run("decode is the inverse of encode", func(t *testing.T) {
		alphabet := "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789<"
		for length := 0; length <= 60; length++ {
			var sb strings.Builder
			for i := 0; i < length; i++ {
				sb.WriteByte(alphabet[(i*7+length)%len(alphabet)])
			}
			s := sb.String()
			encoded, err := C40Encode(s)
			require.NoError(t, err)
			decoded, err := C40Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, s, decoded, "length %d", length)
		}
	})

	t.Run("space decodes to filler", func(t *testing.T) {
		encoded, err := C40Encode("XK CD")
		require.NoError(t, err)
		decoded, err := C40Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, "XK<CD", decoded)
	})

	t.Run("rejects odd byte count", func(t *testing.T) {
		_, err := C40Decode([]byte{0xEB})
		require.Error(t, err)
		var lerr *LengthMismatchError
		assert.ErrorAs(t, err, &lerr)
	})

	t.Run("rejects truncated escape", func(t *testing.T) {
		_, err := C40Decode([]byte{0xEB, 0x04, 0xFE})
		require.Error(t, err)
	})

	t.Run("rejects out-of-range ASCII code", func(t *testing.T) {
		_, err := C40Decode([]byte{0xFE, 0x20})
		require.Error(t, err)
		var ferr *FormatError
		assert.ErrorAs(t, err, &ferr)
	})
}
