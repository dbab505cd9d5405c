package mrz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("uppercases", func(t *testing.T) {
		require.Equal(t, "ERIKSSON", Normalize("Eriksson"))
	})

	t.Run("maps spaces and punctuation to filler", func(t *testing.T) {
		require.Equal(t, "ANNA<MARIA", Normalize("Anna Maria"))
		require.Equal(t, "O<CONNOR", Normalize("O'Connor"))
	})

	t.Run("keeps digits and filler", func(t *testing.T) {
		require.Equal(t, "D23145890<", Normalize("D23145890<"))
	})

	t.Run("maps non-ascii to filler", func(t *testing.T) {
		require.Equal(t, "M<LLER", Normalize("MÜLLER"))
	})
}

func TestPad(t *testing.T) {
	t.Run("right-fills with filler", func(t *testing.T) {
		require.Equal(t, "UTO<<", Pad("UTO", 5))
	})

	t.Run("exact width passes through", func(t *testing.T) {
		require.Equal(t, "UTO", Pad("UTO", 3))
	})

	t.Run("truncates longer input", func(t *testing.T) {
		// Truncation is intentional data loss: the printed field has a fixed
		// width, so overflow is dropped.
		require.Equal(t, "ABCDE", Pad("ABCDEFGH", 5))
	})

	t.Run("zero width", func(t *testing.T) {
		require.Equal(t, "", Pad("", 0))
	})
}
