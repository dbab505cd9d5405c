package mrz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDigit(t *testing.T) {
	t.Run("known vector", func(t *testing.T) {
		digit, err := CheckDigit("362142069")
		require.NoError(t, err)
		require.Equal(t, "9", digit)
	})

	t.Run("filler and space count as zero", func(t *testing.T) {
		withFiller, err := CheckDigit("D23145890<<<")
		require.NoError(t, err)
		withSpace, err := CheckDigit("D23145890   ")
		require.NoError(t, err)
		require.Equal(t, withFiller, withSpace)
	})

	t.Run("specimen document number", func(t *testing.T) {
		digit, err := CheckDigit("D23145890")
		require.NoError(t, err)
		require.Equal(t, "7", digit)
	})

	t.Run("empty input", func(t *testing.T) {
		digit, err := CheckDigit("")
		require.NoError(t, err)
		require.Equal(t, "0", digit)
	})

	t.Run("rejects characters outside the alphabet", func(t *testing.T) {
		_, err := CheckDigit("AB-CD")
		require.Error(t, err)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("rejects lowercase", func(t *testing.T) {
		_, err := CheckDigit("abc")
		require.Error(t, err)
	})
}

func TestVerifyCheckDigit(t *testing.T) {
	t.Run("accepts matching digit", func(t *testing.T) {
		require.NoError(t, VerifyCheckDigit("document number", "362142069", '9'))
	})

	t.Run("rejects mismatch with IntegrityError", func(t *testing.T) {
		err := VerifyCheckDigit("document number", "362142069", '3')
		require.Error(t, err)
		var ierr *IntegrityError
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, "9", ierr.Expected)
		assert.Equal(t, "3", ierr.Actual)
	})
}
