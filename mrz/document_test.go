package mrz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmrtd/sealcodec/testdata"
)

func TestComposeTD1(t *testing.T) {
	t.Run("specimen document matches the published zone", func(t *testing.T) {
		lines, err := NewTD1().MachineReadableZone()
		require.NoError(t, err)
		require.Len(t, lines, 3)
		assert.Equal(t, testdata.TD1Line1, lines[0])
		assert.Equal(t, testdata.TD1Line2, lines[1])
		assert.Equal(t, testdata.TD1Line3, lines[2])
	})

	t.Run("optional data spills onto line 2", func(t *testing.T) {
		doc := NewTD1()
		require.NoError(t, doc.SetOptionalData("ABCDEFGHIJKLMNOPQRS"))
		lines, err := doc.MachineReadableZone()
		require.NoError(t, err)
		assert.Equal(t, "ABCDEFGHIJKLMNO", lines[0][15:30])
		assert.Equal(t, "PQRS<<<<<<<", lines[1][18:29])
	})

	t.Run("gender X renders as filler", func(t *testing.T) {
		doc := NewTD1()
		require.NoError(t, doc.SetGenderMarker("X"))
		lines, err := doc.MachineReadableZone()
		require.NoError(t, err)
		assert.Equal(t, byte('<'), lines[1][7])
	})
}

func TestParseTD1(t *testing.T) {
	t.Run("specimen zone round-trips", func(t *testing.T) {
		doc, err := ParseTD1(testdata.TD1Line1, testdata.TD1Line2, testdata.TD1Line3)
		require.NoError(t, err)
		assert.Equal(t, "I", doc.TypeCode())
		assert.Equal(t, testdata.AuthorityCode, doc.AuthorityCode())
		assert.Equal(t, testdata.TD1Number, doc.Number())
		assert.Equal(t, testdata.FullName, doc.FullName())
		assert.Equal(t, "F", doc.GenderMarker())
		assert.Equal(t, time.Date(1974, time.August, 12, 0, 0, 0, 0, time.UTC), doc.BirthDate())
		assert.Equal(t, time.Date(2012, time.April, 15, 0, 0, 0, 0, time.UTC), doc.ExpirationDate())

		lines, err := doc.MachineReadableZone()
		require.NoError(t, err)
		assert.Equal(t, []string{testdata.TD1Line1, testdata.TD1Line2, testdata.TD1Line3}, lines)
	})

	t.Run("rejects corrupted document number check digit", func(t *testing.T) {
		line1 := []byte(testdata.TD1Line1)
		line1[14] = '0'
		_, err := ParseTD1(string(line1), testdata.TD1Line2, testdata.TD1Line3)
		require.Error(t, err)
		var ierr *IntegrityError
		assert.ErrorAs(t, err, &ierr)
	})

	t.Run("rejects corrupted composite check digit", func(t *testing.T) {
		line2 := []byte(testdata.TD1Line2)
		line2[29] = '0'
		_, err := ParseTD1(testdata.TD1Line1, string(line2), testdata.TD1Line3)
		require.Error(t, err)
		var ierr *IntegrityError
		assert.ErrorAs(t, err, &ierr)
	})

	t.Run("rejects wrong line length", func(t *testing.T) {
		_, err := ParseTD1("I<UTO", testdata.TD1Line2, testdata.TD1Line3)
		require.Error(t, err)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestComposeTD3(t *testing.T) {
	t.Run("specimen passport matches the published zone", func(t *testing.T) {
		lines, err := NewTD3().MachineReadableZone()
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, testdata.TD3Line1, lines[0])
		assert.Equal(t, testdata.TD3Line2, lines[1])
	})

	t.Run("document number check digit sits at offset 9", func(t *testing.T) {
		doc := NewTD3()
		require.NoError(t, doc.SetNumber("362142069"))
		lines, err := doc.MachineReadableZone()
		require.NoError(t, err)
		digit, err := CheckDigit("362142069")
		require.NoError(t, err)
		assert.Equal(t, digit, string(lines[1][9]))
	})
}

func TestParseTD3(t *testing.T) {
	t.Run("specimen zone round-trips", func(t *testing.T) {
		doc, err := ParseTD3(testdata.TD3Line1, testdata.TD3Line2)
		require.NoError(t, err)
		assert.Equal(t, "P", doc.TypeCode())
		assert.Equal(t, testdata.TD3Number, doc.Number())
		assert.Equal(t, testdata.TD3Optional, doc.OptionalData())
		assert.Equal(t, testdata.FullName, doc.FullName())

		lines, err := doc.MachineReadableZone()
		require.NoError(t, err)
		assert.Equal(t, []string{testdata.TD3Line1, testdata.TD3Line2}, lines)
	})

	t.Run("rejects corrupted birth date check digit", func(t *testing.T) {
		line2 := []byte(testdata.TD3Line2)
		line2[19] = '7'
		_, err := ParseTD3(testdata.TD3Line1, string(line2))
		require.Error(t, err)
		var ierr *IntegrityError
		assert.ErrorAs(t, err, &ierr)
	})
}

func TestYearPivot(t *testing.T) {
	t.Run("expand year", func(t *testing.T) {
		assert.Equal(t, 1974, ExpandYear(74))
		assert.Equal(t, 1932, ExpandYear(32))
		assert.Equal(t, 2031, ExpandYear(31))
		assert.Equal(t, 2000, ExpandYear(0))
	})

	t.Run("birth years pivot, expiry years do not", func(t *testing.T) {
		doc := NewTD1()
		require.NoError(t, doc.SetBirthDate(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
		require.NoError(t, doc.SetExpirationDate(time.Date(2035, time.March, 1, 0, 0, 0, 0, time.UTC)))
		lines, err := doc.MachineReadableZone()
		require.NoError(t, err)

		parsed, err := ParseTD1(lines[0], lines[1], lines[2])
		require.NoError(t, err)
		assert.Equal(t, 2025, parsed.BirthDate().Year())
		// 35 is above the pivot, but expiry dates always read as 20xx.
		assert.Equal(t, 2035, parsed.ExpirationDate().Year())
	})
}

func TestDocumentSetters(t *testing.T) {
	doc := NewTD1()

	t.Run("type code", func(t *testing.T) {
		require.NoError(t, doc.SetTypeCode("ac"))
		assert.Equal(t, "AC", doc.TypeCode())
		assert.Error(t, doc.SetTypeCode(""))
		assert.Error(t, doc.SetTypeCode("ABC"))
		assert.Error(t, doc.SetTypeCode("A1"))
	})

	t.Run("authority code", func(t *testing.T) {
		require.NoError(t, doc.SetAuthorityCode("D"))
		assert.Error(t, doc.SetAuthorityCode("ABCD"))
		assert.Error(t, doc.SetAuthorityCode("A-B"))
	})

	t.Run("number", func(t *testing.T) {
		require.NoError(t, doc.SetNumber("X12"))
		assert.Error(t, doc.SetNumber("0123456789"))
	})

	t.Run("gender marker", func(t *testing.T) {
		require.NoError(t, doc.SetGenderMarker("m"))
		assert.Equal(t, "M", doc.GenderMarker())
		assert.Error(t, doc.SetGenderMarker("Q"))
	})

	t.Run("optional data respects the variant limit", func(t *testing.T) {
		td1 := NewTD1()
		require.NoError(t, td1.SetOptionalData("ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
		assert.Error(t, td1.SetOptionalData("ABCDEFGHIJKLMNOPQRSTUVWXYZ1"))

		td3 := NewTD3()
		require.NoError(t, td3.SetOptionalData("ABCDEFGHIJKLMN"))
		assert.Error(t, td3.SetOptionalData("ABCDEFGHIJKLMNO"))
	})

	t.Run("rejected values leave state untouched", func(t *testing.T) {
		fresh := NewTD1()
		before := fresh.Number()
		require.Error(t, fresh.SetNumber("0123456789"))
		assert.Equal(t, before, fresh.Number())
	})
}

func TestTransliteratedName(t *testing.T) {
	doc := NewTD3()
	require.NoError(t, doc.SetFullName("НИКОЛАЕВ, ИВАН/NIKOLAEV, IVAN"))
	lines, err := doc.MachineReadableZone()
	require.NoError(t, err)
	assert.Equal(t, "NIKOLAEV<<IVAN", lines[0][5:19])
}
