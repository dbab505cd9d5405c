// Package testdata provides shared sample values for use across all test
// packages. The MRZ lines are the ICAO 9303 specimen documents, so every
// check digit in them is authoritative.
package testdata

// TD1 specimen identity card.
const (
	TD1Line1 = "I<UTOD231458907<<<<<<<<<<<<<<<"
	TD1Line2 = "7408122F1204159UTO<<<<<<<<<<<6"
	TD1Line3 = "ERIKSSON<<ANNA<MARIA<<<<<<<<<<"
)

// TD3 specimen passport.
const (
	TD3Line1 = "P<UTOERIKSSON<<ANNA<MARIA<<<<<<<<<<<<<<<<<<<"
	TD3Line2 = "L898902C36UTO7408122F1204159ZE184226B<<<<<10"
)

// Specimen field values shared by both documents.
const (
	AuthorityCode   = "UTO"
	NationalityCode = "UTO"
	FullName        = "ERIKSSON, ANNA MARIA"
	TD1Number       = "D23145890"
	TD3Number       = "L898902C3"
	TD3Optional     = "ZE184226B"
)
