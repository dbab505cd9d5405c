package mrz

import (
	"fmt"
	"strings"
	"time"
)

// Format selects the physical document class and with it the MRZ shape.
type Format int

const (
	// TD1 documents are credit-card sized and carry three 30-character lines.
	TD1 Format = iota + 1
	// TD3 documents are passport books and carry two 44-character lines.
	TD3
)

const (
	td1LineLength = 30
	td3LineLength = 44

	td1OptionalMax = 26
	td3OptionalMax = 14
)

// YearPivot disambiguates two-digit years read back from an MRZ: values at or
// above the pivot belong to the 1900s, values below it to the 2000s. The
// pivot is a policy, not part of the standard; it is applied uniformly on
// every parse path.
const YearPivot = 32

// ExpandYear converts a two-digit birth or expiry year to a full year using
// YearPivot.
func ExpandYear(yy int) int {
	if yy >= YearPivot {
		return 1900 + yy
	}
	return 2000 + yy
}

// Document holds the textual identity fields of a travel document. Fields are
// mutated through validating setters only; the machine-readable zone is
// derived on demand, never stored.
type Document struct {
	format          Format
	typeCode        string
	authorityCode   string
	number          string
	birthDate       time.Time
	expirationDate  time.Time
	genderMarker    string
	nationalityCode string
	fullName        string
	optionalData    string
}

// NewTD1 returns a TD1 document pre-filled with the ICAO 9303 specimen data,
// so a freshly constructed document always composes a valid zone.
func NewTD1() *Document {
	return &Document{
		format:          TD1,
		typeCode:        "I",
		authorityCode:   "UTO",
		number:          "D23145890",
		birthDate:       time.Date(1974, time.August, 12, 0, 0, 0, 0, time.UTC),
		expirationDate:  time.Date(2012, time.April, 15, 0, 0, 0, 0, time.UTC),
		genderMarker:    "F",
		nationalityCode: "UTO",
		fullName:        "ERIKSSON, ANNA MARIA",
	}
}

// NewTD3 returns a TD3 document pre-filled with the ICAO 9303 specimen data.
func NewTD3() *Document {
	return &Document{
		format:          TD3,
		typeCode:        "P",
		authorityCode:   "UTO",
		number:          "L898902C3",
		birthDate:       time.Date(1974, time.August, 12, 0, 0, 0, 0, time.UTC),
		expirationDate:  time.Date(2012, time.April, 15, 0, 0, 0, 0, time.UTC),
		genderMarker:    "F",
		nationalityCode: "UTO",
		fullName:        "ERIKSSON, ANNA MARIA",
		optionalData:    "ZE184226B",
	}
}

// Format returns the document class.
func (d *Document) Format() Format { return d.format }

// TypeCode returns the one or two letter document type.
func (d *Document) TypeCode() string { return d.typeCode }

// SetTypeCode sets the document type: one or two letters.
func (d *Document) SetTypeCode(code string) error {
	code = strings.ToUpper(code)
	if len(code) < 1 || len(code) > 2 {
		return &ValidationError{Field: "type code", Msg: "must be 1 or 2 characters"}
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return &ValidationError{Field: "type code", Msg: "must contain letters only"}
		}
	}
	d.typeCode = code
	return nil
}

// AuthorityCode returns the issuing authority code.
func (d *Document) AuthorityCode() string { return d.authorityCode }

// SetAuthorityCode sets the issuing authority: up to 3 characters from the
// MRZ alphabet.
func (d *Document) SetAuthorityCode(code string) error {
	code = strings.ToUpper(code)
	if len(code) > 3 || !validField(code) {
		return &ValidationError{Field: "authority code", Msg: "must be at most 3 characters A-Z, 0-9, space or <"}
	}
	d.authorityCode = code
	return nil
}

// Number returns the document number.
func (d *Document) Number() string { return d.number }

// SetNumber sets the document number: up to 9 characters from the MRZ
// alphabet.
func (d *Document) SetNumber(number string) error {
	number = strings.ToUpper(number)
	if len(number) > 9 || !validField(number) {
		return &ValidationError{Field: "document number", Msg: "must be at most 9 characters A-Z, 0-9, space or <"}
	}
	d.number = number
	return nil
}

// BirthDate returns the holder's date of birth.
func (d *Document) BirthDate() time.Time { return d.birthDate }

// SetBirthDate sets the holder's date of birth.
func (d *Document) SetBirthDate(t time.Time) error {
	if t.IsZero() {
		return &ValidationError{Field: "birth date", Msg: "must not be zero"}
	}
	d.birthDate = t
	return nil
}

// ExpirationDate returns the document expiry date.
func (d *Document) ExpirationDate() time.Time { return d.expirationDate }

// SetExpirationDate sets the document expiry date.
func (d *Document) SetExpirationDate(t time.Time) error {
	if t.IsZero() {
		return &ValidationError{Field: "expiration date", Msg: "must not be zero"}
	}
	d.expirationDate = t
	return nil
}

// GenderMarker returns the holder's gender marker: F, M or X.
func (d *Document) GenderMarker() string { return d.genderMarker }

// SetGenderMarker sets the gender marker. X renders as '<' in the zone.
func (d *Document) SetGenderMarker(marker string) error {
	marker = strings.ToUpper(marker)
	switch marker {
	case "F", "M", "X":
		d.genderMarker = marker
		return nil
	}
	return &ValidationError{Field: "gender marker", Msg: "must be F, M or X"}
}

// NationalityCode returns the holder's nationality code.
func (d *Document) NationalityCode() string { return d.nationalityCode }

// SetNationalityCode sets the nationality: up to 3 characters from the MRZ
// alphabet.
func (d *Document) SetNationalityCode(code string) error {
	code = strings.ToUpper(code)
	if len(code) > 3 || !validField(code) {
		return &ValidationError{Field: "nationality code", Msg: "must be at most 3 characters A-Z, 0-9, space or <"}
	}
	d.nationalityCode = code
	return nil
}

// FullName returns the holder's name as "PRIMARY, SECONDARY", optionally
// followed by "/TRANSLITERATION".
func (d *Document) FullName() string { return d.fullName }

// SetFullName sets the holder's name. The primary identifier comes before
// ", ", an optional transliterated form after "/"; the transliterated form,
// when present, is the one written into the zone.
func (d *Document) SetFullName(name string) error {
	if name == "" {
		return &ValidationError{Field: "full name", Msg: "must not be empty"}
	}
	d.fullName = name
	return nil
}

// OptionalData returns the free-form optional field.
func (d *Document) OptionalData() string { return d.optionalData }

// SetOptionalData sets the optional field: up to 26 characters on TD1, up to
// 14 on TD3.
func (d *Document) SetOptionalData(data string) error {
	data = strings.ToUpper(data)
	limit := td1OptionalMax
	if d.format == TD3 {
		limit = td3OptionalMax
	}
	if len(data) > limit || !validField(data) {
		return &ValidationError{Field: "optional data", Msg: fmt.Sprintf("must be at most %d characters A-Z, 0-9, space or <", limit)}
	}
	d.optionalData = data
	return nil
}

// MachineReadableZone derives the MRZ lines from the current field values:
// three lines for TD1, two for TD3.
func (d *Document) MachineReadableZone() ([]string, error) {
	switch d.format {
	case TD1:
		return d.composeTD1()
	case TD3:
		return d.composeTD3()
	}
	return nil, &ValidationError{Field: "format", Msg: "unknown document format"}
}

// mrzName returns the name field content: the transliterated form when one is
// present, primary and secondary identifiers joined by '<<'.
func (d *Document) mrzName() string {
	name := d.fullName
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	primary, secondary, _ := strings.Cut(name, ", ")
	field := Normalize(primary)
	if secondary != "" {
		field += "<<" + Normalize(secondary)
	}
	return field
}

// mrzGender renders the gender marker for the zone: X becomes filler.
func (d *Document) mrzGender() string {
	if d.genderMarker == "X" {
		return "<"
	}
	return d.genderMarker
}

// parseName splits a decoded name field back into "PRIMARY, SECONDARY" form.
func parseName(field string) string {
	field = trimFiller(field)
	primary, secondary, found := strings.Cut(field, "<<")
	name := strings.ReplaceAll(primary, "<", " ")
	if found && secondary != "" {
		name += ", " + strings.ReplaceAll(secondary, "<", " ")
	}
	return name
}

// parseGender maps a zone gender character back to the stored marker.
func parseGender(c byte) (string, error) {
	switch c {
	case 'F':
		return "F", nil
	case 'M':
		return "M", nil
	case '<':
		return "X", nil
	}
	return "", &ValidationError{Field: "gender marker", Msg: fmt.Sprintf("unexpected character %q", c)}
}

// parseMRZDate converts a YYMMDD run into a date, expanding the two-digit
// year. pivot selects whether ExpandYear applies (birth dates) or the 2000s
// are assumed outright (expiry dates).
func parseMRZDate(field, s string, pivot bool) (time.Time, error) {
	if len(s) != 6 {
		return time.Time{}, &ValidationError{Field: field, Msg: "must be 6 digits"}
	}
	var yy, mm, dd int
	if _, err := fmt.Sscanf(s, "%2d%2d%2d", &yy, &mm, &dd); err != nil {
		return time.Time{}, &ValidationError{Field: field, Msg: fmt.Sprintf("malformed date %q", s)}
	}
	if mm < 1 || mm > 12 || dd < 1 || dd > 31 {
		return time.Time{}, &ValidationError{Field: field, Msg: fmt.Sprintf("impossible date %q", s)}
	}
	year := 2000 + yy
	if pivot {
		year = ExpandYear(yy)
	}
	return time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, time.UTC), nil
}

const mrzDateLayout = "060102"
