package mrz

import "fmt"

// composeTD1 derives the three 30-character lines of a TD1 zone.
func (d *Document) composeTD1() ([]string, error) {
	number := Pad(d.number, 9)
	numberCheck, err := CheckDigit(number)
	if err != nil {
		return nil, fmt.Errorf("failed to compose td1 line 1: %w", err)
	}
	optional := Pad(d.optionalData, td1OptionalMax)
	line1 := Pad(Normalize(d.typeCode), 2) + Pad(Normalize(d.authorityCode), 3) + number + numberCheck + optional[:15]

	birth := d.birthDate.Format(mrzDateLayout)
	birthCheck, err := CheckDigit(birth)
	if err != nil {
		return nil, fmt.Errorf("failed to compose td1 line 2: %w", err)
	}
	expiry := d.expirationDate.Format(mrzDateLayout)
	expiryCheck, err := CheckDigit(expiry)
	if err != nil {
		return nil, fmt.Errorf("failed to compose td1 line 2: %w", err)
	}
	line2 := birth + birthCheck + d.mrzGender() + expiry + expiryCheck + Pad(Normalize(d.nationalityCode), 3) + optional[15:]

	composite, err := CheckDigit(line1[5:30] + line2[0:7] + line2[8:15] + line2[18:29])
	if err != nil {
		return nil, fmt.Errorf("failed to compose td1 composite check digit: %w", err)
	}
	line2 += composite

	line3 := Pad(d.mrzName(), td1LineLength)
	return []string{line1, line2, line3}, nil
}

// ParseTD1 reconstructs a document from the three lines of a TD1 zone,
// verifying every embedded check digit.
func ParseTD1(line1, line2, line3 string) (*Document, error) {
	for i, line := range []string{line1, line2, line3} {
		if len(line) != td1LineLength {
			return nil, &ValidationError{Field: "td1 zone", Msg: fmt.Sprintf("line %d must be %d characters, got %d", i+1, td1LineLength, len(line))}
		}
		if !validField(line) {
			return nil, &ValidationError{Field: "td1 zone", Msg: fmt.Sprintf("line %d contains characters outside the MRZ alphabet", i+1)}
		}
	}
	if err := VerifyCheckDigit("document number", line1[5:14], line1[14]); err != nil {
		return nil, err
	}
	if err := VerifyCheckDigit("birth date", line2[0:6], line2[6]); err != nil {
		return nil, err
	}
	if err := VerifyCheckDigit("expiration date", line2[8:14], line2[14]); err != nil {
		return nil, err
	}
	if err := VerifyCheckDigit("composite", line1[5:30]+line2[0:7]+line2[8:15]+line2[18:29], line2[29]); err != nil {
		return nil, err
	}

	doc := &Document{format: TD1}
	if err := doc.SetTypeCode(trimFiller(line1[0:2])); err != nil {
		return nil, err
	}
	if err := doc.SetAuthorityCode(trimFiller(line1[2:5])); err != nil {
		return nil, err
	}
	if err := doc.SetNumber(trimFiller(line1[5:14])); err != nil {
		return nil, err
	}
	if err := doc.SetOptionalData(trimFiller(line1[15:30] + line2[18:29])); err != nil {
		return nil, err
	}
	birth, err := parseMRZDate("birth date", line2[0:6], true)
	if err != nil {
		return nil, err
	}
	doc.birthDate = birth
	gender, err := parseGender(line2[7])
	if err != nil {
		return nil, err
	}
	doc.genderMarker = gender
	expiry, err := parseMRZDate("expiration date", line2[8:14], false)
	if err != nil {
		return nil, err
	}
	doc.expirationDate = expiry
	if err := doc.SetNationalityCode(trimFiller(line2[15:18])); err != nil {
		return nil, err
	}
	if err := doc.SetFullName(parseName(line3)); err != nil {
		return nil, err
	}
	return doc, nil
}
