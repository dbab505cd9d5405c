package mrz

import "fmt"

// composeTD3 derives the two 44-character lines of a TD3 zone.
func (d *Document) composeTD3() ([]string, error) {
	line1 := Pad(Normalize(d.typeCode), 2) + Pad(Normalize(d.authorityCode), 3) + Pad(d.mrzName(), 39)

	number := Pad(d.number, 9)
	numberCheck, err := CheckDigit(number)
	if err != nil {
		return nil, fmt.Errorf("failed to compose td3 line 2: %w", err)
	}
	birth := d.birthDate.Format(mrzDateLayout)
	birthCheck, err := CheckDigit(birth)
	if err != nil {
		return nil, fmt.Errorf("failed to compose td3 line 2: %w", err)
	}
	expiry := d.expirationDate.Format(mrzDateLayout)
	expiryCheck, err := CheckDigit(expiry)
	if err != nil {
		return nil, fmt.Errorf("failed to compose td3 line 2: %w", err)
	}
	optional := Pad(d.optionalData, td3OptionalMax)
	optionalCheck, err := CheckDigit(optional)
	if err != nil {
		return nil, fmt.Errorf("failed to compose td3 line 2: %w", err)
	}
	line2 := number + numberCheck + Pad(Normalize(d.nationalityCode), 3) +
		birth + birthCheck + d.mrzGender() + expiry + expiryCheck +
		optional + optionalCheck

	composite, err := CheckDigit(line2[0:10] + line2[13:20] + line2[21:43])
	if err != nil {
		return nil, fmt.Errorf("failed to compose td3 composite check digit: %w", err)
	}
	line2 += composite
	return []string{line1, line2}, nil
}

// ParseTD3 reconstructs a document from the two lines of a TD3 zone,
// verifying every embedded check digit.
func ParseTD3(line1, line2 string) (*Document, error) {
	for i, line := range []string{line1, line2} {
		if len(line) != td3LineLength {
			return nil, &ValidationError{Field: "td3 zone", Msg: fmt.Sprintf("line %d must be %d characters, got %d", i+1, td3LineLength, len(line))}
		}
		if !validField(line) {
			return nil, &ValidationError{Field: "td3 zone", Msg: fmt.Sprintf("line %d contains characters outside the MRZ alphabet", i+1)}
		}
	}
	if err := VerifyCheckDigit("document number", line2[0:9], line2[9]); err != nil {
		return nil, err
	}
	if err := VerifyCheckDigit("birth date", line2[13:19], line2[19]); err != nil {
		return nil, err
	}
	if err := VerifyCheckDigit("expiration date", line2[21:27], line2[27]); err != nil {
		return nil, err
	}
	if err := VerifyCheckDigit("optional data", line2[28:42], line2[42]); err != nil {
		return nil, err
	}
	if err := VerifyCheckDigit("composite", line2[0:10]+line2[13:20]+line2[21:43], line2[43]); err != nil {
		return nil, err
	}

	doc := &Document{format: TD3}
	if err := doc.SetTypeCode(trimFiller(line1[0:2])); err != nil {
		return nil, err
	}
	if err := doc.SetAuthorityCode(trimFiller(line1[2:5])); err != nil {
		return nil, err
	}
	if err := doc.SetFullName(parseName(line1[5:44])); err != nil {
		return nil, err
	}
	if err := doc.SetNumber(trimFiller(line2[0:9])); err != nil {
		return nil, err
	}
	if err := doc.SetNationalityCode(trimFiller(line2[10:13])); err != nil {
		return nil, err
	}
	birth, err := parseMRZDate("birth date", line2[13:19], true)
	if err != nil {
		return nil, err
	}
	doc.birthDate = birth
	gender, err := parseGender(line2[20])
	if err != nil {
		return nil, err
	}
	doc.genderMarker = gender
	expiry, err := parseMRZDate("expiration date", line2[21:27], false)
	if err != nil {
		return nil, err
	}
	doc.expirationDate = expiry
	if err := doc.SetOptionalData(trimFiller(line2[28:42])); err != nil {
		return nil, err
	}
	return doc, nil
}
