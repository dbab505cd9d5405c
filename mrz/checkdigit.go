// Package mrz composes and parses the Machine-Readable Zone of ICAO 9303
// travel documents.
//
// The package covers the TD1 (three 30-character lines) and TD3 (two
// 44-character lines) formats, including every embedded check digit. All
// operations are pure transformations over the MRZ alphabet A-Z, 0-9 and the
// filler character '<'.
package mrz

import "fmt"

// checkWeights is the repeating weight cycle applied per character position.
var checkWeights = [3]int{7, 3, 1}

// charValue maps an MRZ character to its checksum value: digits map to
// themselves, letters to 10-35, filler and space to 0.
func charValue(c byte) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, nil
	case c == '<' || c == ' ':
		return 0, nil
	}
	return 0, &ValidationError{Field: "mrz data", Msg: fmt.Sprintf("character %q outside the MRZ alphabet", c)}
}

// CheckDigit computes the ICAO 9303 weighted mod-10 check digit of s.
// Any character outside the MRZ alphabet is an error.
func CheckDigit(s string) (string, error) {
	sum := 0
	for i := 0; i < len(s); i++ {
		v, err := charValue(s[i])
		if err != nil {
			return "", fmt.Errorf("failed to compute check digit: %w", err)
		}
		sum += v * checkWeights[i%3]
	}
	return string(rune('0' + sum%10)), nil
}

// VerifyCheckDigit recomputes the check digit of data and compares it against
// the digit found in parsed input, returning an IntegrityError on mismatch.
func VerifyCheckDigit(field, data string, found byte) error {
	want, err := CheckDigit(data)
	if err != nil {
		return err
	}
	if want != string(found) {
		return &IntegrityError{Field: field, Expected: want, Actual: string(found)}
	}
	return nil
}
