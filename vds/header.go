package vds

import (
	"fmt"
	"strconv"
)

// padAuthority fills the authority code to the 3 characters the header
// always encodes.
func padAuthority(code string) string {
	for len(code) < 3 {
		code += "<"
	}
	return code
}

// certBlock returns the C40 character run carrying the signer identifier and
// certificate reference. V3 appends the fixed 5-character reference directly;
// V4 inserts the reference length as two hex characters first.
func (s *Seal) certBlock() string {
	if s.version == V3 {
		return s.identifierCode + s.certReference
	}
	return s.identifierCode + fmt.Sprintf("%02X", len(s.certReference)) + s.certReference
}

// HeaderZone derives the header bytes from the seal state.
func (s *Seal) HeaderZone() ([]byte, error) {
	authority, err := C40Encode(padAuthority(s.authorityCode))
	if err != nil {
		return nil, fmt.Errorf("failed to compose header zone: %w", err)
	}
	cert, err := C40Encode(s.certBlock())
	if err != nil {
		return nil, fmt.Errorf("failed to compose header zone: %w", err)
	}
	issue := EncodeDate(s.issueDate)
	signature := EncodeDate(s.signatureDate)

	out := make([]byte, 0, 4+len(authority)+len(cert)+8)
	out = append(out, sealMagic, byte(s.version))
	out = append(out, authority...)
	out = append(out, cert...)
	out = append(out, issue[:]...)
	out = append(out, signature[:]...)
	out = append(out, byte(s.featureDefinition), byte(s.typeCategory))
	return out, nil
}

// c40BlockBytes returns how many bytes a C40 run of n characters occupies.
func c40BlockBytes(n int) int {
	return (n + 2) / 3 * 2
}

// parseHeader decodes a header from the front of b into scratch, returning
// the number of bytes consumed. scratch.version must already be set; a
// version byte that does not match it fails fast.
func (s *Seal) parseHeader(b []byte) (*Seal, int, error) {
	if len(b) < 2 {
		return nil, 0, &LengthMismatchError{Declared: 2, Actual: len(b)}
	}
	if b[0] != sealMagic {
		return nil, 0, &FormatError{Msg: fmt.Sprintf("magic byte %#x, want %#x", b[0], sealMagic)}
	}
	if b[1] != byte(s.version) {
		return nil, 0, &FormatError{Msg: fmt.Sprintf("version byte %#x, want %#x", b[1], byte(s.version))}
	}

	scratch := s.Clone()
	if len(b) < 4 {
		return nil, 0, &LengthMismatchError{Declared: 4, Actual: len(b)}
	}
	authority, err := C40Decode(b[2:4])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse header authority: %w", err)
	}
	if err := scratch.SetAuthorityCode(trimHeaderFiller(authority)); err != nil {
		return nil, 0, err
	}

	certBytes, identifier, reference, err := s.parseCertBlock(b[4:])
	if err != nil {
		return nil, 0, err
	}
	if err := scratch.SetIdentifierCode(identifier); err != nil {
		return nil, 0, err
	}
	if err := scratch.SetCertReference(reference); err != nil {
		return nil, 0, err
	}

	offset := 4 + certBytes
	if len(b) < offset+8 {
		return nil, 0, &LengthMismatchError{Declared: offset + 8, Actual: len(b)}
	}
	issue, err := DecodeDate(b[offset : offset+3])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse header issue date: %w", err)
	}
	signature, err := DecodeDate(b[offset+3 : offset+6])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse header signature date: %w", err)
	}
	scratch.issueDate = issue
	scratch.signatureDate = signature
	if err := scratch.SetFeatureDefinition(int(b[offset+6])); err != nil {
		return nil, 0, &FormatError{Msg: fmt.Sprintf("feature definition byte %#x out of range", b[offset+6])}
	}
	if err := scratch.SetTypeCategory(int(b[offset+7])); err != nil {
		return nil, 0, &FormatError{Msg: fmt.Sprintf("type category byte %#x out of range", b[offset+7])}
	}
	return scratch, offset + 8, nil
}

// parseCertBlock decodes the signer identifier and certificate reference,
// returning the byte width of the block. For V3 the block is a fixed 6 bytes
// of 9 characters; for V4 the reference length is read from the two hex
// characters after the identifier.
func (s *Seal) parseCertBlock(b []byte) (consumed int, identifier, reference string, err error) {
	if s.version == V3 {
		if len(b) < 6 {
			return 0, "", "", &LengthMismatchError{Declared: 6, Actual: len(b)}
		}
		chars, err := C40Decode(b[:6])
		if err != nil {
			return 0, "", "", fmt.Errorf("failed to parse header cert block: %w", err)
		}
		if len(chars) < 9 {
			return 0, "", "", &FormatError{Msg: "cert block too short"}
		}
		return 6, chars[0:4], chars[4:9], nil
	}

	if len(b) < 4 {
		return 0, "", "", &LengthMismatchError{Declared: 4, Actual: len(b)}
	}
	head, err := C40Decode(b[:4])
	if err != nil {
		return 0, "", "", fmt.Errorf("failed to parse header cert block: %w", err)
	}
	if len(head) < 6 {
		return 0, "", "", &FormatError{Msg: "cert block too short"}
	}
	refLen64, err := strconv.ParseUint(head[4:6], 16, 8)
	if err != nil {
		return 0, "", "", &FormatError{Msg: fmt.Sprintf("cert reference length %q is not hex", head[4:6])}
	}
	refLen := int(refLen64)
	width := c40BlockBytes(6 + refLen)
	if len(b) < width {
		return 0, "", "", &LengthMismatchError{Declared: width, Actual: len(b)}
	}
	chars, err := C40Decode(b[:width])
	if err != nil {
		return 0, "", "", fmt.Errorf("failed to parse header cert block: %w", err)
	}
	if len(chars) < 6+refLen {
		return 0, "", "", &FormatError{Msg: "cert block too short"}
	}
	return width, chars[0:4], chars[6 : 6+refLen], nil
}

// trimHeaderFiller strips trailing filler from a decoded header field.
func trimHeaderFiller(s string) string {
	for len(s) > 0 && s[len(s)-1] == '<' {
		s = s[:len(s)-1]
	}
	return s
}

// SetHeaderZone parses b as a complete header zone and, on success, replaces
// every header field atomically.
func (s *Seal) SetHeaderZone(b []byte) error {
	scratch, consumed, err := s.parseHeader(b)
	if err != nil {
		return err
	}
	if consumed != len(b) {
		return &LengthMismatchError{Declared: consumed, Actual: len(b)}
	}
	s.commitHeader(scratch)
	return nil
}

// commitHeader copies the header fields of scratch into s.
func (s *Seal) commitHeader(scratch *Seal) {
	s.authorityCode = scratch.authorityCode
	s.identifierCode = scratch.identifierCode
	s.certReference = scratch.certReference
	s.issueDate = scratch.issueDate
	s.signatureDate = scratch.signatureDate
	s.featureDefinition = scratch.featureDefinition
	s.typeCategory = scratch.typeCategory
}
