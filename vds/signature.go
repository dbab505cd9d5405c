package vds

import "fmt"

// SignatureZone derives the signature bytes: the 0xFF marker, the DER
// definite length of the signature and the signature itself.
func (s *Seal) SignatureZone() ([]byte, error) {
	length, err := DERLength(len(s.signatureData))
	if err != nil {
		return nil, fmt.Errorf("failed to compose signature zone: %w", err)
	}
	out := make([]byte, 0, 1+len(length)+len(s.signatureData))
	out = append(out, signatureMarker)
	out = append(out, length...)
	return append(out, s.signatureData...), nil
}

// parseSignature decodes a signature zone spanning the whole of b.
func parseSignature(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, &LengthMismatchError{Declared: 1, Actual: 0}
	}
	if b[0] != signatureMarker {
		return nil, &FormatError{Msg: fmt.Sprintf("signature marker %#x, want %#x", b[0], signatureMarker)}
	}
	length, consumed, err := ParseDERLength(b[1:])
	if err != nil {
		return nil, fmt.Errorf("failed to parse signature length: %w", err)
	}
	remaining := len(b) - 1 - consumed
	if length != remaining {
		return nil, &LengthMismatchError{Declared: length, Actual: remaining}
	}
	return append([]byte(nil), b[1+consumed:]...), nil
}

// SetSignatureZone parses b as a complete signature zone and, on success,
// replaces the signature bytes.
func (s *Seal) SetSignatureZone(b []byte) error {
	signature, err := parseSignature(b)
	if err != nil {
		return err
	}
	s.signatureData = signature
	return nil
}

// UnsignedSeal derives header and message zone as one byte run, the exact
// input to the external signer.
func (s *Seal) UnsignedSeal() ([]byte, error) {
	header, err := s.HeaderZone()
	if err != nil {
		return nil, err
	}
	return append(header, s.MessageZone()...), nil
}

// SignedSeal derives the complete seal: header, message and signature zones.
func (s *Seal) SignedSeal() ([]byte, error) {
	unsigned, err := s.UnsignedSeal()
	if err != nil {
		return nil, err
	}
	signature, err := s.SignatureZone()
	if err != nil {
		return nil, err
	}
	return append(unsigned, signature...), nil
}

// SetUnsignedSeal parses b as header plus message zone. A signature marker in
// the input is an error; use SetSignedSeal for complete seals. On success all
// dependent fields update atomically.
func (s *Seal) SetUnsignedSeal(b []byte) error {
	scratch, consumed, err := s.parseHeader(b)
	if err != nil {
		return err
	}
	features, n, err := parseMessage(b[consumed:], false)
	if err != nil {
		return err
	}
	if consumed+n != len(b) {
		return &LengthMismatchError{Declared: consumed + n, Actual: len(b)}
	}
	s.commitHeader(scratch)
	s.features = features
	return nil
}

// SetSignedSeal parses b as a complete seal: header, message and signature
// zones. On success all dependent fields update atomically.
func (s *Seal) SetSignedSeal(b []byte) error {
	scratch, consumed, err := s.parseHeader(b)
	if err != nil {
		return err
	}
	features, n, err := parseMessage(b[consumed:], true)
	if err != nil {
		return err
	}
	signature, err := parseSignature(b[consumed+n:])
	if err != nil {
		return err
	}
	s.commitHeader(scratch)
	s.features = features
	s.signatureData = signature
	return nil
}

// ParseSeal detects the seal version from the header and parses b, with or
// without a signature zone, into a fresh seal.
func ParseSeal(b []byte) (*Seal, error) {
	if len(b) < 2 {
		return nil, &LengthMismatchError{Declared: 2, Actual: len(b)}
	}
	if b[0] != sealMagic {
		return nil, &FormatError{Msg: fmt.Sprintf("magic byte %#x, want %#x", b[0], sealMagic)}
	}
	seal, err := NewSeal(Version(b[1]))
	if err != nil {
		return nil, &FormatError{Msg: fmt.Sprintf("unknown seal version %#x", b[1])}
	}
	scratch, consumed, err := seal.parseHeader(b)
	if err != nil {
		return nil, err
	}
	seal.commitHeader(scratch)
	features, n, err := parseMessage(b[consumed:], true)
	if err != nil {
		return nil, err
	}
	seal.features = features
	rest := b[consumed+n:]
	if len(rest) == 0 {
		return seal, nil
	}
	signature, err := parseSignature(rest)
	if err != nil {
		return nil, err
	}
	seal.signatureData = signature
	return seal, nil
}
