// Package vds composes and parses ICAO 9303 Visible Digital Seals: the
// signed, C40-compacted TLV structure carried in a 2D barcode on an identity
// document.
//
// A Seal owns the header fields, the ordered feature map of the message zone
// and the opaque signature bytes. The wire zones are derived from that state
// on demand and, when assigned, parsed back into it transactionally: either
// the whole zone parses and every dependent field updates, or the seal is
// left untouched.
package vds

import (
	"fmt"
	"strings"
	"time"
)

// Version selects the seal wire profile.
type Version byte

const (
	// V3 seals carry version byte 0x02 and a fixed 5-character hexadecimal
	// certificate reference.
	V3 Version = 0x02
	// V4 seals carry version byte 0x03 and a variable-length certificate
	// reference whose length travels in the header.
	V4 Version = 0x03
)

const (
	sealMagic       = 0xDC
	signatureMarker = 0xFF
)

// FeatureMRZ is the tag under which a seal carries the compacted MRZ of its
// document.
const FeatureMRZ = 0x01

// Feature is one message-zone entry. Entries keep their insertion order,
// which defines the wire order.
type Feature struct {
	Tag   byte
	Value []byte
}

// Seal holds the state of one Visible Digital Seal.
type Seal struct {
	version           Version
	authorityCode     string
	identifierCode    string
	certReference     string
	issueDate         time.Time
	signatureDate     time.Time
	featureDefinition int
	typeCategory      int
	features          []Feature
	signatureData     []byte
}

// NewSeal returns a seal of the given version pre-filled with valid sample
// data, so a fresh seal always composes.
func NewSeal(v Version) (*Seal, error) {
	if v != V3 && v != V4 {
		return nil, &ValidationError{Field: "version", Msg: fmt.Sprintf("unknown seal version %#x", byte(v))}
	}
	return &Seal{
		version:           v,
		authorityCode:     "UTO",
		identifierCode:    "UTCC",
		certReference:     "00100",
		issueDate:         time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		signatureDate:     time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
		featureDefinition: 1,
		typeCategory:      1,
	}, nil
}

// Version returns the seal's wire profile.
func (s *Seal) Version() Version { return s.version }

// AuthorityCode returns the issuing authority code.
func (s *Seal) AuthorityCode() string { return s.authorityCode }

// SetAuthorityCode sets the issuing authority: up to 3 characters A-Z, 0-9,
// space or '<'.
func (s *Seal) SetAuthorityCode(code string) error {
	code = strings.ToUpper(code)
	if len(code) == 0 || len(code) > 3 {
		return &ValidationError{Field: "authority code", Msg: "must be 1 to 3 characters"}
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !(c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == ' ' || c == '<') {
			return &ValidationError{Field: "authority code", Msg: "must contain only A-Z, 0-9, space or <"}
		}
	}
	s.authorityCode = code
	return nil
}

// IdentifierCode returns the 4-character signer identifier.
func (s *Seal) IdentifierCode() string { return s.identifierCode }

// SetIdentifierCode sets the signer identifier: exactly two letters naming
// the authority followed by two alphanumeric signer characters.
func (s *Seal) SetIdentifierCode(code string) error {
	code = strings.ToUpper(code)
	if len(code) != 4 {
		return &ValidationError{Field: "identifier code", Msg: "must be exactly 4 characters"}
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if i < 2 && !(c >= 'A' && c <= 'Z') {
			return &ValidationError{Field: "identifier code", Msg: "first 2 characters must be letters"}
		}
		if !(c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			return &ValidationError{Field: "identifier code", Msg: "must be alphanumeric"}
		}
	}
	s.identifierCode = code
	return nil
}

// CertReference returns the certificate reference as an uppercase hex string.
func (s *Seal) CertReference() string { return s.certReference }

// SetCertReference sets the certificate reference. V3 seals require exactly 5
// hex characters; V4 seals accept any hex string the header can describe.
func (s *Seal) SetCertReference(ref string) error {
	ref = strings.ToUpper(ref)
	if s.version == V3 && len(ref) != 5 {
		return &ValidationError{Field: "cert reference", Msg: "must be exactly 5 hex characters"}
	}
	if len(ref) == 0 || len(ref) > 0xFF {
		return &ValidationError{Field: "cert reference", Msg: "must be 1 to 255 hex characters"}
	}
	for i := 0; i < len(ref); i++ {
		c := ref[i]
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'F') {
			return &ValidationError{Field: "cert reference", Msg: "must contain only hex characters"}
		}
	}
	s.certReference = ref
	return nil
}

// IssueDate returns the document issue date.
func (s *Seal) IssueDate() time.Time { return s.issueDate }

// SetIssueDate sets the document issue date.
func (s *Seal) SetIssueDate(t time.Time) error {
	if t.IsZero() {
		return &ValidationError{Field: "issue date", Msg: "must not be zero"}
	}
	s.issueDate = t
	return nil
}

// SignatureDate returns the seal signature date.
func (s *Seal) SignatureDate() time.Time { return s.signatureDate }

// SetSignatureDate sets the seal signature date.
func (s *Seal) SetSignatureDate(t time.Time) error {
	if t.IsZero() {
		return &ValidationError{Field: "signature date", Msg: "must not be zero"}
	}
	s.signatureDate = t
	return nil
}

// FeatureDefinition returns the document feature definition reference.
func (s *Seal) FeatureDefinition() int { return s.featureDefinition }

// SetFeatureDefinition sets the feature definition reference, 1 to 254.
func (s *Seal) SetFeatureDefinition(v int) error {
	if v < 1 || v > 254 {
		return &ValidationError{Field: "feature definition", Msg: "must be between 1 and 254"}
	}
	s.featureDefinition = v
	return nil
}

// TypeCategory returns the document type category.
func (s *Seal) TypeCategory() int { return s.typeCategory }

// SetTypeCategory sets the document type category, 1 to 254.
func (s *Seal) SetTypeCategory(v int) error {
	if v < 1 || v > 254 {
		return &ValidationError{Field: "type category", Msg: "must be between 1 and 254"}
	}
	s.typeCategory = v
	return nil
}

// Feature returns the value stored under tag.
func (s *Seal) Feature(tag byte) ([]byte, bool) {
	for _, f := range s.features {
		if f.Tag == tag {
			return append([]byte(nil), f.Value...), true
		}
	}
	return nil, false
}

// Features returns every message-zone entry in wire order.
func (s *Seal) Features() []Feature {
	out := make([]Feature, len(s.features))
	for i, f := range s.features {
		out[i] = Feature{Tag: f.Tag, Value: append([]byte(nil), f.Value...)}
	}
	return out
}

// SetFeature stores value under tag, keeping the tag's existing position or
// appending a new entry. Values are capped at 255 bytes because the message
// zone carries raw single-byte lengths.
func (s *Seal) SetFeature(tag byte, value []byte) error {
	if tag == 0x00 || tag == signatureMarker {
		return &ValidationError{Field: "feature tag", Msg: fmt.Sprintf("tag %#x is reserved", tag)}
	}
	if len(value) > 0xFF {
		return &ValidationError{Field: "feature value", Msg: "must be at most 255 bytes"}
	}
	value = append([]byte(nil), value...)
	for i, f := range s.features {
		if f.Tag == tag {
			s.features[i].Value = value
			return nil
		}
	}
	s.features = append(s.features, Feature{Tag: tag, Value: value})
	return nil
}

// RemoveFeature drops the entry stored under tag, if any.
func (s *Seal) RemoveFeature(tag byte) {
	for i, f := range s.features {
		if f.Tag == tag {
			s.features = append(s.features[:i], s.features[i+1:]...)
			return
		}
	}
}

// SignatureData returns the opaque signature bytes.
func (s *Seal) SignatureData() []byte {
	return append([]byte(nil), s.signatureData...)
}

// SetSignatureData stores the opaque signature bytes. The seal frames them
// but never interprets them.
func (s *Seal) SetSignatureData(b []byte) {
	s.signatureData = append([]byte(nil), b...)
}

// Clone returns a deep copy of the seal.
func (s *Seal) Clone() *Seal {
	c := *s
	c.features = s.Features()
	c.signatureData = append([]byte(nil), s.signatureData...)
	return &c
}
