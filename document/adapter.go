// Package document binds machine-readable travel documents to their Visible
// Digital Seals.
//
// Each adapter owns one mrz.Document and one vds.Seal and keeps them in step
// through two explicit mapping functions: fieldsToSeal re-derives the seal's
// MRZ feature after every textual mutation, and sealToFields rebuilds the
// document fields after a seal zone is assigned, re-verifying the embedded
// check digits on the way.
package document

import (
	"fmt"
	"time"

	"github.com/openmrtd/sealcodec/mrz"
	"github.com/openmrtd/sealcodec/vds"
)

// td1MRZLength is the span of a TD1 zone carried in a seal: the first 15
// characters of line 1, the first 18 of line 2 and all of line 3.
const td1MRZLength = 63

// td3MRZLength is the span of a TD3 zone carried in a seal: both full lines.
const td3MRZLength = 88

// adapter pairs one travel document with one seal.
type adapter struct {
	doc  *mrz.Document
	seal *vds.Seal
}

// Document exposes the travel document for reading. Mutate it through the
// adapter's setters so the seal stays synchronized.
func (a *adapter) Document() *mrz.Document { return a.doc }

// Seal exposes the seal for reading and for signature handling.
func (a *adapter) Seal() *vds.Seal { return a.seal }

// MachineReadableZone derives the current MRZ lines.
func (a *adapter) MachineReadableZone() ([]string, error) {
	return a.doc.MachineReadableZone()
}

// sealMRZ returns the character run stored under the seal's MRZ feature.
func (a *adapter) sealMRZ() (string, error) {
	lines, err := a.doc.MachineReadableZone()
	if err != nil {
		return "", err
	}
	if a.doc.Format() == mrz.TD1 {
		return lines[0][:15] + lines[1][:18] + lines[2], nil
	}
	return lines[0] + lines[1], nil
}

// fieldsToSeal re-derives the seal's MRZ feature from the document fields.
func (a *adapter) fieldsToSeal() error {
	run, err := a.sealMRZ()
	if err != nil {
		return fmt.Errorf("failed to sync fields to seal: %w", err)
	}
	encoded, err := vds.C40Encode(run)
	if err != nil {
		return fmt.Errorf("failed to sync fields to seal: %w", err)
	}
	return a.seal.SetFeature(vds.FeatureMRZ, encoded)
}

// sealToFields rebuilds the document from the seal's MRZ feature,
// re-verifying the embedded check digits. The document is only replaced when
// the whole feature parses.
func (a *adapter) sealToFields() error {
	value, ok := a.seal.Feature(vds.FeatureMRZ)
	if !ok {
		return &vds.FormatError{Msg: "seal carries no MRZ feature"}
	}
	run, err := vds.C40Decode(value)
	if err != nil {
		return fmt.Errorf("failed to sync seal to fields: %w", err)
	}
	var doc *mrz.Document
	if a.doc.Format() == mrz.TD1 {
		doc, err = parseTruncatedTD1(run)
	} else {
		if len(run) != td3MRZLength {
			return &mrz.ValidationError{Field: "seal mrz", Msg: fmt.Sprintf("must decode to %d characters, got %d", td3MRZLength, len(run))}
		}
		doc, err = mrz.ParseTD3(run[:44], run[44:])
	}
	if err != nil {
		return fmt.Errorf("failed to sync seal to fields: %w", err)
	}
	a.doc = doc
	return nil
}

// parseTruncatedTD1 rebuilds a document from the 63-character TD1 run a seal
// carries. The optional data of line 1 and the composite check digit are not
// part of the run; the three check digits that are present are verified.
func parseTruncatedTD1(run string) (*mrz.Document, error) {
	if len(run) != td1MRZLength {
		return nil, &mrz.ValidationError{Field: "seal mrz", Msg: fmt.Sprintf("must decode to %d characters, got %d", td1MRZLength, len(run))}
	}
	line1 := run[0:15]  // type, authority, number, number check digit
	line2 := run[15:33] // dates, gender, nationality
	line3 := run[33:63] // name

	if err := mrz.VerifyCheckDigit("document number", line1[5:14], line1[14]); err != nil {
		return nil, err
	}
	if err := mrz.VerifyCheckDigit("birth date", line2[0:6], line2[6]); err != nil {
		return nil, err
	}
	if err := mrz.VerifyCheckDigit("expiration date", line2[8:14], line2[14]); err != nil {
		return nil, err
	}

	// Re-pad both partial lines so the full-zone parser can run, recomputing
	// the composite digit the seal does not carry.
	full1 := line1 + "<<<<<<<<<<<<<<<"
	full2pfx := line2 + "<<<<<<<<<<<"
	composite, err := mrz.CheckDigit(full1[5:30] + full2pfx[0:7] + full2pfx[8:15] + full2pfx[18:29])
	if err != nil {
		return nil, err
	}
	return mrz.ParseTD1(full1, full2pfx+composite, line3)
}

// SetTypeCode sets the document type and re-syncs the seal.
func (a *adapter) SetTypeCode(code string) error {
	if err := a.doc.SetTypeCode(code); err != nil {
		return err
	}
	return a.fieldsToSeal()
}

// SetAuthorityCode sets the issuing authority on document and seal alike.
func (a *adapter) SetAuthorityCode(code string) error {
	// The seal's validator is the stricter of the two.
	if err := a.seal.SetAuthorityCode(code); err != nil {
		return err
	}
	if err := a.doc.SetAuthorityCode(code); err != nil {
		return err
	}
	return a.fieldsToSeal()
}

// SetNumber sets the document number and re-syncs the seal.
func (a *adapter) SetNumber(number string) error {
	if err := a.doc.SetNumber(number); err != nil {
		return err
	}
	return a.fieldsToSeal()
}

// SetBirthDate sets the holder's date of birth and re-syncs the seal.
func (a *adapter) SetBirthDate(t time.Time) error {
	if err := a.doc.SetBirthDate(t); err != nil {
		return err
	}
	return a.fieldsToSeal()
}

// SetExpirationDate sets the expiry date and re-syncs the seal.
func (a *adapter) SetExpirationDate(t time.Time) error {
	if err := a.doc.SetExpirationDate(t); err != nil {
		return err
	}
	return a.fieldsToSeal()
}

// SetGenderMarker sets the gender marker and re-syncs the seal.
func (a *adapter) SetGenderMarker(marker string) error {
	if err := a.doc.SetGenderMarker(marker); err != nil {
		return err
	}
	return a.fieldsToSeal()
}

// SetNationalityCode sets the nationality and re-syncs the seal.
func (a *adapter) SetNationalityCode(code string) error {
	if err := a.doc.SetNationalityCode(code); err != nil {
		return err
	}
	return a.fieldsToSeal()
}

// SetFullName sets the holder's name and re-syncs the seal.
func (a *adapter) SetFullName(name string) error {
	if err := a.doc.SetFullName(name); err != nil {
		return err
	}
	return a.fieldsToSeal()
}

// SetOptionalData sets the optional field and re-syncs the seal.
func (a *adapter) SetOptionalData(data string) error {
	if err := a.doc.SetOptionalData(data); err != nil {
		return err
	}
	return a.fieldsToSeal()
}

// SetUnsignedSeal assigns header and message zone bytes, then rebuilds the
// document fields from the parsed MRZ feature. Neither seal nor document
// changes when any step fails.
func (a *adapter) SetUnsignedSeal(b []byte) error {
	return a.assignSeal(b, (*vds.Seal).SetUnsignedSeal)
}

// SetSignedSeal assigns a complete seal, then rebuilds the document fields.
// Neither seal nor document changes when any step fails.
func (a *adapter) SetSignedSeal(b []byte) error {
	return a.assignSeal(b, (*vds.Seal).SetSignedSeal)
}

func (a *adapter) assignSeal(b []byte, assign func(*vds.Seal, []byte) error) error {
	scratch := a.seal.Clone()
	if err := assign(scratch, b); err != nil {
		return err
	}
	restore := a.seal
	a.seal = scratch
	if err := a.sealToFields(); err != nil {
		a.seal = restore
		return err
	}
	return nil
}
