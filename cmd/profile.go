package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/openmrtd/sealcodec/document"
	"github.com/openmrtd/sealcodec/mrz"
	"github.com/openmrtd/sealcodec/vds"
)

// sealedDocument is the slice of the document adapters the CLI drives.
type sealedDocument interface {
	Document() *mrz.Document
	Seal() *vds.Seal
	MachineReadableZone() ([]string, error)
	SetTypeCode(string) error
	SetAuthorityCode(string) error
	SetNumber(string) error
	SetBirthDate(time.Time) error
	SetExpirationDate(time.Time) error
	SetGenderMarker(string) error
	SetNationalityCode(string) error
	SetFullName(string) error
	SetOptionalData(string) error
	SetUnsignedSeal([]byte) error
	SetSignedSeal([]byte) error
}

// newProfile constructs the adapter named by a --profile flag value.
func newProfile(name string) (sealedDocument, error) {
	switch name {
	case "crew-certificate":
		return document.NewCrewCertificate(), nil
	case "crew-id":
		return document.NewCrewID(), nil
	case "crew-license":
		return document.NewCrewLicense(), nil
	case "events-passport":
		return document.NewEventsPassport(), nil
	case "events-visa":
		return document.NewEventsVisa(), nil
	}
	return nil, fmt.Errorf("unknown profile %q (want crew-certificate, crew-id, crew-license, events-passport or events-visa)", name)
}

const flagDateLayout = "2006-01-02"

// applyFieldFlags copies every document field flag that was set on cmd into
// the adapter.
func applyFieldFlags(cmd *cli.Command, doc sealedDocument) error {
	if cmd.IsSet("type") {
		if err := doc.SetTypeCode(cmd.String("type")); err != nil {
			return err
		}
	}
	if cmd.IsSet("authority") {
		if err := doc.SetAuthorityCode(cmd.String("authority")); err != nil {
			return err
		}
	}
	if cmd.IsSet("number") {
		if err := doc.SetNumber(cmd.String("number")); err != nil {
			return err
		}
	}
	if cmd.IsSet("name") {
		if err := doc.SetFullName(cmd.String("name")); err != nil {
			return err
		}
	}
	if cmd.IsSet("nationality") {
		if err := doc.SetNationalityCode(cmd.String("nationality")); err != nil {
			return err
		}
	}
	if cmd.IsSet("gender") {
		if err := doc.SetGenderMarker(cmd.String("gender")); err != nil {
			return err
		}
	}
	if cmd.IsSet("birth") {
		t, err := time.Parse(flagDateLayout, cmd.String("birth"))
		if err != nil {
			return fmt.Errorf("failed to parse --birth: %w", err)
		}
		if err := doc.SetBirthDate(t); err != nil {
			return err
		}
	}
	if cmd.IsSet("expiry") {
		t, err := time.Parse(flagDateLayout, cmd.String("expiry"))
		if err != nil {
			return fmt.Errorf("failed to parse --expiry: %w", err)
		}
		if err := doc.SetExpirationDate(t); err != nil {
			return err
		}
	}
	if cmd.IsSet("optional") {
		if err := doc.SetOptionalData(cmd.String("optional")); err != nil {
			return err
		}
	}
	return nil
}

// fieldFlags returns the document field flags shared by encode and mrz
// compose.
func fieldFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "type", Usage: "Document type code (1-2 letters)"},
		&cli.StringFlag{Name: "authority", Usage: "Issuing authority code"},
		&cli.StringFlag{Name: "number", Usage: "Document number"},
		&cli.StringFlag{Name: "name", Usage: "Full name as 'PRIMARY, SECONDARY'"},
		&cli.StringFlag{Name: "nationality", Usage: "Nationality code"},
		&cli.StringFlag{Name: "gender", Usage: "Gender marker: F, M or X"},
		&cli.StringFlag{Name: "birth", Usage: "Birth date as YYYY-MM-DD"},
		&cli.StringFlag{Name: "expiry", Usage: "Expiration date as YYYY-MM-DD"},
		&cli.StringFlag{Name: "optional", Usage: "Optional data field"},
	}
}
