package cmd

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/openmrtd/sealcodec/vds"
)

// DecodeCommand creates the decode command
func DecodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "Parse a Visible Digital Seal back into fields",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "Path to seal binary file",
			},
			&cli.StringFlag{
				Name:  "base64",
				Usage: "Base64-encoded seal",
			},
			&cli.StringFlag{
				Name:  "profile",
				Usage: "Also re-derive document fields for this profile",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output in JSON format",
			},
		},
		Action: runDecodeCommand,
	}
}

// readSealInput loads the seal bytes from --file or --base64, enforcing that
// exactly one is given.
func readSealInput(cmd *cli.Command) ([]byte, error) {
	filePath := cmd.String("file")
	b64 := cmd.String("base64")

	if filePath == "" && b64 == "" {
		return nil, fmt.Errorf("either --file or --base64 must be provided")
	}
	if filePath != "" && b64 != "" {
		return nil, fmt.Errorf("only one of --file or --base64 should be provided")
	}
	if filePath != "" {
		raw, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return raw, nil
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64))
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	return raw, nil
}

func runDecodeCommand(ctx context.Context, cmd *cli.Command) error {
	raw, err := readSealInput(cmd)
	if err != nil {
		return err
	}
	seal, err := vds.ParseSeal(raw)
	if err != nil {
		return fmt.Errorf("failed to parse seal: %w", err)
	}

	formatter := vds.NewFormatter()
	asJSON := cmd.Bool("json")
	output := formatter.FormatSealJSON(seal)

	if profile := cmd.String("profile"); profile != "" {
		doc, err := newProfile(profile)
		if err != nil {
			return err
		}
		if err := assignSealBytes(doc, raw); err != nil {
			return fmt.Errorf("failed to re-derive document fields: %w", err)
		}
		lines, err := doc.MachineReadableZone()
		if err != nil {
			return fmt.Errorf("failed to derive mrz: %w", err)
		}
		if asJSON {
			output["document"] = documentJSON(doc, lines)
		} else {
			fmt.Printf("=== Document (%s) ===\n", profile)
			printDocument(doc, lines)
			fmt.Println()
		}
	}

	if asJSON {
		jsonBytes, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}
	fmt.Printf("=== Visible Digital Seal ===\n")
	fmt.Print(formatter.FormatSeal(seal))
	return nil
}

// assignSealBytes hands raw seal bytes to the adapter, accepting both signed
// and unsigned seals.
func assignSealBytes(doc sealedDocument, raw []byte) error {
	if err := doc.SetSignedSeal(raw); err == nil {
		return nil
	}
	return doc.SetUnsignedSeal(raw)
}

func printDocument(doc sealedDocument, lines []string) {
	d := doc.Document()
	fmt.Printf("Type: %s\n", d.TypeCode())
	fmt.Printf("Authority: %s\n", d.AuthorityCode())
	fmt.Printf("Number: %s\n", d.Number())
	fmt.Printf("Name: %s\n", d.FullName())
	fmt.Printf("Nationality: %s\n", d.NationalityCode())
	fmt.Printf("Gender: %s\n", d.GenderMarker())
	fmt.Printf("Birth Date: %s\n", d.BirthDate().Format(flagDateLayout))
	fmt.Printf("Expiration Date: %s\n", d.ExpirationDate().Format(flagDateLayout))
	if d.OptionalData() != "" {
		fmt.Printf("Optional Data: %s\n", d.OptionalData())
	}
	fmt.Printf("MRZ:\n")
	for _, line := range lines {
		fmt.Printf("  %s\n", line)
	}
}

func documentJSON(doc sealedDocument, lines []string) map[string]any {
	d := doc.Document()
	return map[string]any{
		"type":        d.TypeCode(),
		"authority":   d.AuthorityCode(),
		"number":      d.Number(),
		"name":        d.FullName(),
		"nationality": d.NationalityCode(),
		"gender":      d.GenderMarker(),
		"birthDate":   d.BirthDate().Format(flagDateLayout),
		"expiryDate":  d.ExpirationDate().Format(flagDateLayout),
		"optional":    d.OptionalData(),
		"mrz":         lines,
	}
}
