package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/openmrtd/sealcodec/mrz"
)

// MRZCommand creates the mrz commands
func MRZCommand() *cli.Command {
	return &cli.Command{
		Name:  "mrz",
		Usage: "Compose or parse a Machine-Readable Zone",
		Commands: []*cli.Command{
			mrzComposeCommand(),
			mrzParseCommand(),
		},
	}
}

func mrzComposeCommand() *cli.Command {
	return &cli.Command{
		Name:  "compose",
		Usage: "Derive MRZ lines from document fields",
		Flags: append(fieldFlags(),
			&cli.StringFlag{
				Name:  "format",
				Usage: "Document format: td1 or td3",
				Value: "td1",
			},
		),
		Action: runMRZComposeCommand,
	}
}

func runMRZComposeCommand(ctx context.Context, cmd *cli.Command) error {
	var doc sealedDocument
	var err error
	switch cmd.String("format") {
	case "td1":
		doc, err = newProfile("crew-certificate")
	case "td3":
		doc, err = newProfile("events-passport")
	default:
		return fmt.Errorf("unknown format %q (want td1 or td3)", cmd.String("format"))
	}
	if err != nil {
		return err
	}
	if err := applyFieldFlags(cmd, doc); err != nil {
		return err
	}
	lines, err := doc.MachineReadableZone()
	if err != nil {
		return fmt.Errorf("failed to compose mrz: %w", err)
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

func mrzParseCommand() *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "Parse MRZ lines back into fields, verifying check digits",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "Path to a text file with one MRZ line per row",
			},
			&cli.StringSliceFlag{
				Name:  "line",
				Usage: "MRZ line, repeated: 3 times for TD1, 2 for TD3",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output in JSON format",
			},
		},
		Action: runMRZParseCommand,
	}
}

func runMRZParseCommand(ctx context.Context, cmd *cli.Command) error {
	lines := cmd.StringSlice("line")
	if filePath := cmd.String("file"); filePath != "" {
		if len(lines) > 0 {
			return fmt.Errorf("only one of --file or --line should be provided")
		}
		raw, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	var doc *mrz.Document
	var err error
	switch len(lines) {
	case 3:
		doc, err = mrz.ParseTD1(lines[0], lines[1], lines[2])
	case 2:
		doc, err = mrz.ParseTD3(lines[0], lines[1])
	default:
		return fmt.Errorf("want 3 MRZ lines for TD1 or 2 for TD3, got %d", len(lines))
	}
	if err != nil {
		return fmt.Errorf("failed to parse mrz: %w", err)
	}

	if cmd.Bool("json") {
		output := map[string]any{
			"type":        doc.TypeCode(),
			"authority":   doc.AuthorityCode(),
			"number":      doc.Number(),
			"name":        doc.FullName(),
			"nationality": doc.NationalityCode(),
			"gender":      doc.GenderMarker(),
			"birthDate":   doc.BirthDate().Format(flagDateLayout),
			"expiryDate":  doc.ExpirationDate().Format(flagDateLayout),
			"optional":    doc.OptionalData(),
		}
		jsonBytes, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}
	fmt.Printf("Type: %s\n", doc.TypeCode())
	fmt.Printf("Authority: %s\n", doc.AuthorityCode())
	fmt.Printf("Number: %s\n", doc.Number())
	fmt.Printf("Name: %s\n", doc.FullName())
	fmt.Printf("Nationality: %s\n", doc.NationalityCode())
	fmt.Printf("Gender: %s\n", doc.GenderMarker())
	fmt.Printf("Birth Date: %s\n", doc.BirthDate().Format(flagDateLayout))
	fmt.Printf("Expiration Date: %s\n", doc.ExpirationDate().Format(flagDateLayout))
	if doc.OptionalData() != "" {
		fmt.Printf("Optional Data: %s\n", doc.OptionalData())
	}
	return nil
}
