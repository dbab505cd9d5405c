package cmd

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
)

// EncodeCommand creates the encode command
func EncodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "Compose a Visible Digital Seal from document fields",
		Flags: append(fieldFlags(),
			&cli.StringFlag{
				Name:  "profile",
				Usage: "Document profile: crew-certificate, crew-id, crew-license, events-passport or events-visa",
				Value: "crew-certificate",
			},
			&cli.StringSliceFlag{
				Name:  "feature",
				Usage: "Extra message feature as tag=hexvalue, e.g. 0x02=1A2B",
			},
			&cli.StringFlag{
				Name:  "signature",
				Usage: "Hex-encoded signature bytes; with it the output is a signed seal",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Write the seal to a binary file instead of printing base64",
			},
		),
		Action: runEncodeCommand,
	}
}

func runEncodeCommand(ctx context.Context, cmd *cli.Command) error {
	doc, err := newProfile(cmd.String("profile"))
	if err != nil {
		return err
	}
	if err := applyFieldFlags(cmd, doc); err != nil {
		return err
	}
	for _, spec := range cmd.StringSlice("feature") {
		tag, value, err := parseFeatureFlag(spec)
		if err != nil {
			return err
		}
		if err := doc.Seal().SetFeature(tag, value); err != nil {
			return err
		}
	}

	seal := doc.Seal()
	var out []byte
	if cmd.IsSet("signature") {
		signature, err := hex.DecodeString(cmd.String("signature"))
		if err != nil {
			return fmt.Errorf("failed to decode --signature: %w", err)
		}
		seal.SetSignatureData(signature)
		if out, err = seal.SignedSeal(); err != nil {
			return fmt.Errorf("failed to compose signed seal: %w", err)
		}
	} else {
		if out, err = seal.UnsignedSeal(); err != nil {
			return fmt.Errorf("failed to compose unsigned seal: %w", err)
		}
	}

	if path := cmd.String("out"); path != "" {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("failed to write seal: %w", err)
		}
		return nil
	}
	fmt.Println(base64.StdEncoding.EncodeToString(out))
	return nil
}

// parseFeatureFlag splits a tag=hexvalue flag into its parts.
func parseFeatureFlag(spec string) (byte, []byte, error) {
	tagStr, valueStr, found := strings.Cut(spec, "=")
	if !found {
		return 0, nil, fmt.Errorf("malformed --feature %q: want tag=hexvalue", spec)
	}
	tag, err := strconv.ParseUint(tagStr, 0, 8)
	if err != nil {
		return 0, nil, fmt.Errorf("malformed --feature tag %q: %w", tagStr, err)
	}
	value, err := hex.DecodeString(valueStr)
	if err != nil {
		return 0, nil, fmt.Errorf("malformed --feature value %q: %w", valueStr, err)
	}
	return byte(tag), value, nil
}
