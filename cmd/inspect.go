package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/openmrtd/sealcodec/vds"
)

// InspectCommand creates the inspect command
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Dump a seal zone by zone as hex",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "Path to seal binary file",
			},
			&cli.StringFlag{
				Name:  "base64",
				Usage: "Base64-encoded seal",
			},
		},
		Action: runInspectCommand,
	}
}

func runInspectCommand(ctx context.Context, cmd *cli.Command) error {
	raw, err := readSealInput(cmd)
	if err != nil {
		return err
	}
	seal, err := vds.ParseSeal(raw)
	if err != nil {
		return fmt.Errorf("failed to parse seal: %w", err)
	}
	formatter := vds.NewFormatter()
	zones, err := formatter.FormatZones(seal)
	if err != nil {
		return fmt.Errorf("failed to derive zones: %w", err)
	}
	fmt.Print(zones)
	return nil
}
