package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/openmrtd/sealcodec/cmd"
)

func main() {
	app := &cli.Command{
		Name:  "sealcodec",
		Usage: "ICAO 9303 MRZ and Visible Digital Seal codec",
		Commands: []*cli.Command{
			cmd.MRZCommand(),
			cmd.EncodeCommand(),
			cmd.DecodeCommand(),
			cmd.InspectCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
