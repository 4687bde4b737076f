package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/mojave-labs/iso8583/pkg/codec"
)

func parseCommand(c *cli.Context) error {
	data, err := readHexArg(c)
	if err != nil {
		return err
	}

	cd := codec.New()

	msg, err := cd.Parse(data, networkFlag(c), versionFlag(c))
	if err != nil {
		return exitErr(exitParseFailure, "parse failed: %w", err)
	}

	if err := writeMessage(os.Stdout, msg, formatFlag(c)); err != nil {
		return exitErr(exitIOFailure, "writing output: %w", err)
	}

	return nil
}

func validateCommand(c *cli.Context) error {
	data, err := readHexArg(c)
	if err != nil {
		return err
	}

	cd := codec.New()

	msg, err := cd.Parse(data, networkFlag(c), versionFlag(c))
	if err != nil {
		return exitErr(exitParseFailure, "parse failed: %w", err)
	}

	diags := cd.Validate(msg)
	if len(diags) == 0 {
		return nil
	}

	writeDiagnostics(os.Stdout, diags)

	return exitErr(exitValidationFailed, "%d validation diagnostic(s)", len(diags))
}
