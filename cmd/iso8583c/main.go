// Command iso8583c is a thin CLI collaborator around pkg/codec. It
// contributes no domain logic of its own: parse/build/validate read
// or write through the codec exactly as pkg/codec implements them.
//
// Framing note: this command reads one already-framed message per
// invocation (hex as an argument or on stdin). An outer length
// prefix or TPDU header, if the caller's transport adds one, must be
// stripped before the bytes reach this command; iso8583c never opens
// a socket and never sees that header.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/mojave-labs/iso8583/cmd/iso8583c/internal/applog"
)

// Exit codes per the external-interfaces contract.
const (
	exitOK               = 0
	exitParseFailure     = 1
	exitValidationFailed = 2
	exitBuildFailure     = 3
	exitIOFailure        = 4
)

func main() {
	app := cli.NewApp()
	app.Name = "iso8583c"
	app.Usage = "parse, build, and validate ISO 8583 financial messages"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "network", Value: "", Usage: "card network overlay: VISA, MASTERCARD, AMEX, DISCOVER, JCB, UNIONPAY"},
		cli.StringFlag{Name: "msg-version", Value: "1987", Usage: "schema version overlay: 1987, 1993, 2003"},
		cli.StringFlag{Name: "format", Value: "table", Usage: "output format: table, json, raw"},
	}
	app.Commands = []cli.Command{
		{
			Name:      "parse",
			Usage:     "decode a hex-encoded wire message into its fields",
			ArgsUsage: "[hex]",
			Action:    parseCommand,
		},
		{
			Name:      "build",
			Usage:     "encode a JSON field map into a hex wire message",
			ArgsUsage: "-file <path>",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "file", Usage: "JSON file containing mti, fields, and optionally network"},
			},
			Action: buildCommand,
		},
		{
			Name:      "validate",
			Usage:     "report every validation diagnostic for a hex-encoded message",
			ArgsUsage: "[hex]",
			Action:    validateCommand,
		},
		{
			Name:      "generate",
			Usage:     "build a minimal well-formed message for a network, for smoke-testing",
			ArgsUsage: "<network>",
			Action:    generateCommand,
		},
	}

	log := applog.Setup(defaultLogLevel())

	if err := app.Run(os.Args); err != nil {
		log.Errorf("%v", err)

		if code, ok := err.(cliExitError); ok {
			os.Exit(code.code)
		}

		os.Exit(exitIOFailure)
	}
}

// cliExitError lets a command propagate a specific exit code through
// cli.App.Run's plain error return.
type cliExitError struct {
	code int
	err  error
}

func (e cliExitError) Error() string { return e.err.Error() }

func exitErr(code int, format string, args ...interface{}) error {
	return cliExitError{code: code, err: fmt.Errorf(format, args...)}
}
