package main

import (
	"bufio"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/mojave-labs/iso8583/pkg/spec"
)

// readHexArg resolves the message bytes for parse/validate: the first
// positional argument if given, stdin otherwise. Either way the input
// is a single hex string with optional surrounding whitespace.
func readHexArg(c *cli.Context) ([]byte, error) {
	var hexStr string

	if c.NArg() > 0 {
		hexStr = c.Args().Get(0)
	} else {
		reader := bufio.NewReader(os.Stdin)

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, exitErr(exitIOFailure, "reading stdin: %w", err)
		}

		hexStr = line
	}

	hexStr = strings.TrimSpace(hexStr)
	if hexStr == "" {
		return nil, exitErr(exitIOFailure, "no input: pass a hex string argument or pipe one on stdin")
	}

	data, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, exitErr(exitIOFailure, "input is not valid hex: %w", err)
	}

	return data, nil
}

func networkFlag(c *cli.Context) spec.Network {
	return spec.Network(strings.ToUpper(c.GlobalString("network")))
}

func versionFlag(c *cli.Context) spec.Version {
	v := c.GlobalString("msg-version")
	if v == "" {
		return spec.V1987
	}

	return spec.Version(v)
}

func formatFlag(c *cli.Context) string {
	f := c.GlobalString("format")
	if f == "" {
		return "table"
	}

	return f
}
