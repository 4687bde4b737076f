package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli"

	"github.com/mojave-labs/iso8583/pkg/codec"
	"github.com/mojave-labs/iso8583/pkg/core"
	"github.com/mojave-labs/iso8583/pkg/spec"
)

func buildCommand(c *cli.Context) error {
	path := c.String("file")
	if path == "" {
		return exitErr(exitIOFailure, "build requires -file <path>")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return exitErr(exitIOFailure, "reading %s: %w", path, err)
	}

	var in messageJSON
	if err := json.Unmarshal(raw, &in); err != nil {
		return exitErr(exitIOFailure, "%s is not valid JSON: %w", path, err)
	}

	cd := codec.New()

	network := spec.Network(in.Network)
	if network == spec.NetworkNone {
		network = networkFlag(c)
	}

	version := versionFlag(c)

	msg := core.NewMessage(in.MTI)
	msg.Network = network
	msg.Version = version

	for key, text := range in.Fields {
		fieldNum, err := strconv.Atoi(key)
		if err != nil {
			return exitErr(exitBuildFailure, "field key %q is not a number", key)
		}

		def, ok := cd.Registry.DefinitionOf(fieldNum, version, network)
		if !ok {
			return exitErr(exitBuildFailure, "field %d has no definition for version %s network %s", fieldNum, version, network)
		}

		if def.DataType == spec.DataTypeBinary {
			b, err := hex.DecodeString(text)
			if err != nil {
				return exitErr(exitBuildFailure, "field %d value %q is not valid hex", fieldNum, text)
			}

			msg.Set(fieldNum, core.BinaryValue(b))
		} else {
			msg.Set(fieldNum, core.TextValue(text))
		}
	}

	wire, err := cd.Build(msg)
	if err != nil {
		return exitErr(exitBuildFailure, "build failed: %w", err)
	}

	switch formatFlag(c) {
	case "json":
		fmt.Fprintf(os.Stdout, "%q\n", hex.EncodeToString(wire))
	default:
		fmt.Fprintln(os.Stdout, hex.EncodeToString(wire))
	}

	return nil
}
