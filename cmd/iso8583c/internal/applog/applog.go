// Package applog sets up the CLI's stderr logger. The codec itself
// never logs (it is purely computational, spec.md §5); only this
// thin collaborator does, for operational messages like file-not-found
// or parse-failure detail.
package applog

import (
	"os"

	"github.com/op/go-logging"
)

var stderrFormat = logging.MustStringFormatter(
	`%{color}iso8583c ▶ %{level:.4s}%{color:reset} %{message}`,
)

// Setup wires a stderr-backed logger at level, honoring an
// ISO8583C_LOG_LEVEL environment override the same way the retrieval
// pack's CLI honors its own *_LOG_LEVEL variable.
func Setup(level logging.Level) *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, stderrFormat)
	leveled := logging.AddModuleLevel(formatted)

	switch os.Getenv("ISO8583C_LOG_LEVEL") {
	case "CRITICAL":
		leveled.SetLevel(logging.CRITICAL, "")
	case "ERROR":
		leveled.SetLevel(logging.ERROR, "")
	case "WARNING":
		leveled.SetLevel(logging.WARNING, "")
	case "NOTICE":
		leveled.SetLevel(logging.NOTICE, "")
	case "INFO":
		leveled.SetLevel(logging.INFO, "")
	case "DEBUG":
		leveled.SetLevel(logging.DEBUG, "")
	default:
		leveled.SetLevel(level, "")
	}

	logging.SetBackend(leveled)

	return logging.MustGetLogger("iso8583c")
}
