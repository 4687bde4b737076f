package main

import "github.com/op/go-logging"

// defaultLogLevel is the level applog.Setup falls back to when
// ISO8583C_LOG_LEVEL isn't set in the environment.
func defaultLogLevel() logging.Level {
	return logging.NOTICE
}
