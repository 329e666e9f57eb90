// Package clog configures apex/log output for the datadl tools.
package clog

import (
	"io"

	"github.com/apex/log"
)

// Setup installs the clog handler on the package-level apex logger and sets
// the level parsed from s, defaulting to info when s is empty or invalid.
func Setup(w io.Writer, s string) {
	log.SetHandler(NewHandler(w))

	level, err := log.ParseLevel(s)
	if err != nil {
		level = log.InfoLevel
	}

	log.SetLevel(level)
}
