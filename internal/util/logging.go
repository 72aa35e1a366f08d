// Package util provides logging helpers, per-user directory lookup and
// small numeric helpers shared by the other packages.
package util

import (
	"io"
	"log"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// MustSucceed logs and exits on error. Reserved for startup and shutdown.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}

// Silence discards standard log output, used while the terminal UI owns
// the screen and no log file is configured.
func Silence() {
	log.SetOutput(io.Discard)
}
