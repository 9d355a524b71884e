// Package errors holds the command-line error surface: everything a failed
// command prints to the user goes through here, and fatal paths also land in
// the log file before exiting.
package errors

import (
	"fmt"
	"os"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/logger"
)

// Format renders err for terminal output. Returns the empty string for nil
// so callers can print unconditionally.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf renders a formatted message in the same shape Format produces.
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs err, prints it to stderr and exits with code 1. A nil err is a
// no-op, which lets main hand its command result straight in.
func Fatal(err error) {
	if err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, Format(err))
		os.Exit(1)
	}
}

// Fatalf is Fatal for a formatted message. Unlike Fatal it always exits.
func Fatalf(format string, args ...interface{}) {
	logger.Error("command failed", "error", fmt.Sprintf(format, args...))
	fmt.Fprintln(os.Stderr, Formatf(format, args...))
	os.Exit(1)
}
