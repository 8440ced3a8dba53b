package utils

import (
	"fmt"
	"os"
)

// Error prints the message and exits with a non-zero status.
func Error(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
	os.Exit(1)
}
