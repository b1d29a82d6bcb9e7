package logger

import (
	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Colorized printing functions for the different log levels, built on
// fatih/color. Each behaves like fmt.Printf with level-appropriate coloring.

// Info logs informational messages in green color.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan color when enabled via Init.
// It defaults to a no-op so packages can log before Init runs.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging. When enabled, Debug prints
// cyan-colored messages; when disabled it stays a no-op.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
