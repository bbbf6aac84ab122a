package utils

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Logger provides coloured CLI output
type Logger struct {
	verbose bool
}

// NewLogger creates a new logger instance. Debug output is suppressed unless
// verbose is set.
func NewLogger(verbose bool) *Logger {
	return &Logger{verbose: verbose}
}

// Success logs a success message in green
func (l *Logger) Success(msg string, args ...interface{}) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(os.Stdout, green("✓ "+msg)+"\n", args...)
}

// Info logs an informational message in cyan
func (l *Logger) Info(msg string, args ...interface{}) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(os.Stdout, cyan(msg)+"\n", args...)
}

// Warning logs a warning message in yellow
func (l *Logger) Warning(msg string, args ...interface{}) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(os.Stdout, yellow("⚠ "+msg)+"\n", args...)
}

// Error logs an error message in red
func (l *Logger) Error(msg string, err error, args ...interface{}) {
	red := color.New(color.FgRed).SprintFunc()
	if err != nil {
		fmt.Fprintf(os.Stderr, red("✗ "+msg+": %v")+"\n", append(args, err)...)
	} else {
		fmt.Fprintf(os.Stderr, red("✗ "+msg)+"\n", args...)
	}
}

// Debug logs a debug message in dim/gray when verbose mode is on
func (l *Logger) Debug(msg string, args ...interface{}) {
	if !l.verbose {
		return
	}
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(os.Stdout, dim(msg)+"\n", args...)
}
