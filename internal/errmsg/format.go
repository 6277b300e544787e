// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants.
const (
	OpLoad          Op = "load artist data"
	OpCacheWrite    Op = "save artist data"
	OpPlaybackStart Op = "start preview"
	OpInstall       Op = "install launcher"
	OpInitialize    Op = "initialize application"
)

// Format creates an error message for logs and developer popups.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
