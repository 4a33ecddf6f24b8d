package cli

import (
	"errors"
	"strings"
)

// ErrAuditFailed is returned by the audit command when any check fails.
var ErrAuditFailed = errors.New("accessibility audit failed")

// PreflightError explains why a command cannot run and what to do instead.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}
	if e.NextStep != "" {
		b.WriteString("\nTry: ")
		b.WriteString(e.NextStep)
	}
	return b.String()
}
