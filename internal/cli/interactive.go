package cli

import "os"

// IsNonInteractive reports whether the interactive screen must not start.
func IsNonInteractive() bool {
	if nonInteractive {
		return true
	}
	if _, ok := os.LookupEnv("THEMEKIT_NON_INTERACTIVE"); ok {
		return true
	}
	return !hasTTY()
}

