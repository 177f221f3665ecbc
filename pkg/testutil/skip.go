// Package testutil holds shared test helpers.
package testutil

import (
	"os"
	"testing"
)

// SkipIfShort skips the test if running in short mode.
func SkipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
}

// RequireMongo skips the test unless MONGODB_URL points at a reachable
// server, and returns the connection URL.
func RequireMongo(t *testing.T) string {
	t.Helper()
	SkipIfShort(t)
	url := os.Getenv("MONGODB_URL")
	if url == "" {
		t.Skip("skipping integration test (set MONGODB_URL to run)")
	}
	return url
}
