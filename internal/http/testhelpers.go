package httpx

import (
	"os"
	"strings"
	"testing"
)

// SkipIfNoTemplates skips tests that render pages when the template tree is
// not reachable from the package directory.
func SkipIfNoTemplates(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(TemplatePathFromTest); os.IsNotExist(err) {
		t.Skip("Templates not available, skipping integration test")
	}
}

// ContainsAll fails the test for every substring missing from body.
func ContainsAll(t *testing.T, body string, subs ...string) {
	t.Helper()
	for _, sub := range subs {
		if !strings.Contains(body, sub) {
			t.Errorf("response body missing %q", sub)
		}
	}
}
