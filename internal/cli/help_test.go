package cli

import (
	"strings"
	"testing"
)

func TestRenderExamples(t *testing.T) {
	out := renderExamples()

	if !strings.Contains(out, "Examples:") {
		t.Error("missing section header")
	}
	for _, ex := range helpExamples {
		if !strings.Contains(out, ex[0]) {
			t.Errorf("missing example command %q", ex[0])
		}
		if !strings.Contains(out, ex[1]) {
			t.Errorf("missing explanation for %q", ex[0])
		}
	}

	// Every example invokes the tool by name
	for _, ex := range helpExamples {
		if !strings.HasPrefix(ex[0], "deadair ") {
			t.Errorf("example %q does not start with the command name", ex[0])
		}
	}
}
