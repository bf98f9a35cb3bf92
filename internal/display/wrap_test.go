package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestWrap_BreaksLongLines(t *testing.T) {
	text := strings.Repeat("word ", 40)
	wrapped := Wrap(text)
	for _, line := range strings.Split(wrapped, "\n") {
		if len(line) > DefaultWidth {
			t.Fatalf("line exceeds DefaultWidth: %q", line)
		}
	}
}

func TestCapitalize(t *testing.T) {
	testutil.AssertEqual(t, "lowercase word", Capitalize("ring"), "Ring")
	testutil.AssertEqual(t, "already capitalized", Capitalize("Ring"), "Ring")
	testutil.AssertEqual(t, "empty string", Capitalize(""), "")
}

func TestTitle(t *testing.T) {
	testutil.AssertEqual(t, "multi-word phrase", Title("magic ring"), "Magic Ring")
}
