package annotate

import (
	"strings"
	"testing"
)

func TestStripHTML_PlainTextPassesThrough(t *testing.T) {
	text := "the gun was the only gun"
	if got := StripHTML(text); got != text {
		t.Errorf("Expected plain text unchanged, got %q", got)
	}
}

func TestStripHTML_ExtractsVisibleText(t *testing.T) {
	got := StripHTML("<p>hello <b>dark</b> world</p>")
	if got != "hello dark world" {
		t.Errorf("Expected 'hello dark world', got %q", got)
	}
}

func TestStripHTML_SkipsScriptAndStyle(t *testing.T) {
	input := `<html><head><script>var hidden = "weapon";</script><style>.x{}</style></head><body><p>visible text</p></body></html>`
	got := StripHTML(input)

	if strings.Contains(got, "hidden") || strings.Contains(got, "weapon") {
		t.Errorf("Script content leaked into output: %q", got)
	}
	if !strings.Contains(got, "visible text") {
		t.Errorf("Expected visible text in output, got %q", got)
	}
}

func TestStripHTML_StrayAngleBracket(t *testing.T) {
	// "<" without a closing ">" must not trigger the parser.
	text := "count was < expected"
	if got := StripHTML(text); got != text {
		t.Errorf("Expected text with stray '<' unchanged, got %q", got)
	}
}
