package linewrap

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestWrapShortTextUnchanged(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cfg := Config{LineLimit: 20, BytesPerChar: 1}
	if out := Wrap("Wohnzimmer", cfg); out != "Wohnzimmer" {
		t.Errorf("expected short text unchanged, got '%s'", out)
	}
	// exactly at the budget: still a single unbroken line
	exact := strings.Repeat("x", 20)
	if out := Wrap(exact, cfg); out != exact {
		t.Errorf("expected text of exactly budget length unchanged, got '%s'", out)
	}
}

func TestWrapHardBreak(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cfg := Config{LineLimit: 20, BytesPerChar: 1}
	long := strings.Repeat("x", 21)
	out := Wrap(long, cfg)
	want := strings.Repeat("x", 20) + LineBreakToken + "x"
	if out != want {
		t.Errorf("expected hard break at byte 20, got '%s'", out)
	}
}

func TestWrapWordBoundary(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cfg := Config{LineLimit: 10, BytesPerChar: 1}
	out := Wrap("the quick brown fox jumps", cfg)
	for _, line := range strings.Split(out, LineBreakToken) {
		if len(line) > 10 {
			t.Errorf("line '%s' exceeds the budget", line)
		}
		if strings.HasPrefix(line, " ") || strings.HasSuffix(line, " ") {
			t.Errorf("line '%s' carries a blank at its edge", line)
		}
	}
	joined := strings.ReplaceAll(out, LineBreakToken, " ")
	if strings.Join(strings.Fields(joined), " ") != "the quick brown fox jumps" {
		t.Errorf("wrapping lost or split words: '%s'", out)
	}
}

func TestWrapNeverSplitsBreakableWords(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cfg := Config{LineLimit: 12, BytesPerChar: 1}
	out := Wrap("Heizung Bad an", cfg)
	if out != "Heizung Bad"+LineBreakToken+"an" {
		t.Errorf("expected break on the word boundary, got '%s'", out)
	}
}

func TestWrapBytesPerCharScalesBudget(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// 10 chars at 3 bytes each: a 30-byte budget
	cfg := Config{LineLimit: 10, BytesPerChar: 3}
	text := strings.Repeat("界", 10) // 30 bytes
	if out := Wrap(text, cfg); out != text {
		t.Errorf("expected 30-byte text to fit a 30-byte budget, got '%s'", out)
	}
	text = strings.Repeat("界", 11)
	out := Wrap(text, cfg)
	if out != strings.Repeat("界", 10)+LineBreakToken+"界" {
		t.Errorf("expected hard break after 10 wide characters, got '%s'", out)
	}
}

func TestWrapInputCap(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cfg := Config{LineLimit: 20, BytesPerChar: 1}
	long := strings.Repeat("a b ", 300) // 1200 bytes
	if out := Wrap(long, cfg); out != TooLongDiagnostic {
		t.Errorf("expected the too-long diagnostic, got '%s'", out)
	}
	// 1000 bytes exactly is still processed
	if out := Wrap(strings.Repeat("x", 1000), cfg); out == TooLongDiagnostic {
		t.Errorf("text of exactly %d bytes should be processed", MaxInputLen)
	}
}

func TestWrapInvalidConfig(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, cfg := range []Config{
		{LineLimit: 0, BytesPerChar: 1},
		{LineLimit: 20, BytesPerChar: 0},
		{LineLimit: 0, BytesPerChar: 0},
	} {
		if out := Wrap("whatever", cfg); out != InvalidConfigDiagnostic {
			t.Errorf("expected the invalid-config diagnostic for %v, got '%s'", cfg, out)
		}
	}
}

func TestWrapPassThroughPreWrapped(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cfg := Config{LineLimit: 5, BytesPerChar: 1}
	pre := "already" + LineBreakToken + "wrapped by the caller"
	if out := Wrap(pre, cfg); out != pre {
		t.Errorf("expected pre-wrapped text unchanged, got '%s'", out)
	}
}

func TestWrapIdempotent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cfg := Config{LineLimit: 10, BytesPerChar: 1}
	inputs := []string{
		"the quick brown fox jumps over the lazy dog",
		strings.Repeat("x", 35),
		"short",
		"   leading spaces and   runs   of blanks inside",
	}
	for _, input := range inputs {
		once := Wrap(input, cfg)
		twice := Wrap(once, cfg)
		if once != twice {
			t.Errorf("wrap not idempotent for '%s': '%s' vs '%s'", input, once, twice)
		}
	}
}

func TestWrapSkipsLeadingSpaces(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cfg := Config{LineLimit: 8, BytesPerChar: 1}
	out := Wrap("   abcdefgh next", cfg)
	if strings.Contains(out, LineBreakToken+" ") {
		t.Errorf("a line starts with a blank: '%s'", out)
	}
	if strings.HasPrefix(out, " ") {
		t.Errorf("output starts with a blank: '%s'", out)
	}
}
