package normalization

import "testing"

type color string

const (
	colorRed  color = "red"
	colorBlue color = "blue"
)

var colors = NewNormalizer(map[string]color{
	"red":  colorRed,
	"blue": colorBlue,
}, colorRed)

func TestNormalizeKnownValues(t *testing.T) {
	if got := colors.Normalize("blue"); got != colorBlue {
		t.Errorf("expected blue, got %v", got)
	}
	if got := colors.Normalize("  RED "); got != colorRed {
		t.Errorf("expected case/space insensitive match, got %v", got)
	}
}

func TestNormalizeFallsBackToDefault(t *testing.T) {
	if got := colors.Normalize("chartreuse"); got != colorRed {
		t.Errorf("expected default for unknown value, got %v", got)
	}
}

func TestNormalizeWithError(t *testing.T) {
	if _, err := colors.NormalizeWithError("chartreuse"); err == nil {
		t.Fatal("expected error for unknown value")
	}
	v, err := colors.NormalizeWithError("Blue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != colorBlue {
		t.Errorf("expected blue, got %v", v)
	}
}

func TestValidKeysSorted(t *testing.T) {
	keys := colors.ValidKeys()
	if len(keys) != 2 || keys[0] != "blue" || keys[1] != "red" {
		t.Errorf("unexpected keys: %v", keys)
	}
}
