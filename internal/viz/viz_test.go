package viz

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rfcalc/internal/rf"
)

func TestFormatSI(t *testing.T) {
	tests := []struct {
		v    float64
		unit string
		want string
	}{
		{1e9, "Hz", "1 GHz"},
		{2.4e9, "Hz", "2.4 GHz"},
		{2.087e-6, "m", "2.087 µm"},
		{5.813e7, "S/m", "58.13 MS/m"},
		{50, "ohm", "50 ohm"},
		{0, "Hz", "0 Hz"},
		{-0.5, "rad", "-500 mrad"},
		{1e-20, "F/m", "1e-20 F/m"},
		{math.NaN(), "m", "NaN m"},
		{1, "", "1"},
	}

	for _, tt := range tests {
		if got := FormatSI(tt.v, tt.unit); got != tt.want {
			t.Errorf("FormatSI(%g, %q) = %q, want %q", tt.v, tt.unit, got, tt.want)
		}
	}
}

func TestParseSI(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2.4G", 2.4e9},
		{"2.4e9", 2.4e9},
		{"2400M", 2.4e9},
		{"10 MHz", 1e7},
		{"100k", 1e5},
		{"1.5u", 1.5e-6},
		{"1.5µ", 1.5e-6},
		{"60", 60},
	}

	for _, tt := range tests {
		got, err := ParseSI(tt.in)
		if err != nil {
			t.Errorf("ParseSI(%q): %v", tt.in, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9*math.Abs(tt.want) {
			t.Errorf("ParseSI(%q) = %g, want %g", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "Hz", "fast", "1.2.3G"} {
		if _, err := ParseSI(bad); !errors.Is(err, rf.ErrParameterBounds) {
			t.Errorf("ParseSI(%q): got %v, want ErrParameterBounds", bad, err)
		}
	}
}

func TestTable(t *testing.T) {
	out := Table([]string{"name", "er"}, [][]string{
		{"Teflon", "2.1"},
		{"Barium tetratitanate", "37"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected header and two rows, got %q", out)
	}
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "Barium tetratitanate  37") {
		t.Errorf("unexpected row %q", last)
	}
	if got := lipgloss.Width(lines[len(lines)-2]); got != 25 {
		t.Errorf("padded row width = %d, want 25", got)
	}
}

func TestSparklineChart(t *testing.T) {
	values := []float64{1, 2, math.NaN(), 4}
	out := SparklineChart(values, 4)
	if got := lipgloss.Width(out); got != 4 {
		t.Errorf("width = %d, want 4", got)
	}
	if !strings.Contains(out, "▁") || !strings.Contains(out, "█") {
		t.Errorf("expected lowest and highest bars in %q", out)
	}

	if got := SparklineChart(nil, 5); got != "─────" {
		t.Errorf("empty series = %q", got)
	}
	if got := SparklineChart([]float64{math.NaN(), math.NaN()}, 5); strings.TrimSpace(got) != "" {
		t.Errorf("all-NaN series should be blank, got %q", got)
	}
}

func TestThemeIndex(t *testing.T) {
	if got := ThemeIndex("phosphor"); Themes[got].Name != "phosphor" {
		t.Errorf("ThemeIndex(phosphor) = %d", got)
	}
	if got := ThemeIndex("missing"); got != 0 {
		t.Errorf("unknown theme should fall back to 0, got %d", got)
	}
	if names := ThemeNames(); len(names) != len(Themes) {
		t.Errorf("ThemeNames = %v", names)
	}
}
