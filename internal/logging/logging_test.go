package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_TextLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Output: &buf})

	l.Info("dropped")
	l.Warn("kept", String("material", "Unobtainium"))

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info message should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "kept") || !strings.Contains(out, "material=Unobtainium") {
		t.Errorf("missing warn record: %q", out)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Format: "json", Output: &buf}).With(String("cmd", "sweep"))

	l.Debug("point", Float("freq", 1e9))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "point" {
		t.Errorf("expected msg 'point', got %v", rec["msg"])
	}
	if rec["cmd"] != "sweep" {
		t.Errorf("expected inherited field cmd=sweep, got %v", rec["cmd"])
	}
	if rec["freq"] != 1e9 {
		t.Errorf("expected freq 1e9, got %v", rec["freq"])
	}
}

func TestNoop(t *testing.T) {
	l := Noop().With(String("a", "b"))
	l.Error("nothing happens")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "DEBUG"},
		{"WARNING", "WARN"},
		{"error", "ERROR"},
		{"", "INFO"},
		{"bogus", "INFO"},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in).Level().String(); got != tt.want {
			t.Errorf("parseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
