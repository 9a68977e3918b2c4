package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in      string
		param   string
		n       int
		wantErr bool
	}{
		{"semi_major_axis=0.5:2:16", "semi_major_axis", 16, false},
		{"star.mass=0.5:1.5:3", "star.mass", 3, false},
		{"mass", "", 0, true},
		{"mass=1:2", "", 0, true},
		{"mass=a:2:3", "", 0, true},
		{"mass=1:2:x", "", 0, true},
	}

	for _, tt := range tests {
		a, err := parseAxis(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseAxis(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseAxis(%q) failed: %v", tt.in, err)
		}
		if a.Param != tt.param || len(a.Values) != tt.n {
			t.Errorf("parseAxis(%q) = %s with %d values", tt.in, a.Param, len(a.Values))
		}
	}
}

func TestParseBand(t *testing.T) {
	lo, hi, err := parseBand("273:373")
	if err != nil {
		t.Fatal(err)
	}
	if lo != 273 || hi != 373 {
		t.Errorf("parseBand = %v, %v", lo, hi)
	}

	for _, bad := range []string{"273", "a:1", "1:b"} {
		if _, _, err := parseBand(bad); err == nil {
			t.Errorf("parseBand(%q) expected error", bad)
		}
	}
}

func TestRunSystemSinglePlanet(t *testing.T) {
	preset, onlyPlanet = "sol", "Mars"
	t.Cleanup(func() { preset, onlyPlanet = "", "" })

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runSystem(cmd, nil); err != nil {
		t.Fatalf("runSystem failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Planet Mars") {
		t.Errorf("expected Mars in report:\n%s", out)
	}
	if strings.Contains(out, "Planet Earth") {
		t.Errorf("expected Earth to be left out:\n%s", out)
	}

	onlyPlanet = "Vulcan"
	if err := runSystem(cmd, nil); err == nil || !strings.Contains(err.Error(), "Vulcan") {
		t.Errorf("expected unknown planet error, got %v", err)
	}
}
