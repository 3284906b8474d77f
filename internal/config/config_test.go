package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Output.LineWidth != 60 {
		t.Errorf("default line width = %d, want 60", c.Output.LineWidth)
	}
	if c.Verbose {
		t.Errorf("verbose should default to false")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GFFX_OUTPUT_LINE_WIDTH", "80")
	t.Setenv("GFFX_VERBOSE", "true")
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Output.LineWidth != 80 {
		t.Errorf("line width = %d, want env override 80", c.Output.LineWidth)
	}
	if !c.Verbose {
		t.Errorf("verbose env override not applied")
	}
}
