package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeTempConfig(t, "parameter_set: ML-KEM-1024\n")
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.ParameterSet != "ML-KEM-1024" {
		t.Errorf("ParameterSet = %q, want ML-KEM-1024", c.ParameterSet)
	}
	if c.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info (default)", c.Logging.Level)
	}
	if c.Output.Encoding != "hex" {
		t.Errorf("Output.Encoding = %q, want hex (default)", c.Output.Encoding)
	}
}

func TestLoadConfigRejectsUnknownParameterSet(t *testing.T) {
	path := writeTempConfig(t, "parameter_set: ML-KEM-2048\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig accepted an unknown parameter set")
	}
}

func TestLoadConfigRejectsInvalidLoggingLevel(t *testing.T) {
	path := writeTempConfig(t, "logging:\n  level: verbose\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig accepted an invalid logging level")
	}
}

func TestLoadConfigRejectsInvalidEncoding(t *testing.T) {
	path := writeTempConfig(t, "output:\n  encoding: binary\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig accepted an invalid output encoding")
	}
}

func TestGenerateDefaultConfig(t *testing.T) {
	c := GenerateDefaultConfig()
	if err := c.validate(); err != nil {
		t.Errorf("GenerateDefaultConfig produced an invalid config: %v", err)
	}
}
