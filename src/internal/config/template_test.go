package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"
)

func TestRenderOutputFile(t *testing.T) {
	cfg := &Config{
		General:            &GeneralConfig{OutputDir: "logs"},
		_absConfigFilePath: filepath.Join("/etc", "debug-tools", "debug-tools.toml"),
	}
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	outputDir := filepath.Join("/etc", "debug-tools", "logs")

	tests := []struct {
		name     string
		output   string
		expected string
		wantErr  bool
	}{
		{"empty", "", "", false},
		{"plain relative", "debug.log", filepath.Join(outputDir, "debug.log"), false},
		{"name and date", "{{name}}-{{date}}.log", filepath.Join(outputDir, "plugin-2024-03-09.log"), false},
		{"pid", "{{ pid }}.log", filepath.Join(outputDir, strconv.Itoa(os.Getpid())+".log"), false},
		{"drive letter kept", `C:\Users\x\{{name}}.txt`, `C:\Users\x\plugin.txt`, false},
		{"unknown variable", "{{host}}.log", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cfg.RenderOutputFile(&LoggerConfig{Name: "plugin", OutputFile: tt.output}, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RenderOutputFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("RenderOutputFile() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRenderOutputFile_AbsolutePathKept(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{General: &GeneralConfig{}, _absConfigFilePath: filepath.Join(dir, "c.toml")}
	path := filepath.Join(dir, "abs", "{{name}}.log")

	got, err := cfg.RenderOutputFile(&LoggerConfig{Name: "x", OutputFile: path}, time.Now())
	if err != nil {
		t.Fatalf("RenderOutputFile() error = %v", err)
	}
	if got != filepath.Join(dir, "abs", "x.log") {
		t.Errorf("RenderOutputFile() = %q", got)
	}
}

func TestUsesProcessID(t *testing.T) {
	tests := []struct {
		output   string
		expected bool
	}{
		{"", false},
		{"debug.log", false},
		{"{{name}}-{{date}}.log", false},
		{"{{name}}-{{pid}}.log", true},
		{"{{ pid }}.log", true},
		{"pid.log", false},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			lc := &LoggerConfig{Name: "plugin", OutputFile: tt.output}
			if got := lc.UsesProcessID(); got != tt.expected {
				t.Errorf("UsesProcessID() = %v, want %v", got, tt.expected)
			}
		})
	}
}
