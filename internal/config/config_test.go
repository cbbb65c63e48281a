package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		content   string // empty means the file is not created
		want      string
		published bool
	}{
		{name: "missing file", want: "api"},
		{name: "web default", content: "<?php\nreturn ['default_type' => 'web'];\n", want: "web", published: true},
		{name: "spaced assignment", content: "'default_type'   =>   'api'", want: "api", published: true},
		{name: "no key", content: "<?php\nreturn [];\n", want: "api", published: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config", "module-generator.php")
			if tt.content != "" {
				if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
					t.Fatal(err)
				}
			}

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if cfg.DefaultType != tt.want {
				t.Errorf("DefaultType = %q, want %q", cfg.DefaultType, tt.want)
			}
			if cfg.Published != tt.published {
				t.Errorf("Published = %v, want %v", cfg.Published, tt.published)
			}
			if cfg.SettingsPath != path {
				t.Errorf("SettingsPath = %q, want %q", cfg.SettingsPath, path)
			}
		})
	}
}

func TestLoad_UnknownDefaultKeptVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "module-generator.php")
	if err := os.WriteFile(path, []byte("'default_type' => 'mobile'"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultType != "mobile" {
		t.Errorf("DefaultType = %q, want mobile", cfg.DefaultType)
	}
}
