package doctor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/llamactl/llamactl/internal/config"
)

func TestPrefsCheck_MissingFileIsFixableWarn(t *testing.T) {
	check := &PrefsCheck{Path: filepath.Join(t.TempDir(), "config.json")}

	result := check.Run()
	if result.Status != StatusWarn {
		t.Fatalf("status = %v, want warn", result.Status)
	}
	if !result.Fixable {
		t.Error("missing preferences should be fixable")
	}

	if err := check.Fix(); err != nil {
		t.Fatalf("Fix: %v", err)
	}
	if result := check.Run(); result.Status != StatusPass {
		t.Errorf("status after fix = %v, want pass", result.Status)
	}
}

func TestPrefsCheck_InvalidJSONFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	check := &PrefsCheck{Path: path}
	result := check.Run()
	if result.Status != StatusFail {
		t.Fatalf("status = %v, want fail", result.Status)
	}
	if !result.Fixable {
		t.Error("broken preferences should be fixable")
	}
}

func TestPrefsCheck_FixLeavesValidFileAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := config.DefaultConfig()
	cfg.LastModel = "llama3.2:3b"
	if err := config.Save(cfg, path); err != nil {
		t.Fatal(err)
	}

	check := &PrefsCheck{Path: path}
	if err := check.Fix(); err != nil {
		t.Fatalf("Fix: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.LastModel != "llama3.2:3b" {
		t.Errorf("Fix overwrote a valid preferences file: last_model = %q", loaded.LastModel)
	}
}

func TestCatalogCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")

	check := &CatalogCheck{Path: path}
	result := check.Run()
	if result.Status != StatusPass {
		t.Fatalf("status = %v, want pass: %s", result.Status, result.Message)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("catalog file was not written: %v", err)
	}
}
