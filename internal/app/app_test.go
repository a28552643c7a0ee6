package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/popup-overlay/internal/placement"
	"github.com/atomicstack/popup-overlay/internal/popup"
)

const brokenContent = `
title = "Broken"

[[line]]
widget = { type = "label", text = "fine" }

[[line]]
widget = { type = "label", text = "orphan" }
args = [true, 0, 0, "", "nowhere"]

[[line]]
widget = { type = "wobble" }
`

func writeContent(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "popup.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write content: %v", err)
	}
	return path
}

func TestBuildUsesDemoWithoutContent(t *testing.T) {
	p, err := Build(Config{}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Title() != "A Popup" {
		t.Fatalf("expected demo title, got %q", p.Title())
	}
	if len(p.Diagnostics()) != 0 {
		t.Fatalf("expected demo to place cleanly, got %v", p.Diagnostics())
	}
	if _, ok := p.Registry().Lookup(popup.RootName); !ok {
		t.Fatalf("expected root registered")
	}
}

func TestBuildTitleOverride(t *testing.T) {
	p, err := Build(Config{Title: "Custom"}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Title() != "Custom" {
		t.Fatalf("expected title override, got %q", p.Title())
	}
}

func TestBuildMissingFile(t *testing.T) {
	if _, err := Build(Config{ContentPath: filepath.Join(t.TempDir(), "nope.toml")}, nil); err == nil {
		t.Fatalf("expected error for missing content")
	}
}

func TestCheckReportsDiagnostics(t *testing.T) {
	path := writeContent(t, brokenContent)
	var out strings.Builder
	err := Check(Config{ContentPath: path}, &out)
	if !errors.Is(err, ErrDiagnostics) {
		t.Fatalf("expected ErrDiagnostics, got %v", err)
	}
	report := out.String()
	if !strings.Contains(report, "2 of 3 lines failed") {
		t.Fatalf("expected summary line, got:\n%s", report)
	}
	if !strings.Contains(report, placement.Describe(placement.ErrParentNotFound)) {
		t.Fatalf("expected parent-not-found row, got:\n%s", report)
	}
	if !strings.Contains(report, placement.Describe(placement.ErrArg1NotObject)) {
		t.Fatalf("expected unknown widget row, got:\n%s", report)
	}
}

func TestCheckCleanContent(t *testing.T) {
	var out strings.Builder
	if err := Check(Config{}, &out); err != nil {
		t.Fatalf("expected demo to check cleanly, got %v", err)
	}
	if !strings.Contains(out.String(), "<demo>: ok") {
		t.Fatalf("expected ok summary, got %q", out.String())
	}
}
