package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/leiserfg/rmk-piantor/pkg/errors"
)

const testLayout = `[keyboard]
name = "Piantor"

[layout]
layers = 1
keymap = [
  # Base
  [
    ["q", "w", "e", "r", "t", "y", "u", "i", "o", "p", "[", "]"],
  ],
]
`

func testContext() context.Context {
	var buf bytes.Buffer
	return withLogger(context.Background(), newLogger(&buf, log.ErrorLevel))
}

func TestRunGenerate(t *testing.T) {
	dir := t.TempDir()
	layoutPath := filepath.Join(dir, "keyboard.toml")
	vialPath := filepath.Join(dir, "vial.json")
	if err := os.WriteFile(layoutPath, []byte(testLayout), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(vialPath, []byte(`{"name": "piantor"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := newGenerateOpts()
	opts.layoutPath = layoutPath
	opts.vialPath = vialPath
	opts.output = filepath.Join(dir, "keyboard.svg")

	if err := runGenerate(testContext(), opts); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	data, err := os.ReadFile(opts.output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	svg := string(data)
	if !strings.HasPrefix(svg, "<svg xmlns=") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("output is not a complete SVG document")
	}
	if !strings.Contains(svg, "Layer 0: Base") {
		t.Error("output missing annotated layer title")
	}
	if !strings.Contains(svg, "Generated from keyboard.toml and vial.json") {
		t.Error("output missing footer caption")
	}
}

func TestRunGenerateMissingLayout(t *testing.T) {
	opts := newGenerateOpts()
	opts.layoutPath = filepath.Join(t.TempDir(), "nope.toml")
	opts.output = filepath.Join(t.TempDir(), "out.svg")

	err := runGenerate(testContext(), opts)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("runGenerate() error = %v, want code %s", err, errors.ErrCodeFileNotFound)
	}
	if _, statErr := os.Stat(opts.output); statErr == nil {
		t.Error("no output should be written on failure")
	}
}
