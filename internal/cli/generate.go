package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leiserfg/rmk-piantor/pkg/errors"
	"github.com/leiserfg/rmk-piantor/pkg/keymap"
	"github.com/leiserfg/rmk-piantor/pkg/render/sink"
)

const (
	formatSVG  = "svg"
	formatPNG  = "png"
	formatJSON = "json"

	defaultLayoutPath = "keyboard.toml"
	defaultVialPath   = "vial.json"
	defaultScale      = 2.0 // 2x raster resolution
)

// generateOpts holds the resolved inputs of one conversion run.
type generateOpts struct {
	layoutPath string // layout description (TOML)
	vialPath   string // auxiliary Vial metadata (JSON)
	output     string // output document path; derived from format when empty
	format     string // svg, png or json
	scale      float64
}

func newGenerateOpts() *generateOpts {
	return &generateOpts{
		layoutPath: defaultLayoutPath,
		vialPath:   defaultVialPath,
		format:     formatSVG,
		scale:      defaultScale,
	}
}

// applyArgs overlays the positional arguments [layout] [vial] [output]
// onto the defaults.
func (o *generateOpts) applyArgs(args []string) {
	if len(args) > 0 {
		o.layoutPath = args[0]
	}
	if len(args) > 1 {
		o.vialPath = args[1]
	}
	if len(args) > 2 {
		o.output = args[2]
	}
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatPNG: true, formatJSON: true}

// validate checks the format flag and fills in the default output
// path, which follows the chosen format's extension.
func (o *generateOpts) validate() error {
	if !validFormats[o.format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', or 'json')", o.format)
	}
	if o.output == "" {
		o.output = strings.TrimSuffix(defaultLayoutPath, filepath.Ext(defaultLayoutPath)) + "." + o.format
	}
	return nil
}

// runGenerate performs the whole conversion: load both inputs, render
// the requested format fully in memory, then write the output file in
// one shot. Any failure aborts the run without partial output.
func runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	doc, err := keymap.Load(opts.layoutPath)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s: %d layers declared, %d defined, %d combos",
		opts.layoutPath, doc.Layout.Layers, len(doc.Layout.Keymap), len(doc.Combos()))

	vial, err := keymap.LoadVial(opts.vialPath)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s: %d top-level entries", opts.vialPath, len(vial))

	data, err := renderDocument(doc, opts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeGeneration, err, "rendering %s", opts.format)
	}
	logger.Debugf("Rendered %s: %d bytes", opts.format, len(data))

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeGeneration, err, "writing %s", opts.output)
	}
	p.done(fmt.Sprintf("Rendered %d layers", doc.Layout.Layers))

	printSummary(doc, opts)
	return nil
}

// renderDocument dispatches to the sink for the requested format.
func renderDocument(doc *keymap.Document, opts *generateOpts) ([]byte, error) {
	sourceNames := sink.WithSourceNames(filepath.Base(opts.layoutPath), filepath.Base(opts.vialPath))

	switch opts.format {
	case formatSVG:
		return sink.RenderSVG(doc, sourceNames), nil
	case formatPNG:
		return sink.RenderPNG(doc, sink.WithScale(opts.scale), sink.WithPNGSVGOptions(sourceNames))
	case formatJSON:
		return sink.RenderJSON(doc)
	default:
		return nil, fmt.Errorf("unknown format: %s", opts.format)
	}
}

// printSummary prints the success lines: output path, keyboard
// identity, layer count and names, canvas dimensions.
func printSummary(doc *keymap.Document, opts *generateOpts) {
	width, height := sink.CanvasSize(doc.Layout.Layers)

	names := make([]string, 0, doc.Layout.Layers)
	for i := 0; i < doc.Layout.Layers; i++ {
		names = append(names, fmt.Sprintf("%d:%s", i, doc.LayerName(i)))
	}

	printSuccess("Generated %s", opts.output)
	printDetail("Keyboard", "%s", doc.Keyboard.Name)
	printDetail("Layers", "%d", doc.Layout.Layers)
	printDetail("Layer names", "%s", strings.Join(names, "  "))
	printDetail("Dimensions", "%dx%d", width, height)
}
