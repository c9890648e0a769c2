// Package sink renders a loaded keymap document to its output
// formats: the SVG visualization itself plus PNG (rasterized in
// process) and JSON (machine-readable layout dump).
package sink

import (
	"bytes"
	"fmt"

	"github.com/leiserfg/rmk-piantor/pkg/keymap"
	"github.com/leiserfg/rmk-piantor/pkg/render/layout"
	"github.com/leiserfg/rmk-piantor/pkg/render/styles"
)

// Canvas geometry. Every layer block occupies one layerHeight slice
// below the top margin; the legend follows the last layer.
const (
	canvasWidth  = 1600
	layerHeight  = 350
	legendHeight = 400
	topMargin    = 50
	blockMargin  = 50 // horizontal translate of layer and legend groups
)

// CanvasSize returns the document dimensions for a declared layer
// count: fixed width, height growing by one layer block per layer.
func CanvasSize(layers int) (width, height int) {
	return canvasWidth, topMargin + layers*layerHeight + legendHeight
}

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	layoutName string
	vialName   string
}

// WithSourceNames sets the input file names shown in the footer
// caption. Defaults are keyboard.toml and vial.json.
func WithSourceNames(layoutName, vialName string) SVGOption {
	return func(r *svgRenderer) {
		r.layoutName = layoutName
		r.vialName = vialName
	}
}

// RenderSVG renders the complete document: header with embedded style
// rules, one block per declared layer, the legend, and a footer
// caption. Position maps for all layers are built before any layer is
// rendered.
func RenderSVG(doc *keymap.Document, opts ...SVGOption) []byte {
	r := svgRenderer{layoutName: "keyboard.toml", vialName: "vial.json"}
	for _, opt := range opts {
		opt(&r)
	}

	layers := doc.Layout.Layers
	positions := layout.NewPositionMap()
	for i := 0; i < layers; i++ {
		positions.BuildLayer(doc, i)
	}

	width, height := CanvasSize(layers)

	var buf bytes.Buffer
	renderHeader(&buf, width, height)

	for i := 0; i < layers; i++ {
		renderLayer(&buf, doc, positions, i, topMargin+i*layerHeight)
	}
	renderLegend(&buf, doc, topMargin+layers*layerHeight)

	fmt.Fprintf(&buf, "  <!-- Footer -->\n")
	fmt.Fprintf(&buf, `  <text x="%d" y="%d" class="legend" text-anchor="end">Generated from %s and %s</text>`+"\n",
		width-blockMargin, height-blockMargin,
		styles.EscapeXML(r.layoutName), styles.EscapeXML(r.vialName))

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderHeader(buf *bytes.Buffer, width, height int) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, height, width, height)
	buf.WriteString("  <defs>\n    <style>\n")
	buf.WriteString(styles.CSS)
	buf.WriteString("\n    </style>\n  </defs>\n\n")
}
