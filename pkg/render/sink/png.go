package sink

import (
	"bytes"
	"image"
	"image/png"

	"github.com/benoitkugler/oksvg/svgicon"
	"github.com/benoitkugler/oksvg/svgraster"
	"github.com/srwiley/rasterx"

	"github.com/leiserfg/rmk-piantor/pkg/keymap"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions passes options through to the underlying SVG
// renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the raster scale factor (default 2.0 for 2x
// resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG renders the document as PNG by rasterizing the SVG in
// process. Shapes, fills and strokes are rasterized; text elements are
// not supported by the SVG engine and are omitted from the raster.
func RenderPNG(doc *keymap.Document, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}

	svg := RenderSVG(doc, r.svgOpts...)
	icon, err := svgicon.ReadIconStream(bytes.NewReader(svg), svgicon.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}

	w := int(icon.ViewBox.W * r.scale)
	h := int(icon.ViewBox.H * r.scale)
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(svgraster.NewDriver(w, h, scanner), 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
