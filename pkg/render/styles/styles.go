// Package styles owns the visual vocabulary of the rendered document:
// the per-layer color palette, the embedded CSS rules, key label
// formatting and XML escaping.
package styles

import (
	"bytes"
	"encoding/xml"
)

// CSS holds the style rules embedded in the SVG header. Class names
// are shared between the layer, combo and legend renderers.
const CSS = `      .layer-title { font-family: Arial, sans-serif; font-size: 28px; font-weight: bold; fill: #333; }
      .key { fill: #f0f0f0; stroke: #333; stroke-width: 2; rx: 6; }
      .key-empty { fill: #fafafa; stroke: #ccc; stroke-width: 1; stroke-dasharray: 3,3; rx: 6; }
      .key-text { font-family: 'Courier New', monospace; font-size: 12px; fill: #000; text-anchor: middle; }
      .key-small { font-size: 9px; }
      .empty-label { font-family: Arial, sans-serif; font-size: 10px; fill: #999; text-anchor: middle; }
      .legend { font-family: Arial, sans-serif; font-size: 14px; fill: #666; }
      .combo-line { stroke: #003366; stroke-width: 3; fill: none; opacity: 0.7; }
      .combo-key { fill: #003366; stroke: #001a33; stroke-width: 1.5; rx: 3; }
      .combo-text { font-family: 'Courier New', monospace; font-size: 8px; fill: #fff; text-anchor: middle; font-weight: bold; }
      .combo-overlay { fill: #003366; stroke: #001a33; stroke-width: 2; rx: 6; opacity: 0.95; }
      .combo-overlay-text { font-family: 'Courier New', monospace; font-size: 11px; fill: #fff; text-anchor: middle; font-weight: bold; }`

// layerColors is the fixed palette: base gray, then light blue,
// orange, purple and pink for the first four overlay layers.
var layerColors = map[int]string{
	0: "#f0f0f0",
	1: "#e8f4f8",
	2: "#fff4e8",
	3: "#f0e8ff",
	4: "#f8e8f0",
}

// defaultLayerColor is used for layers beyond the palette.
const defaultLayerColor = "#f0f0f0"

// LayerColor returns the fill color for a layer's keys.
func LayerColor(layer int) string {
	if c, ok := layerColors[layer]; ok {
		return c
	}
	return defaultLayerColor
}

// EscapeXML escapes text for embedding in SVG markup.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
