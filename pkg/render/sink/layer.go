package sink

import (
	"bytes"
	"fmt"

	"github.com/leiserfg/rmk-piantor/pkg/keymap"
	"github.com/leiserfg/rmk-piantor/pkg/render/layout"
	"github.com/leiserfg/rmk-piantor/pkg/render/styles"
)

// Vertical text placement inside a 50×50 key.
const (
	singleLineBaseline = 30 // y offset of a lone label line
	multiLineBaseline  = 22 // y offset of the first stacked line
	lineSpacing        = 12
	emptyLabelBaseline = 28
)

// renderLayer emits one layer block inside a translated group. Layers
// declared beyond the defined keymap render as a placeholder: title
// plus a notice instead of a key grid.
func renderLayer(buf *bytes.Buffer, doc *keymap.Document, positions *layout.PositionMap, layer, yOffset int) {
	name := styles.EscapeXML(doc.LayerName(layer))

	if layer >= len(doc.Layout.Keymap) {
		fmt.Fprintf(buf, `  <g id="layer%d" transform="translate(%d, %d)">`+"\n", layer, blockMargin, yOffset)
		fmt.Fprintf(buf, `    <text x="400" y="0" class="layer-title">Layer %d: %s</text>`+"\n", layer, name)
		fmt.Fprintf(buf, `    <text x="400" y="150" class="legend" style="font-size: 18px;">(Layer is declared but has no key mappings in the layout file)</text>`+"\n")
		buf.WriteString("  </g>\n\n")
		return
	}

	fmt.Fprintf(buf, "  <!-- Layer %d -->\n", layer)
	fmt.Fprintf(buf, `  <g id="layer%d" transform="translate(%d, %d)">`+"\n", layer, blockMargin, yOffset)
	fmt.Fprintf(buf, `    <text x="400" y="0" class="layer-title">Layer %d: %s</text>`+"\n\n", layer, name)

	buf.WriteString("    <!-- Left half -->\n")
	renderHand(buf, doc, layer, layout.Left, 0)

	buf.WriteString("\n    <!-- Right half -->\n")
	renderHand(buf, doc, layer, layout.Right, keymap.HandCols)

	if combos := doc.Combos(); len(combos) > 0 {
		buf.WriteString("\n    <!-- Combos -->\n")
		for _, combo := range combos {
			renderCombo(buf, positions, combo, layer, 0, 0)
		}
	}

	buf.WriteString("  </g>\n\n")
}

// renderHand draws every populated template slot of one half. colBase
// shifts the grid column for the right hand, which reads columns 6–11.
func renderHand(buf *bytes.Buffer, doc *keymap.Document, layer int, template [keymap.Rows * keymap.HandCols]*layout.Point, colBase int) {
	for row := 0; row < keymap.Rows; row++ {
		for col := 0; col < keymap.HandCols; col++ {
			pos := template[row*keymap.HandCols+col]
			if pos == nil {
				continue
			}
			token := doc.Key(layer, row, colBase+col)
			// The base layer draws its transparency markers as normal
			// keys; only overlay layers show them as pass-through gaps.
			transparent := token == keymap.Transparent && layer > 0
			renderKey(buf, *pos, token, layer, transparent)
		}
	}
}

// renderKey draws a single key: a dashed placeholder for transparent
// or blank slots, otherwise a filled rounded box in the layer color
// with the formatted label centered inside.
func renderKey(buf *bytes.Buffer, pos layout.Point, token string, layer int, transparent bool) {
	if transparent || token == "" {
		fmt.Fprintf(buf, `    <rect x="%g" y="%g" width="%d" height="%d" rx="6" class="key-empty"/>`+"\n",
			pos.X, pos.Y, layout.KeySize, layout.KeySize)
		fmt.Fprintf(buf, `    <text x="%g" y="%g" class="empty-label">—</text>`+"\n",
			pos.X+layout.KeySize/2, pos.Y+emptyLabelBaseline)
		return
	}

	fmt.Fprintf(buf, `    <rect x="%g" y="%g" width="%d" height="%d" rx="6" class="key" style="fill: %s"/>`+"\n",
		pos.X, pos.Y, layout.KeySize, layout.KeySize, styles.LayerColor(layer))

	lines, compact := styles.FormatLabel(token)
	class := "key-text"
	if compact {
		class = "key-text key-small"
	}

	centerX := pos.X + layout.KeySize/2
	if len(lines) == 1 {
		fmt.Fprintf(buf, `    <text x="%g" y="%g" class="%s">%s</text>`+"\n",
			centerX, pos.Y+singleLineBaseline, class, styles.EscapeXML(lines[0]))
		return
	}
	for i, line := range lines {
		fmt.Fprintf(buf, `    <text x="%g" y="%g" class="%s">%s</text>`+"\n",
			centerX, pos.Y+multiLineBaseline+float64(i*lineSpacing), class, styles.EscapeXML(line))
	}
}
