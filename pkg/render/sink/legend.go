package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/leiserfg/rmk-piantor/pkg/keymap"
	"github.com/leiserfg/rmk-piantor/pkg/render/styles"
)

const (
	totalKeys       = 42 // fixed split 3×6+3 shape, 21 per side
	maxLegendCombos = 3
	maxLegendLayers = 5
)

// renderLegend emits the static explanatory block: keyboard identity,
// key counts, the first few combos, the mod-tap note, a color swatch
// per layer and the transparency marker explanation.
func renderLegend(buf *bytes.Buffer, doc *keymap.Document, yOffset int) {
	buf.WriteString("  <!-- Legend -->\n")
	fmt.Fprintf(buf, `  <g id="legend" transform="translate(%d, %d)">`+"\n", blockMargin, yOffset)
	buf.WriteString(`    <text x="0" y="0" class="layer-title">Legend &amp; Info</text>` + "\n\n")

	fmt.Fprintf(buf, `    <text x="0" y="40" class="legend">• Keyboard: %s (Split 3×6+3 layout)</text>`+"\n",
		styles.EscapeXML(doc.Keyboard.Name))
	fmt.Fprintf(buf, `    <text x="0" y="65" class="legend">• Total Keys: %d (21 per side)</text>`+"\n", totalKeys)

	for i, combo := range doc.Combos() {
		if i >= maxLegendCombos {
			break
		}
		fmt.Fprintf(buf, `    <text x="0" y="%d" class="legend">• Combo: %s = %s</text>`+"\n",
			90+i*25,
			styles.EscapeXML(strings.Join(combo.Actions, " + ")),
			styles.EscapeXML(combo.Output))
	}

	buf.WriteString(`    <text x="0" y="115" class="legend">• MT() = Mod-Tap (hold for modifier, tap for key)</text>` + "\n\n")

	y := 140
	for layer := 0; layer < doc.Layout.Layers && layer < maxLegendLayers; layer++ {
		fmt.Fprintf(buf, `    <rect x="0" y="%d" width="50" height="30" rx="6" class="key" style="fill: %s"/>`+"\n",
			y, styles.LayerColor(layer))
		fmt.Fprintf(buf, `    <text x="60" y="%d" class="legend">Layer %d: %s</text>`+"\n\n",
			y+20, layer, styles.EscapeXML(doc.LayerName(layer)))
		y += 40
	}

	fmt.Fprintf(buf, `    <rect x="0" y="%d" width="50" height="30" rx="6" class="key-empty"/>`+"\n", y)
	fmt.Fprintf(buf, `    <text x="60" y="%d" class="legend">Transparent key (passes through to lower layer)</text>`+"\n", y+20)

	buf.WriteString("  </g>\n\n")
}
