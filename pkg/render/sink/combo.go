package sink

import (
	"bytes"
	"fmt"

	"github.com/leiserfg/rmk-piantor/pkg/keymap"
	"github.com/leiserfg/rmk-piantor/pkg/render/layout"
	"github.com/leiserfg/rmk-piantor/pkg/render/styles"
)

// Combo badge geometry.
const (
	overlaySize      = 28 // inset badge edge for adjacent pairs
	overlayBaseline  = 5  // text offset below the badge center
	midpointRadius   = 15 // circular badge for distant pairs
	midpointBaseline = 4
	keyCenter        = layout.KeySize / 2
)

// renderCombo draws the visual for one combo on the layer currently
// being rendered. Combos targeting another layer, with fewer than two
// actions, or with fewer than two resolvable positions emit nothing.
//
// An adjacent pair gets a single inset badge between the two keys; any
// other shape gets connecting lines from the first key to the rest,
// plus a midpoint badge with the output label when the combo has
// exactly two keys.
func renderCombo(buf *bytes.Buffer, positions *layout.PositionMap, combo keymap.Combo, layer int, xOffset, yOffset float64) {
	if combo.Layer != layer || len(combo.Actions) < 2 {
		return
	}

	resolved := make([]layout.Point, 0, len(combo.Actions))
	for _, action := range combo.Actions {
		if pos, ok := positions.Find(action, layer); ok {
			resolved = append(resolved, layout.Point{X: pos.X + xOffset, Y: pos.Y + yOffset})
		}
	}
	if len(resolved) < 2 {
		return
	}

	contiguous := true
	for i := 0; i < len(resolved)-1; i++ {
		if !layout.Contiguous(resolved[i], resolved[i+1]) {
			contiguous = false
			break
		}
	}

	if contiguous && len(resolved) == 2 {
		renderInsetBadge(buf, resolved[0], resolved[1], combo.Output)
		return
	}
	renderConnectors(buf, resolved, combo.Output)
}

// renderInsetBadge draws a small overlay key centered between two
// adjacent keys, labeled with the combo output.
func renderInsetBadge(buf *bytes.Buffer, a, b layout.Point, output string) {
	centerX := (a.X+b.X)/2 + keyCenter
	centerY := (a.Y+b.Y)/2 + keyCenter

	fmt.Fprintf(buf, `    <rect x="%g" y="%g" width="%d" height="%d" class="combo-overlay"/>`+"\n",
		centerX-overlaySize/2, centerY-overlaySize/2, overlaySize, overlaySize)
	fmt.Fprintf(buf, `    <text x="%g" y="%g" class="combo-overlay-text">%s</text>`+"\n",
		centerX, centerY+overlayBaseline, outputLabel(output))
}

// renderConnectors draws lines from the first key's center to every
// other key. A two-key combo additionally gets a circular badge at the
// segment midpoint; larger non-adjacent combos get lines only.
func renderConnectors(buf *bytes.Buffer, resolved []layout.Point, output string) {
	buf.WriteString("    <!-- Combo connection lines -->\n")

	x1 := resolved[0].X + keyCenter
	y1 := resolved[0].Y + keyCenter
	for _, p := range resolved[1:] {
		fmt.Fprintf(buf, `    <line x1="%g" y1="%g" x2="%g" y2="%g" class="combo-line"/>`+"\n",
			x1, y1, p.X+keyCenter, p.Y+keyCenter)
	}

	if len(resolved) == 2 {
		midX := (x1 + resolved[1].X + keyCenter) / 2
		midY := (y1 + resolved[1].Y + keyCenter) / 2
		fmt.Fprintf(buf, `    <circle cx="%g" cy="%g" r="%d" class="combo-overlay"/>`+"\n",
			midX, midY, midpointRadius)
		fmt.Fprintf(buf, `    <text x="%g" y="%g" class="combo-overlay-text">%s</text>`+"\n",
			midX, midY+midpointBaseline, outputLabel(output))
	}
}

// outputLabel formats a combo output token as a single escaped line.
func outputLabel(output string) string {
	lines, _ := styles.FormatLabel(output)
	return styles.EscapeXML(lines[0])
}
