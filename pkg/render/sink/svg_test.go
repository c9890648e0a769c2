package sink

import (
	"strings"
	"testing"

	"github.com/leiserfg/rmk-piantor/pkg/keymap"
)

// emptyGrid returns a blank 4×12 layer grid.
func emptyGrid() [][]string {
	grid := make([][]string, keymap.Rows)
	for r := range grid {
		grid[r] = make([]string, keymap.GridCols)
	}
	return grid
}

func testDocument(layers int, grids ...[][]string) *keymap.Document {
	return &keymap.Document{
		Keyboard:   keymap.Keyboard{Name: "Piantor"},
		Layout:     keymap.Layout{Layers: layers, Keymap: grids},
		LayerNames: map[int]string{0: "Base"},
	}
}

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		layers, width, height int
	}{
		{1, 1600, 800},
		{3, 1600, 1500},
		{5, 1600, 2200},
	}
	for _, tt := range tests {
		w, h := CanvasSize(tt.layers)
		if w != tt.width || h != tt.height {
			t.Errorf("CanvasSize(%d) = %d×%d, want %d×%d", tt.layers, w, h, tt.width, tt.height)
		}
	}
}

func TestRenderSVGLayerBlocks(t *testing.T) {
	// Three layers declared, only one defined: every declared layer
	// still gets a block, the undefined ones as placeholders.
	svg := string(RenderSVG(testDocument(3, emptyGrid())))

	if got := strings.Count(svg, `<g id="layer`); got != 3 {
		t.Errorf("layer blocks = %d, want 3", got)
	}
	if got := strings.Count(svg, "has no key mappings"); got != 2 {
		t.Errorf("placeholder notices = %d, want 2", got)
	}
	if !strings.Contains(svg, `viewBox="0 0 1600 1500"`) {
		t.Error("missing viewBox for 3 layers")
	}
	if !strings.Contains(svg, "Layer 0: Base") {
		t.Error("missing resolved layer title")
	}
	if !strings.Contains(svg, "Layer 2: 2") {
		t.Error("missing numeric fallback title")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestRenderSVGTransparencyMarker(t *testing.T) {
	base := emptyGrid()
	base[0][0] = "_"
	overlay := emptyGrid()
	overlay[0][0] = "_"

	svg := string(RenderSVG(testDocument(2, base, overlay)))

	// The slot at (0,40) appears once per layer: filled on the base
	// layer, dashed pass-through on the overlay.
	filled := `<rect x="0" y="40" width="50" height="50" rx="6" class="key" style=`
	dashed := `<rect x="0" y="40" width="50" height="50" rx="6" class="key-empty"/>`
	if got := strings.Count(svg, filled); got != 1 {
		t.Errorf("filled marker keys = %d, want 1 (base layer only)", got)
	}
	if got := strings.Count(svg, dashed); got != 1 {
		t.Errorf("dashed marker keys = %d, want 1 (overlay layer only)", got)
	}
}

func TestRenderSVGLayerColors(t *testing.T) {
	base := emptyGrid()
	base[0][0] = "q"
	overlay := emptyGrid()
	overlay[0][0] = "1"

	svg := string(RenderSVG(testDocument(2, base, overlay)))

	if !strings.Contains(svg, `style="fill: #f0f0f0"`) {
		t.Error("missing base layer fill")
	}
	if !strings.Contains(svg, `style="fill: #e8f4f8"`) {
		t.Error("missing layer 1 fill")
	}
}

func TestRenderSVGEscaping(t *testing.T) {
	grid := emptyGrid()
	grid[0][0] = "<"

	doc := testDocument(1, grid)
	doc.Keyboard.Name = "Pia&ntor"
	svg := string(RenderSVG(doc))

	if !strings.Contains(svg, ">&lt;</text>") {
		t.Error("token not escaped")
	}
	if !strings.Contains(svg, "Pia&amp;ntor") {
		t.Error("keyboard name not escaped")
	}
	if strings.Contains(svg, "Pia&ntor") {
		t.Error("raw ampersand leaked into markup")
	}
}

func TestRenderSVGFooter(t *testing.T) {
	svg := string(RenderSVG(testDocument(1, emptyGrid()),
		WithSourceNames("my.toml", "my.json")))
	if !strings.Contains(svg, "Generated from my.toml and my.json") {
		t.Error("footer should name the source files")
	}

	svg = string(RenderSVG(testDocument(1, emptyGrid())))
	if !strings.Contains(svg, "Generated from keyboard.toml and vial.json") {
		t.Error("footer should fall back to the default file names")
	}
}

func TestRenderSVGLegend(t *testing.T) {
	doc := testDocument(2, emptyGrid(), emptyGrid())
	doc.Behavior.Combo.Combos = []keymap.Combo{
		{Actions: []string{"q", "w"}, Output: "esc", Layer: 0},
		{Actions: []string{"a", "s"}, Output: "tab", Layer: 0},
		{Actions: []string{"z", "x"}, Output: "ent", Layer: 0},
		{Actions: []string{"c", "v"}, Output: "spc", Layer: 0},
	}

	svg := string(RenderSVG(doc))

	if !strings.Contains(svg, "Legend &amp; Info") {
		t.Error("missing legend title")
	}
	if !strings.Contains(svg, "Total Keys: 42 (21 per side)") {
		t.Error("missing key count")
	}
	if !strings.Contains(svg, "Combo: q + w = esc") {
		t.Error("missing combo summary")
	}
	// Only the first three combos are summarized.
	if strings.Contains(svg, "Combo: c + v") {
		t.Error("legend should cap combo summaries at three")
	}
	if got := strings.Count(svg, `width="50" height="30"`); got != 3 {
		t.Errorf("legend swatches = %d, want 2 layers + 1 transparent", got)
	}
}
