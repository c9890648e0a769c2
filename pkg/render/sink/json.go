package sink

import (
	"bytes"
	"encoding/json"

	"github.com/leiserfg/rmk-piantor/pkg/keymap"
	"github.com/leiserfg/rmk-piantor/pkg/render/layout"
)

// jsonDocument mirrors the visual document in machine-readable form:
// the same layer blocks, resolved positions and combos the SVG shows,
// without any styling.
type jsonDocument struct {
	Keyboard string      `json:"keyboard"`
	Layers   int         `json:"layers"`
	Canvas   jsonCanvas  `json:"canvas"`
	Blocks   []jsonLayer `json:"layerBlocks"`
	Combos   []jsonCombo `json:"combos,omitempty"`
}

type jsonCanvas struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type jsonLayer struct {
	Index   int       `json:"index"`
	Name    string    `json:"name"`
	Defined bool      `json:"defined"`
	Keys    []jsonKey `json:"keys,omitempty"`
}

type jsonKey struct {
	Token string  `json:"token"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type jsonCombo struct {
	Actions []string `json:"actions"`
	Output  string   `json:"output"`
	Layer   int      `json:"layer"`
}

// RenderJSON renders the document as an indented JSON layout dump.
// Key entries are sorted by token within each layer so the output is
// stable across runs.
func RenderJSON(doc *keymap.Document) ([]byte, error) {
	layers := doc.Layout.Layers
	positions := layout.NewPositionMap()
	for i := 0; i < layers; i++ {
		positions.BuildLayer(doc, i)
	}

	width, height := CanvasSize(layers)
	out := jsonDocument{
		Keyboard: doc.Keyboard.Name,
		Layers:   layers,
		Canvas:   jsonCanvas{Width: width, Height: height},
		Blocks:   make([]jsonLayer, 0, layers),
	}

	for i := 0; i < layers; i++ {
		block := jsonLayer{
			Index:   i,
			Name:    doc.LayerName(i),
			Defined: i < len(doc.Layout.Keymap),
		}
		for _, e := range positions.Entries(i) {
			block.Keys = append(block.Keys, jsonKey{Token: e.Token, X: e.Pos.X, Y: e.Pos.Y})
		}
		out.Blocks = append(out.Blocks, block)
	}

	for _, c := range doc.Combos() {
		out.Combos = append(out.Combos, jsonCombo{Actions: c.Actions, Output: c.Output, Layer: c.Layer})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
