// Package keymap loads the declarative keyboard layout description.
//
// The layout document is a TOML file carrying the keyboard metadata,
// the declared layer count and the keymap itself: an ordered list of
// layers, each a 4×12 grid of key-action tokens. Layer display names
// are not part of the TOML schema; they live in comments directly
// above each layer sub-array and are recovered by a line scanner over
// the raw file (see names.go).
//
// The auxiliary Vial document (vial.json) is loaded alongside the
// layout but its schema is owned by Vial; the generator only needs it
// to exist.
package keymap

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/leiserfg/rmk-piantor/pkg/errors"
)

// Transparent is the token meaning "fall through to the layer below".
const Transparent = "_"

// Grid shape of one layer: 4 rows spanning both halves, 6 columns per
// hand.
const (
	Rows     = 4
	HandCols = 6
	GridCols = 12
)

// Document is the parsed layout description. It is read-only after
// Load returns.
type Document struct {
	Keyboard Keyboard `toml:"keyboard"`
	Layout   Layout   `toml:"layout"`
	Behavior Behavior `toml:"behavior"`

	// LayerNames maps layer index to the display name recovered from
	// the comment preceding that layer's sub-array. Best effort.
	LayerNames map[int]string `toml:"-"`
}

// Keyboard holds the keyboard metadata.
type Keyboard struct {
	Name string `toml:"name"`
}

// Layout holds the declared layer count and the keymap grids.
// Layers may exceed len(Keymap); the missing layers render as
// placeholders.
type Layout struct {
	Layers int          `toml:"layers"`
	Keymap [][][]string `toml:"keymap"`
}

// Behavior holds optional behavior configuration. Only combos are
// consulted by the renderer.
type Behavior struct {
	Combo ComboSection `toml:"combo"`
}

// ComboSection wraps the combo list.
type ComboSection struct {
	Combos []Combo `toml:"combos"`
}

// Combo is a chorded action: pressing all Actions together on the
// given Layer produces Output.
type Combo struct {
	Actions []string `toml:"actions"`
	Output  string   `toml:"output"`
	Layer   int      `toml:"layer"`
}

// Load reads and decodes the layout document at path and recovers the
// layer name annotations from its raw text.
//
// A missing file yields ErrCodeFileNotFound, a file that cannot be
// decoded yields ErrCodeInvalidConfig.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s does not exist", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading layout file %s", path)
	}

	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decoding layout file %s", path)
	}

	doc.LayerNames = scanLayerNames(data)
	return &doc, nil
}

// LayerName returns the display name for a layer, falling back to the
// numeric index when no annotation preceded the layer's grid.
func (d *Document) LayerName(layer int) string {
	if name, ok := d.LayerNames[layer]; ok {
		return name
	}
	return strconv.Itoa(layer)
}

// Key returns the token at (layer, row, col) in the keymap grid, or
// the empty string when the index falls outside the defined grids.
// Short or ragged keymaps therefore read as blank keys instead of
// failing the whole render.
func (d *Document) Key(layer, row, col int) string {
	if layer < 0 || layer >= len(d.Layout.Keymap) {
		return ""
	}
	grid := d.Layout.Keymap[layer]
	if row < 0 || row >= len(grid) {
		return ""
	}
	if col < 0 || col >= len(grid[row]) {
		return ""
	}
	return grid[row][col]
}

// Combos returns the combo definitions, which may be empty.
func (d *Document) Combos() []Combo {
	return d.Behavior.Combo.Combos
}
