// Package layout maps keymap grid slots to canvas coordinates.
//
// The physical keyboard is a split 3×6+3: three full rows of six keys
// per hand plus a three-key thumb cluster. Each half has a fixed
// 24-entry position template (4 rows × 6 columns) whose thumb-row gaps
// are absent slots. The templates are shared by every layer; only the
// tokens differ per layer.
package layout

import (
	"cmp"
	"math"
	"slices"

	"github.com/leiserfg/rmk-piantor/pkg/keymap"
)

// Point is a key's top-left canvas coordinate.
type Point struct {
	X, Y float64
}

// KeySize is the rendered key edge length in canvas units.
const KeySize = 50

// contiguityThreshold is the center distance below which two keys
// count as physical neighbors. Keys are 50×50 with small gaps, so 80
// captures direct neighbors only.
const contiguityThreshold = 80

// Left is the position template for the left half. Entry order is
// row-major over 4 rows × 6 columns; nil marks the thumb-cluster gaps
// (the left thumb keys sit at columns 3–5 of row 3). Row columns are
// staggered vertically to follow the finger lengths.
var Left = [keymap.Rows * keymap.HandCols]*Point{
	// Row 0
	{0, 40}, {60, 40}, {120, 30}, {180, 20}, {240, 30}, {300, 40},
	// Row 1
	{0, 100}, {60, 100}, {120, 90}, {180, 80}, {240, 90}, {300, 100},
	// Row 2
	{0, 160}, {60, 160}, {120, 150}, {180, 140}, {240, 150}, {300, 160},
	// Row 3 / thumb cluster
	nil, nil, nil, {180, 220}, {240, 235}, {300, 250},
}

// Right is the position template for the right half; its thumb keys
// sit at columns 0–2 of row 3, mirroring Left.
var Right = [keymap.Rows * keymap.HandCols]*Point{
	// Row 0
	{500, 40}, {560, 30}, {620, 20}, {680, 30}, {740, 40}, {800, 40},
	// Row 1
	{500, 100}, {560, 90}, {620, 80}, {680, 90}, {740, 100}, {800, 100},
	// Row 2
	{500, 160}, {560, 150}, {620, 140}, {680, 150}, {740, 160}, {800, 160},
	// Row 3 / thumb cluster
	{500, 250}, {560, 235}, {620, 220}, nil, nil, nil,
}

// Contiguous reports whether two key positions are physical neighbors
// on the rendered grid. It is symmetric in its arguments.
func Contiguous(a, b Point) bool {
	return math.Hypot(b.X-a.X, b.Y-a.Y) < contiguityThreshold
}

// PositionMap resolves key-action tokens to canvas coordinates, one
// token map per layer. Maps are built once per layer during a
// generation pass and read-only afterwards.
type PositionMap struct {
	layers map[int]map[string]Point
}

// NewPositionMap returns an empty position map.
func NewPositionMap() *PositionMap {
	return &PositionMap{layers: make(map[int]map[string]Point)}
}

// BuildLayer populates the token → coordinate map for one layer from
// the document's grid. Absent template slots are skipped, as are blank
// tokens and the transparency marker. If the same token appears twice
// on a layer the later slot wins; combo lookup accepts that ambiguity.
//
// Building a layer beyond the document's defined keymap is a no-op:
// such layers render as placeholders and have no positions.
func (m *PositionMap) BuildLayer(doc *keymap.Document, layer int) {
	if layer < 0 || layer >= len(doc.Layout.Keymap) {
		return
	}

	positions := make(map[string]Point)
	for row := 0; row < keymap.Rows; row++ {
		for col := 0; col < keymap.HandCols; col++ {
			idx := row*keymap.HandCols + col
			if pos := Left[idx]; pos != nil {
				record(positions, doc.Key(layer, row, col), *pos)
			}
			if pos := Right[idx]; pos != nil {
				record(positions, doc.Key(layer, row, col+keymap.HandCols), *pos)
			}
		}
	}
	m.layers[layer] = positions
}

func record(positions map[string]Point, token string, pos Point) {
	if token == "" || token == keymap.Transparent {
		return
	}
	positions[token] = pos
}

// Find returns the coordinate recorded for token on layer. The second
// return is false when the layer has no map or the token is absent.
func (m *PositionMap) Find(token string, layer int) (Point, bool) {
	positions, ok := m.layers[layer]
	if !ok {
		return Point{}, false
	}
	pos, ok := positions[token]
	return pos, ok
}

// Entry pairs a token with its resolved coordinate.
type Entry struct {
	Token string
	Pos   Point
}

// Entries returns the layer's token → coordinate pairs sorted by
// token, for stable machine-readable output.
func (m *PositionMap) Entries(layer int) []Entry {
	positions, ok := m.layers[layer]
	if !ok {
		return nil
	}
	entries := make([]Entry, 0, len(positions))
	for token, pos := range positions {
		entries = append(entries, Entry{Token: token, Pos: pos})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Token, b.Token)
	})
	return entries
}
