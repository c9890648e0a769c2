package styles

import (
	"strings"
	"unicode/utf8"

	"github.com/leiserfg/rmk-piantor/pkg/keymap"
)

// compactAbove is the display length beyond which the small font
// class is used for plain labels.
const compactAbove = 3

// modShort abbreviates modifier names inside mod-tap labels.
var modShort = strings.NewReplacer(
	"LGui", "Gui",
	"LAlt", "Alt",
	"LShift", "Sft",
	"LCtrl", "Ctl",
)

// shiftedSymbols maps SHIFTED() arguments to the symbol the shifted
// key actually produces on a US layout.
var shiftedSymbols = map[string]string{
	"9": "(", "0": ")",
	"[": "{", "]": "}",
	"1": "!", "2": "@", "3": "#", "4": "$", "5": "%",
	"6": "^", "7": "&", "8": "*",
	"-": "_", "=": "+",
	";": ":", "'": `"`,
	",": "<", ".": ">",
	"/": "?", "`": "~", `\`: "|",
}

// synonyms replaces common key-action tokens with their conventional
// keycap spelling.
var synonyms = map[string]string{
	"tab":    "TAB",
	"esc":    "ESC",
	"bspc":   "BSPC",
	"ent":    "ENT",
	"spc":    "SPC",
	"comm":   ",",
	"lsft":   "LSFT",
	"LShift": "LSft",
	"LCtrl":  "LCtl",
	"mprv":   "PREV",
	"mnxt":   "NEXT",
	"volu":   "VOL+",
	"vold":   "VOL-",
	"mute":   "MUTE",
	"mply":   "PLAY",
	"PgUp":   "PgUp",
	"PgDn":   "PgDn",
	"Left":   "Left",
	"Right":  "Right",
	"Down":   "Down",
	"Up":     "Up",
	"Del":    "Del",
	"Ins":    "Ins",
}

// FormatLabel converts a key-action token into display lines plus a
// compact-font flag. It is total: every token yields at least one
// line.
//
// Rules, in priority order:
//  1. blank or transparency marker → a single em dash
//  2. MT(key, modifier) → "key/Mod" with shortened modifier, compact
//  3. SHIFTED(c) → the shifted symbol, or "S-c" for unknown arguments
//  4. synonym-table replacement or the token verbatim; compact when
//     the display text runs past three characters
//
// MT() content that does not split into exactly two comma-separated
// parts falls through to rule 4 and displays verbatim.
func FormatLabel(token string) (lines []string, compact bool) {
	if token == "" || token == keymap.Transparent {
		return []string{"—"}, false
	}

	if inner, ok := unwrap(token, "MT("); ok {
		if parts := strings.Split(inner, ","); len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			mod := modShort.Replace(strings.TrimSpace(parts[1]))
			return []string{key + "/" + mod}, true
		}
	}

	if inner, ok := unwrap(token, "SHIFTED("); ok {
		if sym, ok := shiftedSymbols[inner]; ok {
			return []string{sym}, false
		}
		return []string{"S-" + inner}, false
	}

	display := token
	if repl, ok := synonyms[token]; ok {
		display = repl
	}
	return []string{display}, utf8.RuneCountInString(display) > compactAbove
}

// unwrap strips a "Name(" prefix and the closing parenthesis, returning
// the inner content and whether token had that shape.
func unwrap(token, prefix string) (string, bool) {
	if !strings.HasPrefix(token, prefix) {
		return "", false
	}
	return strings.TrimSuffix(token[len(prefix):], ")"), true
}
