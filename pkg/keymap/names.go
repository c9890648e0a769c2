package keymap

import (
	"bufio"
	"bytes"
	"strings"
)

// scanLayerNames recovers layer display names from comments in the raw
// layout source. This is deliberately a text scan, not TOML parsing:
// the names only exist as comments and the decoder drops them.
//
// Inside the `keymap = [` array, a line starting with a single '#'
// (not '##') becomes the pending name candidate. The candidate is
// committed for the next layer when a line consisting of a lone '['
// opens a new layer sub-array; a later comment replaces an uncommitted
// candidate. Scanning stops at the first line that is exactly ']',
// the end of the keymap array.
func scanLayerNames(data []byte) map[int]string {
	names := make(map[int]string)

	var (
		layer       int
		inKeymap    bool
		lastComment string
	)

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		if !inKeymap {
			if strings.Contains(line, "keymap = [") {
				inKeymap = true
			}
			continue
		}

		if line == "]" {
			break
		}

		switch {
		case strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "##"):
			lastComment = strings.TrimSpace(line[1:])
		case line == "[" && lastComment != "":
			names[layer] = lastComment
			layer++
			lastComment = ""
		}
	}

	return names
}
