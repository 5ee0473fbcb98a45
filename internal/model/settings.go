package model

import (
	"encoding/json"
	"strings"
)

// SetPath deep-sets a dotted path on the settings, creating intermediate
// objects as needed. Paths address the document (JSON) form of the settings,
// e.g. "safeSurplus.buffer" or "display.theme.accent". A path that lands
// outside any known settings field is silently dropped.
func (s *Settings) SetPath(path string, value any) {
	if path == "" {
		return
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return
	}

	segs := strings.Split(path, ".")
	node := doc
	for _, seg := range segs[:len(segs)-1] {
		next, ok := node[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			node[seg] = next
		}
		node = next
	}
	node[segs[len(segs)-1]] = value

	raw, err = json.Marshal(doc)
	if err != nil {
		return
	}
	var out Settings
	if err := json.Unmarshal(raw, &out); err != nil {
		return
	}
	*s = out
}
