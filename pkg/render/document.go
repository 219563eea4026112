package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"presentation-builder-be/internal/entity"
)

// WarnFunc receives rendering problems that do not stop the document.
type WarnFunc func(message string, details map[string]interface{})

func nopWarn(string, map[string]interface{}) {}

// Group is a run of content nodes rendered together: one day in a daily
// document, or one batch of sections otherwise.
type Group struct {
	Label string
	Nodes []entity.ContentNode
}

// Document is everything a renderer needs.
type Document struct {
	Title   string
	Trainer string
	Daily   bool
	Groups  []Group
}

// ErrNoContent is returned when the content holds no section at all.
var ErrNoContent = errors.New("content has no sections")

// ParseContent reads generated content in any of the shapes the API hands
// out or accepts: a single node, a list of nodes, a list of lists of nodes
// (arbitrarily nested), or a list of {"day", "content"} objects. Nodes that
// cannot be read are skipped with a warning.
func ParseContent(raw json.RawMessage, daily bool, warn WarnFunc) ([]Group, error) {
	if warn == nil {
		warn = nopWarn
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, ErrNoContent
	}

	var items []json.RawMessage
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("content must be a JSON list: %w", err)
		}
	} else {
		items = []json.RawMessage{raw}
	}

	var groups []Group
	var loose []entity.ContentNode
	flushLoose := func() {
		if len(loose) > 0 {
			groups = append(groups, Group{Nodes: loose})
			loose = nil
		}
	}

	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 {
			continue
		}
		switch {
		case item[0] == '[':
			flushLoose()
			groups = append(groups, Group{Nodes: collectNodes(item, warn, strconv.Itoa(i+1))})
		case isDayContent(item):
			flushLoose()
			var dc entity.DayContent
			if err := json.Unmarshal(item, &dc); err != nil {
				warn("Skipping unreadable day", map[string]interface{}{"index": i + 1, "error": err.Error()})
				continue
			}
			groups = append(groups, Group{Label: dayLabel(dc.Day), Nodes: dc.Content})
		default:
			if node, ok := decodeNode(item, warn, strconv.Itoa(i+1)); ok {
				loose = append(loose, node)
			}
		}
	}
	flushLoose()

	out := groups[:0]
	for _, g := range groups {
		if len(g.Nodes) > 0 {
			out = append(out, g)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoContent
	}

	if daily {
		for i := range out {
			if out[i].Label == "" {
				out[i].Label = dayLabel(i + 1)
			}
		}
	}
	return out, nil
}

func dayLabel(n int) string {
	return "Jour " + strconv.Itoa(n)
}

func isDayContent(item json.RawMessage) bool {
	if item[0] != '{' {
		return false
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(item, &probe); err != nil {
		return false
	}
	_, hasDay := probe["day"]
	content, hasContent := probe["content"]
	content = bytes.TrimSpace(content)
	return hasDay && hasContent && len(content) > 0 && content[0] == '['
}

// collectNodes flattens nested lists into one run of nodes.
func collectNodes(raw json.RawMessage, warn WarnFunc, path string) []entity.ContentNode {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		warn("Skipping unreadable content list", map[string]interface{}{"path": path, "error": err.Error()})
		return nil
	}

	var nodes []entity.ContentNode
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 {
			continue
		}
		p := path + "." + strconv.Itoa(i+1)
		if item[0] == '[' {
			nodes = append(nodes, collectNodes(item, warn, p)...)
			continue
		}
		if node, ok := decodeNode(item, warn, p); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func decodeNode(raw json.RawMessage, warn WarnFunc, path string) (entity.ContentNode, bool) {
	var node entity.ContentNode
	if err := json.Unmarshal(raw, &node); err != nil {
		warn("Skipping unreadable section", map[string]interface{}{"path": path, "error": err.Error()})
		return node, false
	}
	return node, true
}
