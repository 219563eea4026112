package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// PlaceholderContent fills sub-sections whose generation failed.
const PlaceholderContent = "Contenu non disponible. Erreur lors de la génération."

type ContentNode struct {
	Title       string              `json:"title"`
	Subsections []ContentSubsection `json:"subsections"`
}

// ContentSubsection keeps the optional blocks as raw JSON: a model may emit
// them in any shape and the renderers decide per block whether it is usable.
type ContentSubsection struct {
	Title   string          `json:"title"`
	Content string          `json:"content"`
	Example string          `json:"example,omitempty"`
	Bullets json.RawMessage `json:"bullets,omitempty"`
	Table   json.RawMessage `json:"table,omitempty"`
	Code    json.RawMessage `json:"code,omitempty"`
}

// NewPlaceholderNode builds the degraded node used when a section could not
// be generated.
func NewPlaceholderNode(title string, subsections []string) ContentNode {
	node := ContentNode{Title: title}
	for _, sub := range subsections {
		node.Subsections = append(node.Subsections, ContentSubsection{
			Title:   sub,
			Content: PlaceholderContent,
		})
	}
	return node
}

// IsPlaceholder reports whether every sub-section carries the placeholder text.
func (n ContentNode) IsPlaceholder() bool {
	if len(n.Subsections) == 0 {
		return false
	}
	for _, s := range n.Subsections {
		if s.Content != PlaceholderContent {
			return false
		}
	}
	return true
}

func (n *ContentNode) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("content node must be an object: %w", err)
	}

	n.Title = firstString(raw, "title", "titre", "section")
	n.Subsections = nil

	sub, ok := firstRaw(raw, "subsections", "sous-sections", "sous_sections")
	if !ok {
		// A node that holds its text directly becomes a single sub-section.
		if _, hasContent := raw["content"]; hasContent {
			var single ContentSubsection
			if err := json.Unmarshal(data, &single); err != nil {
				return err
			}
			single.Title = n.Title
			n.Subsections = []ContentSubsection{single}
		}
		return nil
	}

	sub = bytes.TrimSpace(sub)
	if len(sub) == 0 || sub[0] != '[' {
		return fmt.Errorf("node %q: subsections must be a list", n.Title)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(sub, &items); err != nil {
		return err
	}
	for _, item := range items {
		var s ContentSubsection
		if str, ok := scalarString(item); ok {
			s.Title = str
		} else if err := json.Unmarshal(item, &s); err != nil {
			return fmt.Errorf("node %q: %w", n.Title, err)
		}
		n.Subsections = append(n.Subsections, s)
	}
	return nil
}

func (s *ContentSubsection) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("sub-section must be an object: %w", err)
	}

	*s = ContentSubsection{
		Title:   firstString(raw, "title", "titre"),
		Content: flexText(raw["content"]),
		Example: flexText(raw["example"]),
	}
	if v, ok := raw["bullets"]; ok && !isNull(v) {
		s.Bullets = v
	}
	if v, ok := raw["table"]; ok && !isNull(v) {
		s.Table = v
	}
	if v, ok := firstRaw(raw, "code", "code_example"); ok && !isNull(v) {
		s.Code = v
	}
	return nil
}

// BulletList returns the bullet points, or an error when the field is not a
// list of scalars.
func (s ContentSubsection) BulletList() ([]string, error) {
	if len(s.Bullets) == 0 {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(s.Bullets, &items); err != nil {
		return nil, fmt.Errorf("bullets must be a list: %w", err)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		str, ok := scalarString(item)
		if !ok {
			return nil, fmt.Errorf("bullet %d is not text", i)
		}
		out = append(out, str)
	}
	return out, nil
}

// TableRows returns the table as rows of cells. The first row is the header.
func (s ContentSubsection) TableRows() ([][]string, error) {
	if len(s.Table) == 0 {
		return nil, nil
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(s.Table, &rows); err != nil {
		return nil, fmt.Errorf("table must be a list of rows: %w", err)
	}
	out := make([][]string, 0, len(rows))
	for i, row := range rows {
		var cells []json.RawMessage
		if err := json.Unmarshal(row, &cells); err != nil {
			return nil, fmt.Errorf("table row %d must be a list: %w", i, err)
		}
		line := make([]string, 0, len(cells))
		for j, cell := range cells {
			str, ok := scalarString(cell)
			if !ok && !isNull(cell) {
				return nil, fmt.Errorf("table cell %d,%d is not text", i, j)
			}
			line = append(line, str)
		}
		out = append(out, line)
	}
	return out, nil
}

// CodeLines returns the code block line by line. A single string is split on
// line breaks; a list must contain only strings.
func (s ContentSubsection) CodeLines() ([]string, error) {
	if len(s.Code) == 0 {
		return nil, nil
	}
	trimmed := bytes.TrimSpace(s.Code)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var code string
		if err := json.Unmarshal(trimmed, &code); err != nil {
			return nil, err
		}
		return strings.Split(strings.ReplaceAll(code, "\r\n", "\n"), "\n"), nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("code must be a string or a list of lines: %w", err)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		var line string
		if err := json.Unmarshal(item, &line); err != nil {
			return nil, fmt.Errorf("code line %d is not a string", i)
		}
		out = append(out, line)
	}
	return out, nil
}

// flexText reads a string, or joins a list of strings with blank lines.
func flexText(raw json.RawMessage) string {
	if len(raw) == 0 || isNull(raw) {
		return ""
	}
	if s, ok := scalarString(raw); ok {
		return s
	}
	var parts []string
	if err := json.Unmarshal(raw, &parts); err == nil {
		return strings.Join(parts, "\n\n")
	}
	return string(raw)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// DayContent is the generated content of one training day, in plan order.
type DayContent struct {
	Day     int           `json:"day"`
	Content []ContentNode `json:"content"`
}
