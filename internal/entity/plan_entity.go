package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SubsectionsNone marks a terminal plan node (typically the conclusion).
const SubsectionsNone = "none"

// ConclusionSubsection replaces the sub-sections of a terminal node when
// its content is generated.
const ConclusionSubsection = "Conclusion"

// Subsections is either a list of titles or the terminal sentinel.
type Subsections struct {
	Items    []string
	Terminal bool
}

func NewSubsections(items ...string) Subsections {
	if len(items) == 0 {
		return Subsections{Terminal: true}
	}
	return Subsections{Items: items}
}

func (s Subsections) MarshalJSON() ([]byte, error) {
	if s.Terminal || len(s.Items) == 0 {
		return json.Marshal(SubsectionsNone)
	}
	return json.Marshal(s.Items)
}

// UnmarshalJSON accepts a list, the sentinels "none"/"aucun", null, or a
// single title given as a plain string.
func (s *Subsections) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*s = Subsections{}

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		s.Terminal = true
		return nil
	}

	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		if isTerminalSentinel(str) {
			s.Terminal = true
			return nil
		}
		s.Items = []string{strings.TrimSpace(str)}
		return nil
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		for _, r := range raw {
			if str, ok := scalarString(r); ok && strings.TrimSpace(str) != "" {
				s.Items = append(s.Items, strings.TrimSpace(str))
			}
		}
		s.Terminal = len(s.Items) == 0
		return nil
	default:
		return fmt.Errorf("subsections must be a list or %q, got %s", SubsectionsNone, truncate(string(data), 40))
	}
}

func isTerminalSentinel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", SubsectionsNone, "aucun", "aucune":
		return true
	}
	return false
}

type PlanSection struct {
	Section     string      `json:"section"`
	Subsections Subsections `json:"subsections"`
}

// PromptSubsections lists the sub-sections a content prompt must cover.
func (s PlanSection) PromptSubsections() []string {
	if s.Subsections.Terminal {
		return []string{ConclusionSubsection}
	}
	return s.Subsections.Items
}

func (s *PlanSection) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("plan section must be an object: %w", err)
	}

	s.Section = firstString(raw, "section", "title", "titre")
	s.Subsections = Subsections{Terminal: true}
	if sub, ok := firstRaw(raw, "subsections", "sous-sections", "sous_sections"); ok {
		if err := s.Subsections.UnmarshalJSON(sub); err != nil {
			return fmt.Errorf("section %q: %w", s.Section, err)
		}
	}
	return nil
}

type Plan struct {
	Title    string        `json:"title"`
	Sections []PlanSection `json:"sections"`
}

func (p *Plan) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("plan must be an object: %w", err)
	}

	p.Title = firstString(raw, "title", "titre")
	p.Sections = nil
	if sections, ok := raw["sections"]; ok {
		if err := json.Unmarshal(sections, &p.Sections); err != nil {
			return err
		}
	}
	return nil
}

// Session is one teaching block of a day.
type Session struct {
	Title       string   `json:"title"`
	Subsections []string `json:"subsections"`
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("session must be an object: %w", err)
	}

	s.Title = firstString(raw, "title", "titre", "session")
	s.Subsections = nil
	if sub, ok := firstRaw(raw, "subsections", "sous-sections", "sous_sections"); ok {
		var subs Subsections
		if err := subs.UnmarshalJSON(sub); err != nil {
			return fmt.Errorf("session %q: %w", s.Title, err)
		}
		s.Subsections = subs.Items
	}
	return nil
}

// PromptSubsections mirrors PlanSection.PromptSubsections for sessions.
func (s Session) PromptSubsections() []string {
	if len(s.Subsections) == 0 {
		return []string{ConclusionSubsection}
	}
	return s.Subsections
}

type DayPlan struct {
	Day      int       `json:"day"`
	Sessions []Session `json:"sessions"`
}

func (d *DayPlan) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("day plan must be an object: %w", err)
	}

	d.Day = 0
	if v, ok := firstRaw(raw, "day", "jour"); ok {
		if str, ok := scalarString(v); ok {
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(strings.ToLower(str), "jour")))
			if err == nil {
				d.Day = n
			}
		}
	}

	d.Sessions = nil
	if sessions, ok := raw["sessions"]; ok {
		if err := json.Unmarshal(sessions, &d.Sessions); err != nil {
			return err
		}
	}
	return nil
}

func firstRaw(raw map[string]json.RawMessage, keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func firstString(raw map[string]json.RawMessage, keys ...string) string {
	v, ok := firstRaw(raw, keys...)
	if !ok {
		return ""
	}
	s, _ := scalarString(v)
	return strings.TrimSpace(s)
}

// scalarString renders a JSON string, number or boolean as text.
func scalarString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case '{', '[':
		return "", false
	default:
		if bytes.Equal(raw, []byte("null")) {
			return "", false
		}
		return string(raw), true
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
