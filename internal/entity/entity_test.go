package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_UnmarshalAcceptsBothKeySets(t *testing.T) {
	raw := `{
		"titre": "Les bases de Go",
		"sections": [
			{"section": "Introduction", "sous-sections": ["Pourquoi Go ?", "Installation"]},
			{"section": "Types", "subsections": "Structs"},
			{"section": "Conclusion", "sous-sections": "aucun"},
			{"section": "Annexe"}
		]
	}`

	var plan Plan
	require.NoError(t, json.Unmarshal([]byte(raw), &plan))

	assert.Equal(t, "Les bases de Go", plan.Title)
	require.Len(t, plan.Sections, 4)
	assert.Equal(t, []string{"Pourquoi Go ?", "Installation"}, plan.Sections[0].Subsections.Items)
	assert.Equal(t, []string{"Structs"}, plan.Sections[1].Subsections.Items)
	assert.True(t, plan.Sections[2].Subsections.Terminal)
	assert.True(t, plan.Sections[3].Subsections.Terminal)
	assert.Equal(t, []string{ConclusionSubsection}, plan.Sections[2].PromptSubsections())
}

func TestPlan_MarshalUsesCanonicalKeys(t *testing.T) {
	plan := Plan{
		Title: "Go",
		Sections: []PlanSection{
			{Section: "Intro", Subsections: NewSubsections("a", "b")},
			{Section: "Conclusion", Subsections: NewSubsections()},
		},
	}

	out, err := json.Marshal(plan)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Go","sections":[
		{"section":"Intro","subsections":["a","b"]},
		{"section":"Conclusion","subsections":"none"}]}`, string(out))
}

func TestSubsections_RejectsObject(t *testing.T) {
	var s Subsections
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &s))
}

func TestDayPlan_Unmarshal(t *testing.T) {
	raw := `[
		{"jour": 1, "sessions": [{"title": "Intro", "subsections": ["a"]}]},
		{"day": "Jour 2", "sessions": [{"titre": "Suite", "sous-sections": "aucun"}]}
	]`

	var days []DayPlan
	require.NoError(t, json.Unmarshal([]byte(raw), &days))

	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, 2, days[1].Day)
	assert.Equal(t, "Suite", days[1].Sessions[0].Title)
	assert.Empty(t, days[1].Sessions[0].Subsections)
	assert.Equal(t, []string{ConclusionSubsection}, days[1].Sessions[0].PromptSubsections())
}

func TestContentSubsection_OptionalBlocks(t *testing.T) {
	raw := `{
		"title": "Variables",
		"content": "Une variable...",
		"bullets": ["a", 2],
		"table": [["H1", "H2"], ["a", 1.5]],
		"code_example": "x := 1\nfmt.Println(x)"
	}`

	var s ContentSubsection
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	bullets, err := s.BulletList()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "2"}, bullets)

	rows, err := s.TableRows()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"H1", "H2"}, {"a", "1.5"}}, rows)

	lines, err := s.CodeLines()
	require.NoError(t, err)
	assert.Equal(t, []string{"x := 1", "fmt.Println(x)"}, lines)
}

func TestContentSubsection_MalformedBlocksReportErrors(t *testing.T) {
	raw := `{
		"title": "Bad",
		"content": ["para 1", "para 2"],
		"bullets": "not a list",
		"table": {"header": ["a"]},
		"code": ["ok", {"line": 2}]
	}`

	var s ContentSubsection
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	assert.Equal(t, "para 1\n\npara 2", s.Content)

	_, err := s.BulletList()
	assert.Error(t, err)
	_, err = s.TableRows()
	assert.Error(t, err)
	_, err = s.CodeLines()
	assert.Error(t, err)
}

func TestContentNode_Unmarshal(t *testing.T) {
	raw := `{"title": "Intro", "subsections": ["Juste un titre", {"title": "Détail", "content": "texte"}]}`

	var node ContentNode
	require.NoError(t, json.Unmarshal([]byte(raw), &node))

	require.Len(t, node.Subsections, 2)
	assert.Equal(t, "Juste un titre", node.Subsections[0].Title)
	assert.Equal(t, "texte", node.Subsections[1].Content)

	var flat ContentNode
	require.NoError(t, json.Unmarshal([]byte(`{"title": "Conclusion", "content": "Merci"}`), &flat))
	require.Len(t, flat.Subsections, 1)
	assert.Equal(t, "Conclusion", flat.Subsections[0].Title)
	assert.Equal(t, "Merci", flat.Subsections[0].Content)
}

func TestPlaceholderNode(t *testing.T) {
	node := NewPlaceholderNode("Intro", []string{"a", "b"})

	assert.True(t, node.IsPlaceholder())
	assert.Len(t, node.Subsections, 2)
	assert.Equal(t, PlaceholderContent, node.Subsections[1].Content)
}

func TestQuizItem_Answers(t *testing.T) {
	item := QuizItem{Question: "q", Choix1: "a", Choix2: "b", Choix3: "c", Reponse: []string{"choix_1", "choix_3"}}

	assert.Equal(t, []string{"a", "c"}, item.CorrectAnswers())
	assert.False(t, item.SingleAnswer())
	assert.Equal(t, "Quiz du jour 2", ItemKindDay.FormTitleSuffix(2))
	assert.Equal(t, "Quiz de la section 1", ItemKindSection.FormTitleSuffix(1))
}

func TestFormSession_OmitsMissingCredentials(t *testing.T) {
	out, err := json.Marshal(FormSession{SessionID: "abc", Form: FormRecord{FormID: "f"}})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "credentials")
}
