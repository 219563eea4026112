package quiz

import (
	"testing"

	"presentation-builder-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

const validQuiz = `[
  {"question": "Q1", "choix_1": "a", "choix_2": "b", "choix_3": "c", "reponse": ["choix_2"]},
  {"question": "Q2", "choix_1": "a", "choix_2": "b", "choix_3": "c", "reponse": ["choix_1", "choix_3"]}
]`

func TestValidateJSON_Valid(t *testing.T) {
	ok, msg := ValidateJSON([]byte(validQuiz))
	assert.True(t, ok)
	assert.Empty(t, msg)
}

func TestValidate_Idempotent(t *testing.T) {
	items := []entity.QuizItem{
		{Question: "Q", Choix1: "a", Choix2: "b", Choix3: "c", Reponse: []string{"choix_1"}},
	}

	ok1, msg1 := Validate(items)
	ok2, msg2 := Validate(items)

	assert.True(t, ok1)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, msg1, msg2)
	assert.Equal(t, []string{"choix_1"}, items[0].Reponse)
}

func TestValidateJSON_Violations(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"not array", `{"question": "Q"}`, "quiz must be an array of questions"},
		{"item not object", `["Q"]`, "question 1 must be an object"},
		{"missing key", `[{"question": "Q", "choix_1": "a", "choix_2": "b", "reponse": ["choix_1"]}]`, `question 1 is missing required key "choix_3"`},
		{"empty answers", `[{"question": "Q", "choix_1": "a", "choix_2": "b", "choix_3": "c", "reponse": []}]`, `question 1: "reponse" must contain at least one answer`},
		{"unknown answer key", `[{"question": "Q", "choix_1": "a", "choix_2": "b", "choix_3": "c", "reponse": ["choix_4"]}]`, `question 1: "choix_4" is not one of choix_1, choix_2, choix_3`},
		{"non string choice", `[{"question": "Q", "choix_1": 1, "choix_2": "b", "choix_3": "c", "reponse": ["choix_1"]}]`, `question 1: "choix_1" must be a string`},
		{"second item", `[{"question": "Q", "choix_1": "a", "choix_2": "b", "choix_3": "c", "reponse": ["choix_1"]}, {"question": "Q2"}]`, `question 2 is missing required key "choix_1"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, msg := ValidateJSON([]byte(tc.in))
			assert.False(t, ok)
			assert.Equal(t, tc.want, msg)
		})
	}
}

func TestValidateJSON_InvalidJSON(t *testing.T) {
	ok, msg := ValidateJSON([]byte(`[{`))
	assert.False(t, ok)
	assert.Contains(t, msg, "not valid JSON")
}
