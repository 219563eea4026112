package parse

import (
	"testing"

	"presentation-builder-be/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"upper case fence", "```JSON\n[1,2]\n```", "[1,2]"},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding prose", "Voici le plan :\n{\"a\":1}\nBonne formation !", `{"a":1}`},
		{"truncated", `{"a":[1,2`, `{"a":[1,2`},
		{"no json", "désolé", "désolé"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripFences(tc.in))
		})
	}
}

func TestDecode_RepairsCommonDefects(t *testing.T) {
	var got struct {
		Title    string   `json:"title"`
		Sections []string `json:"sections"`
	}

	err := Decode("```json\n{\"title\": \"Go\", \"sections\": [\"a\", \"b\",],}\n```", &got)

	require.NoError(t, err)
	assert.Equal(t, "Go", got.Title)
	assert.Equal(t, []string{"a", "b"}, got.Sections)
}

func TestDecode_ClosesTruncatedOutput(t *testing.T) {
	var got []map[string]any

	err := Decode(`[{"question": "Q1", "choix_1": "a"}`, &got)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Q1", got[0]["question"])
}

func TestDecode_Failures(t *testing.T) {
	var obj struct{ Title string }

	err := Decode("   ", &obj)
	assert.ErrorIs(t, err, apperr.ErrMalformedGeneration)

	var list []string
	err = Decode(`{"title": "not a list"}`, &list)
	assert.ErrorIs(t, err, apperr.ErrMalformedGeneration)
}
