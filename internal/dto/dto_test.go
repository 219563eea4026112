package dto

import (
	"encoding/json"
	"testing"

	"presentation-builder-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt(t *testing.T) {
	cases := []struct {
		raw     string
		present bool
		valid   bool
		value   int
	}{
		{`{"n": 4}`, true, true, 4},
		{`{"n": "7"}`, true, true, 7},
		{`{"n": " 3 "}`, true, true, 3},
		{`{"n": 2.0}`, true, true, 2},
		{`{"n": "abc"}`, true, false, 0},
		{`{"n": 2.5}`, true, false, 0},
		{`{"n": null}`, false, false, 0},
		{`{}`, false, false, 0},
	}

	for _, tc := range cases {
		var v struct {
			N FlexInt `json:"n"`
		}
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &v), tc.raw)
		assert.Equal(t, tc.present, v.N.Present, tc.raw)
		assert.Equal(t, tc.valid, v.N.Valid, tc.raw)
		assert.Equal(t, tc.value, v.N.Value, tc.raw)
	}
}

func TestFlexInt_Or(t *testing.T) {
	assert.Equal(t, 5, FlexInt{}.Or(5))
	assert.Equal(t, 5, FlexInt{Present: true}.Or(5))
	assert.Equal(t, 0, FlexInt{Present: true, Valid: true}.Or(5))
}

func TestIsEmptyJSON(t *testing.T) {
	for _, raw := range []string{"", "null", `""`, "[]", "{}", "  null "} {
		assert.True(t, IsEmptyJSON(json.RawMessage(raw)), raw)
	}
	for _, raw := range []string{`"x"`, "[1]", `{"a":1}`, "0"} {
		assert.False(t, IsEmptyJSON(json.RawMessage(raw)), raw)
	}
}

func TestFormResponse_HasNoCredentials(t *testing.T) {
	out, err := json.Marshal(NewFormResponse(entity.FormRecord{FormID: "f", EditURL: "e", ViewURL: "v", Title: "t"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"form_id":"f","edit_url":"e","view_url":"v","title":"t"}`, string(out))

	list := FormResponses([]*entity.FormRecord{nil, {FormID: "b"}})
	assert.Nil(t, list[0])
	assert.Equal(t, "b", list[1].FormID)
}
