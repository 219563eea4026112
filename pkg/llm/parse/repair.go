package parse

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"presentation-builder-be/internal/pkg/apperr"

	"github.com/kaptinlin/jsonrepair"
)

var fenceRe = regexp.MustCompile("(?i)```(?:json)?")

// StripFences removes markdown code fences and any prose outside the
// outermost JSON value. A value without a closing bracket is kept as is so
// the repairer can close it.
func StripFences(text string) string {
	s := strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}
	end := strings.LastIndexAny(s, "}]")
	if end < start {
		return s[start:]
	}
	return s[start : end+1]
}

// Decode turns raw model output into v. The text is fence-stripped, repaired
// (trailing commas, single quotes, unclosed brackets...) and decoded; when
// repair fails the stripped text is decoded strictly. A result that still
// does not decode into v's shape is a malformed generation.
func Decode(text string, v any) error {
	raw, err := Normalize(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return apperr.Malformed("model output does not have the expected shape", err)
	}
	return nil
}

// Normalize returns syntactically valid JSON for the model output.
func Normalize(text string) (json.RawMessage, error) {
	cleaned := StripFences(text)
	if cleaned == "" {
		return nil, apperr.Malformed("model output is empty", nil)
	}

	repaired, repairErr := jsonrepair.JSONRepair(cleaned)
	if repairErr == nil && json.Valid([]byte(repaired)) {
		return json.RawMessage(repaired), nil
	}
	if json.Valid([]byte(cleaned)) {
		return json.RawMessage(cleaned), nil
	}

	if repairErr == nil {
		repairErr = errors.New("repaired text is not valid JSON")
	}
	return nil, apperr.Malformed("model output is not valid JSON", repairErr)
}
