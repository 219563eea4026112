package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://quiz.json"

// Schema is the contract every generated quiz must satisfy.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "question": {"type": "string"},
      "choix_1": {"type": "string"},
      "choix_2": {"type": "string"},
      "choix_3": {"type": "string"},
      "reponse": {
        "type": "array",
        "minItems": 1,
        "items": {"type": "string", "enum": ["choix_1", "choix_2", "choix_3"]}
      }
    },
    "required": ["question", "choix_1", "choix_2", "choix_3", "reponse"]
  }
}`

var requiredKeys = []string{"question", "choix_1", "choix_2", "choix_3", "reponse"}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(Schema))
		if err != nil {
			compileErr = fmt.Errorf("parse quiz schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add quiz schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Validate checks a candidate quiz and returns (true, "") or (false, a
// description of the first violation). data may be a decoded JSON value or
// any value that marshals to one. It never mutates data.
func Validate(data any) (bool, string) {
	raw, err := json.Marshal(data)
	if err != nil {
		return false, fmt.Sprintf("quiz is not serializable: %v", err)
	}
	return ValidateJSON(raw)
}

// ValidateJSON is Validate for raw JSON bytes.
func ValidateJSON(raw []byte) (bool, string) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return false, fmt.Sprintf("quiz is not valid JSON: %v", err)
	}

	s, err := schema()
	if err != nil {
		return false, err.Error()
	}
	if err := s.Validate(doc); err != nil {
		if msg := firstViolation(doc); msg != "" {
			return false, msg
		}
		return false, err.Error()
	}
	return true, ""
}

// firstViolation walks the document in order and describes the first
// problem the schema would report.
func firstViolation(doc any) string {
	items, ok := doc.([]any)
	if !ok {
		return "quiz must be an array of questions"
	}
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return fmt.Sprintf("question %d must be an object", i+1)
		}
		for _, key := range requiredKeys {
			if _, ok := obj[key]; !ok {
				return fmt.Sprintf("question %d is missing required key %q", i+1, key)
			}
		}
		for _, key := range requiredKeys[:4] {
			if _, ok := obj[key].(string); !ok {
				return fmt.Sprintf("question %d: %q must be a string", i+1, key)
			}
		}
		answers, ok := obj["reponse"].([]any)
		if !ok {
			return fmt.Sprintf("question %d: \"reponse\" must be an array", i+1)
		}
		if len(answers) == 0 {
			return fmt.Sprintf("question %d: \"reponse\" must contain at least one answer", i+1)
		}
		for _, a := range answers {
			key, ok := a.(string)
			if !ok {
				return fmt.Sprintf("question %d: \"reponse\" entries must be strings", i+1)
			}
			if key != "choix_1" && key != "choix_2" && key != "choix_3" {
				return fmt.Sprintf("question %d: %q is not one of choix_1, choix_2, choix_3", i+1, key)
			}
		}
	}
	return ""
}
