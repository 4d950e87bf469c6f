package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// fileSchema is the JSON schema every catalog file must satisfy before it
// is decoded. YAML files are converted to their JSON form first.
var fileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"format_version": map[string]any{
			"type":    "string",
			"pattern": `^v[0-9]+(\.[0-9]+){0,2}$`,
		},
		"domains": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"title":       map[string]any{"type": "string", "minLength": 1},
					"description": map[string]any{"type": "string"},
					"icon":        map[string]any{"type": "string"},
					"skills": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "string", "minLength": 1},
					},
				},
				"required":             []any{"id", "title", "skills"},
				"additionalProperties": false,
			},
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"skill": map[string]any{"type": "string", "minLength": 1},
					"type": map[string]any{
						"type": "string",
						"enum": enumOf(AllQuestionTypes()),
					},
					"difficulty": map[string]any{
						"type": "string",
						"enum": enumOf(questionLevels()),
					},
					"text": map[string]any{"type": "string", "minLength": 1},
					"follow_ups": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string", "minLength": 1},
					},
				},
				"required":             []any{"id", "skill", "type", "difficulty", "text"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"format_version", "domains", "questions"},
	"additionalProperties": false,
}

// enumOf lists string-kinded values for a schema enum.
func enumOf[T ~string](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// questionLevels returns the difficulties a question may carry.
func questionLevels() []Difficulty {
	var out []Difficulty
	for _, d := range AllDifficulties() {
		if d.IsQuestionLevel() {
			out = append(out, d)
		}
	}
	return out
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// getCompiledSchema compiles fileSchema once and caches the result.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not Go maps
		// with arbitrary value types; round-trip through encoding/json.
		defBytes, err := json.Marshal(fileSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://mockview-catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// validateDocument checks a decoded catalog document against fileSchema.
// doc must be JSON-shaped (maps with string keys, []any, float64, string, bool).
func validateDocument(doc any) error {
	compiled, err := getCompiledSchema()
	if err != nil {
		return err
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
