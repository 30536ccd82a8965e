package question

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const bankSchemaURL = "schema://question-bank.json"

// bankSchema describes the on-disk question bank.
const bankSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "type", "text", "correctAnswer"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "type": {"enum": ["multiple-choice", "true-false"]},
      "text": {"type": "string"},
      "correctAnswer": {"type": "string", "minLength": 1},
      "options": {
        "type": "object",
        "additionalProperties": {"type": "string"}
      },
      "explanation": {"type": "string"}
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func getCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(bankSchema), &def); err != nil {
			schemaErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(bankSchemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(bankSchemaURL)
	})
	return compiledSchema, schemaErr
}

// Validate checks raw bank JSON against the bank schema.
func Validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	compiled, err := getCompiledSchema()
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
