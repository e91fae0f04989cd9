package intent

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Schema is the declarative list of intents offered to the model.
// It is immutable after Load.
type Schema struct {
	Intents []Definition `yaml:"intents"`

	text string
}

// Definition describes one intent.
type Definition struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Slots       []SlotDef `yaml:"slots,omitempty"`
	Examples    []string  `yaml:"examples,omitempty"`
}

// SlotDef describes one named parameter of an intent.
type SlotDef struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Examples    []string `yaml:"examples,omitempty"`
}

// documentSchema constrains the structure of the intent file.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["intents"],
  "properties": {
    "intents": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "examples": {"type": "array", "items": {"type": "string"}},
          "slots": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name"],
              "properties": {
                "name": {"type": "string", "minLength": 1},
                "description": {"type": "string"},
                "examples": {"type": "array", "items": {"type": "string"}}
              }
            }
          }
        }
      }
    }
  }
}`

var compiledDocumentSchema = mustCompile(documentSchema)

func mustCompile(src string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("intents.json", strings.NewReader(src)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("intents.json")
}

// LoadSchema reads and validates the intent file at path. Any failure is a
// startup failure.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, StartupError("read intent schema: %v", err)
	}
	return ParseSchema(data)
}

// ParseSchema validates and decodes an intent document.
func ParseSchema(data []byte) (*Schema, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, StartupError("parse intent schema: %v", err)
	}
	if doc == nil {
		return nil, StartupError("intent schema is empty")
	}

	// The validator works on JSON-shaped values.
	jsonDoc, err := json.Marshal(doc)
	if err != nil {
		return nil, StartupError("intent schema: %v", err)
	}
	dec := json.NewDecoder(bytes.NewReader(jsonDoc))
	dec.UseNumber()
	var normalized any
	if err := dec.Decode(&normalized); err != nil {
		return nil, StartupError("intent schema: %v", err)
	}
	if err := compiledDocumentSchema.Validate(normalized); err != nil {
		return nil, StartupError("invalid intent schema: %v", err)
	}

	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, StartupError("decode intent schema: %v", err)
	}

	seen := make(map[string]bool, len(s.Intents))
	for _, d := range s.Intents {
		if seen[d.Name] {
			return nil, StartupError("duplicate intent %q", d.Name)
		}
		seen[d.Name] = true
	}

	text, err := yaml.Marshal(&s)
	if err != nil {
		return nil, StartupError("render intent schema: %v", err)
	}
	s.text = strings.TrimRight(string(text), "\n")

	return &s, nil
}

// Text returns the normalized YAML rendering used in prompts.
func (s *Schema) Text() string {
	return s.text
}

// Names returns intent names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.Intents))
	for i, d := range s.Intents {
		names[i] = d.Name
	}
	return names
}

// Has reports whether name is declared.
func (s *Schema) Has(name string) bool {
	for _, d := range s.Intents {
		if d.Name == name {
			return true
		}
	}
	return false
}

