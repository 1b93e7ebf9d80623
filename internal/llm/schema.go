package llm

import "encoding/json"

// SchemaType uses the uppercase type names of the Gemini response schema.
type SchemaType string

const (
	TypeObject  SchemaType = "OBJECT"
	TypeArray   SchemaType = "ARRAY"
	TypeString  SchemaType = "STRING"
	TypeNumber  SchemaType = "NUMBER"
	TypeInteger SchemaType = "INTEGER"
	TypeBoolean SchemaType = "BOOLEAN"
)

// Schema describes the JSON shape a response must have. It marshals
// directly into a Gemini responseSchema; JSONSchema renders the same shape
// for providers that take standard JSON Schema.
type Schema struct {
	Type        SchemaType         `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
}

func StringSchema() *Schema { return &Schema{Type: TypeString} }
func NumberSchema() *Schema { return &Schema{Type: TypeNumber} }

// ArraySchema is a list of items.
func ArraySchema(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

// ObjectSchema builds an object with the given properties and required keys.
func ObjectSchema(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: TypeObject, Properties: props, Required: required}
}

// JSONSchema converts s into standard (lowercase) JSON Schema.
func (s *Schema) JSONSchema() map[string]any {
	if s == nil {
		return map[string]any{"type": "object"}
	}
	out := map[string]any{"type": jsonSchemaType(s.Type)}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for k, v := range s.Properties {
			props[k] = v.JSONSchema()
		}
		out["properties"] = props
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	if len(s.Enum) > 0 {
		out["enum"] = s.Enum
	}
	return out
}

// MarshalJSONSchema renders JSONSchema as compact JSON text.
func (s *Schema) MarshalJSONSchema() ([]byte, error) {
	return json.Marshal(s.JSONSchema())
}

func jsonSchemaType(t SchemaType) string {
	switch t {
	case TypeArray:
		return "array"
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeInteger:
		return "integer"
	case TypeBoolean:
		return "boolean"
	default:
		return "object"
	}
}
