package mcp

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/vfg2006/rule-mcp/pkg/apiErrors"
)

const subscriberCreateSchema = `{
	"type": "object",
	"required": ["email"],
	"properties": {
		"email":  {"type": "string", "minLength": 1},
		"tags":   {"type": ["array", "null"], "items": {"type": "string"}},
		"fields": {"type": ["object", "null"]}
	}
}`

// Ao menos um campo não nulo precisa ser informado
const subscriberUpdateSchema = `{
	"type": "object",
	"properties": {
		"email":  {"type": ["string", "null"], "minLength": 1},
		"tags":   {"type": ["array", "null"], "items": {"type": "string"}},
		"fields": {"type": ["object", "null"]}
	},
	"anyOf": [
		{"required": ["email"], "properties": {"email": {"type": "string"}}},
		{"required": ["tags"], "properties": {"tags": {"type": "array"}}},
		{"required": ["fields"], "properties": {"fields": {"type": "object"}}}
	]
}`

const tagCreateSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1}
	}
}`

const customFieldCreateSchema = `{
	"type": "object",
	"required": ["name", "field_type"],
	"properties": {
		"name":       {"type": "string", "minLength": 1},
		"field_type": {"type": "string", "minLength": 1}
	}
}`

var (
	subscriberCreate  = jsonschema.MustCompileString("https://rule-mcp/schemas/subscriber-create.json", subscriberCreateSchema)
	subscriberUpdate  = jsonschema.MustCompileString("https://rule-mcp/schemas/subscriber-update.json", subscriberUpdateSchema)
	tagCreate         = jsonschema.MustCompileString("https://rule-mcp/schemas/tag-create.json", tagCreateSchema)
	customFieldCreate = jsonschema.MustCompileString("https://rule-mcp/schemas/custom-field-create.json", customFieldCreateSchema)
)

// decodeBody valida o corpo do envelope contra o schema e decodifica em out
func decodeBody(body string, schema *jsonschema.Schema, out any) error {
	if strings.TrimSpace(body) == "" {
		return apiErrors.NewValidationError("Request body is required")
	}

	var document any
	if err := json.UnmarshalFromString(body, &document); err != nil {
		return apiErrors.NewValidationError("Invalid JSON body: %v", err)
	}

	if err := schema.Validate(document); err != nil {
		return apiErrors.NewValidationError("Invalid request body: %s", describeValidation(err))
	}

	if err := json.UnmarshalFromString(body, out); err != nil {
		return apiErrors.NewValidationError("Invalid request body: %v", err)
	}

	return nil
}

// describeValidation reduz o erro do jsonschema às causas folha
func describeValidation(err error) string {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return err.Error()
	}

	var messages []string
	var walk func(ve *jsonschema.ValidationError)
	walk = func(ve *jsonschema.ValidationError) {
		if len(ve.Causes) == 0 {
			location := ve.InstanceLocation
			if location == "" {
				location = "/"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, ve.Message))
			return
		}
		for _, cause := range ve.Causes {
			walk(cause)
		}
	}
	walk(validationErr)

	return strings.Join(messages, "; ")
}
