package ruledomain

// Tipos de campo aceitos pelo Rule.io
const (
	FieldTypeString  = "string"
	FieldTypeNumber  = "number"
	FieldTypeBoolean = "boolean"
	FieldTypeDate    = "date"
)

type CustomField struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Created      Timestamp `json:"created"`
	Updated      Timestamp `json:"updated"`
	DefaultValue any       `json:"default_value"`
}

// CustomFieldCreate omite default_value quando não informado
type CustomFieldCreate struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	DefaultValue any    `json:"default_value,omitempty"`
}
