package ruleclient

import (
	"context"
	"net/http"
	"strings"

	ruledomain "github.com/vfg2006/rule-mcp/infrastructure/integrator/rule/domain"
	"github.com/vfg2006/rule-mcp/pkg/apiErrors"
)

func (c *RuleClient) GetCustomFields(ctx context.Context, page, limit int) ([]ruledomain.CustomField, error) {
	body, err := c.Request(ctx, http.MethodGet, "/fields", listQuery(page, limit, nil), nil)
	if err != nil {
		return nil, err
	}

	fields, _, err := decodeList[ruledomain.CustomField](body, false)
	return fields, err
}

// CreateCustomField só envia default_value quando informado
func (c *RuleClient) CreateCustomField(ctx context.Context, name, fieldType string, defaultValue any) (*ruledomain.CustomField, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apiErrors.NewValidationError("field name is required")
	}
	if strings.TrimSpace(fieldType) == "" {
		return nil, apiErrors.NewValidationError("field type is required")
	}

	payload := ruledomain.CustomFieldCreate{
		Name:         name,
		Type:         fieldType,
		DefaultValue: defaultValue,
	}

	body, err := c.Request(ctx, http.MethodPost, "/fields", nil, payload)
	if err != nil {
		return nil, err
	}

	return decodeItem[ruledomain.CustomField](body)
}
