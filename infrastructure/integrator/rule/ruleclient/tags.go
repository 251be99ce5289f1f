package ruleclient

import (
	"context"
	"net/http"
	"strings"

	ruledomain "github.com/vfg2006/rule-mcp/infrastructure/integrator/rule/domain"
	"github.com/vfg2006/rule-mcp/pkg/apiErrors"
)

func (c *RuleClient) GetTags(ctx context.Context, page, limit int) ([]ruledomain.Tag, error) {
	body, err := c.Request(ctx, http.MethodGet, "/tags", listQuery(page, limit, nil), nil)
	if err != nil {
		return nil, err
	}

	tags, _, err := decodeList[ruledomain.Tag](body, false)
	return tags, err
}

func (c *RuleClient) CreateTag(ctx context.Context, name string) (*ruledomain.Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apiErrors.NewValidationError("tag name is required")
	}

	body, err := c.Request(ctx, http.MethodPost, "/tags", nil, ruledomain.TagCreate{Name: name})
	if err != nil {
		return nil, err
	}

	return decodeItem[ruledomain.Tag](body)
}
