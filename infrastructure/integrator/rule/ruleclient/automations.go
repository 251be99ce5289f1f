package ruleclient

import (
	"context"
	"net/http"

	ruledomain "github.com/vfg2006/rule-mcp/infrastructure/integrator/rule/domain"
)

func (c *RuleClient) GetAutomations(ctx context.Context, page, limit int) ([]ruledomain.Automation, error) {
	body, err := c.Request(ctx, http.MethodGet, "/automations", listQuery(page, limit, nil), nil)
	if err != nil {
		return nil, err
	}

	automations, _, err := decodeList[ruledomain.Automation](body, false)
	return automations, err
}
