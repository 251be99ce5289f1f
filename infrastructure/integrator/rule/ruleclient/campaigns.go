package ruleclient

import (
	"context"
	"net/http"

	ruledomain "github.com/vfg2006/rule-mcp/infrastructure/integrator/rule/domain"
)

func (c *RuleClient) GetCampaigns(ctx context.Context, page, limit int) ([]ruledomain.Campaign, error) {
	body, err := c.Request(ctx, http.MethodGet, "/campaigns", listQuery(page, limit, nil), nil)
	if err != nil {
		return nil, err
	}

	campaigns, _, err := decodeList[ruledomain.Campaign](body, false)
	return campaigns, err
}
