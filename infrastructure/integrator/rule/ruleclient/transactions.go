package ruleclient

import (
	"context"
	"net/http"

	ruledomain "github.com/vfg2006/rule-mcp/infrastructure/integrator/rule/domain"
)

func (c *RuleClient) GetTransactions(ctx context.Context, page, limit int) ([]ruledomain.Transaction, error) {
	body, err := c.Request(ctx, http.MethodGet, "/transactions", listQuery(page, limit, nil), nil)
	if err != nil {
		return nil, err
	}

	transactions, _, err := decodeList[ruledomain.Transaction](body, false)
	return transactions, err
}
