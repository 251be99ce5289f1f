package mcp

import "context"

func listCampaigns(ctx context.Context, hc *HandlerContext) (any, error) {
	params, err := parseSearchParams(hc.Request.QueryParams, false)
	if err != nil {
		return nil, err
	}

	campaigns, err := hc.Client.GetCampaigns(ctx, params.Page, params.Limit)
	if err != nil {
		return nil, err
	}

	return listResult("campaigns", campaigns, params), nil
}

func listAutomations(ctx context.Context, hc *HandlerContext) (any, error) {
	params, err := parseSearchParams(hc.Request.QueryParams, false)
	if err != nil {
		return nil, err
	}

	automations, err := hc.Client.GetAutomations(ctx, params.Page, params.Limit)
	if err != nil {
		return nil, err
	}

	return listResult("automations", automations, params), nil
}

func listTransactions(ctx context.Context, hc *HandlerContext) (any, error) {
	params, err := parseSearchParams(hc.Request.QueryParams, false)
	if err != nil {
		return nil, err
	}

	transactions, err := hc.Client.GetTransactions(ctx, params.Page, params.Limit)
	if err != nil {
		return nil, err
	}

	return listResult("transactions", transactions, params), nil
}
