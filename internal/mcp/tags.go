package mcp

import "context"

type tagInput struct {
	Name string `json:"name"`
}

func listTags(ctx context.Context, hc *HandlerContext) (any, error) {
	params, err := parseSearchParams(hc.Request.QueryParams, false)
	if err != nil {
		return nil, err
	}

	tags, err := hc.Client.GetTags(ctx, params.Page, params.Limit)
	if err != nil {
		return nil, err
	}

	return listResult("tags", tags, params), nil
}

func createTag(ctx context.Context, hc *HandlerContext) (any, error) {
	var input tagInput
	if err := decodeBody(hc.Request.Body, tagCreate, &input); err != nil {
		return nil, err
	}

	return hc.Client.CreateTag(ctx, input.Name)
}
