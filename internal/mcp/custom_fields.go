package mcp

import "context"

type customFieldInput struct {
	Name         string `json:"name"`
	FieldType    string `json:"field_type"`
	DefaultValue any    `json:"default_value"`
}

func listCustomFields(ctx context.Context, hc *HandlerContext) (any, error) {
	params, err := parseSearchParams(hc.Request.QueryParams, false)
	if err != nil {
		return nil, err
	}

	fields, err := hc.Client.GetCustomFields(ctx, params.Page, params.Limit)
	if err != nil {
		return nil, err
	}

	return listResult("fields", fields, params), nil
}

func createCustomField(ctx context.Context, hc *HandlerContext) (any, error) {
	var input customFieldInput
	if err := decodeBody(hc.Request.Body, customFieldCreate, &input); err != nil {
		return nil, err
	}

	return hc.Client.CreateCustomField(ctx, input.Name, input.FieldType, input.DefaultValue)
}
