package mcp

import (
	"context"

	ruledomain "github.com/vfg2006/rule-mcp/infrastructure/integrator/rule/domain"
	"github.com/vfg2006/rule-mcp/pkg/apiErrors"
)

type subscriberInput struct {
	Email  *string        `json:"email"`
	Tags   []string       `json:"tags"`
	Fields map[string]any `json:"fields"`
}

func listSubscribers(ctx context.Context, hc *HandlerContext) (any, error) {
	params, err := parseSearchParams(hc.Request.QueryParams, true)
	if err != nil {
		return nil, err
	}

	subscribers, err := hc.Client.GetSubscribers(ctx, params.Page, params.Limit, params.Filters)
	if err != nil {
		return nil, err
	}

	return listResult("subscribers", subscribers, params), nil
}

func getSubscriber(ctx context.Context, hc *HandlerContext) (any, error) {
	subscriber, err := hc.Client.GetSubscriber(ctx, hc.Params.ByName("id"))
	if err != nil {
		if apiErrors.IsNotFound(err) {
			return nil, apiErrors.NewNotFoundError("Subscriber not found: %s", err.Error())
		}
		return nil, err
	}

	return subscriber, nil
}

func createSubscriber(ctx context.Context, hc *HandlerContext) (any, error) {
	var input subscriberInput
	if err := decodeBody(hc.Request.Body, subscriberCreate, &input); err != nil {
		return nil, err
	}

	// tags e fields ausentes seguem como nil até o cliente
	return hc.Client.CreateSubscriber(ctx, *input.Email, input.Tags, input.Fields)
}

func updateSubscriber(ctx context.Context, hc *HandlerContext) (any, error) {
	var input subscriberInput
	if err := decodeBody(hc.Request.Body, subscriberUpdate, &input); err != nil {
		return nil, err
	}

	return hc.Client.UpdateSubscriber(ctx, hc.Params.ByName("id"), ruledomain.SubscriberUpdate{
		Email:  input.Email,
		Tags:   input.Tags,
		Fields: input.Fields,
	})
}

func deleteSubscriber(ctx context.Context, hc *HandlerContext) (any, error) {
	if err := hc.Client.DeleteSubscriber(ctx, hc.Params.ByName("id")); err != nil {
		return nil, err
	}

	return map[string]bool{"success": true}, nil
}
