package ruleclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	ruledomain "github.com/vfg2006/rule-mcp/infrastructure/integrator/rule/domain"
	"github.com/vfg2006/rule-mcp/pkg/apiErrors"
)

func subscriberPath(subscriberID string) string {
	return fmt.Sprintf("/subscribers/%s", url.PathEscape(subscriberID))
}

// GetSubscribers lista assinantes; filtros nulos não são enviados
func (c *RuleClient) GetSubscribers(ctx context.Context, page, limit int, filters map[string]*string) ([]ruledomain.Subscriber, error) {
	body, err := c.Request(ctx, http.MethodGet, "/subscribers", listQuery(page, limit, filters), nil)
	if err != nil {
		return nil, err
	}

	subscribers, pagination, err := decodeList[ruledomain.Subscriber](body, true)
	if err != nil {
		return nil, err
	}

	for i := range subscribers {
		if err := subscribers[i].Validate(); err != nil {
			return nil, apiErrors.NewValidationError("invalid subscriber at index %d: %v", i, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"count": len(subscribers),
		"total": pagination.Total,
	}).Debug("Assinantes obtidos do Rule.io")

	return subscribers, nil
}

func (c *RuleClient) GetSubscriber(ctx context.Context, subscriberID string) (*ruledomain.Subscriber, error) {
	if subscriberID == "" {
		return nil, apiErrors.NewValidationError("subscriber id is required")
	}

	body, err := c.Request(ctx, http.MethodGet, subscriberPath(subscriberID), nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeSubscriber(body)
}

// CreateSubscriber cria um assinante; tags e fields nulos viram coleções vazias
func (c *RuleClient) CreateSubscriber(ctx context.Context, email string, tags []string, fields map[string]any) (*ruledomain.Subscriber, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apiErrors.NewValidationError("email is required")
	}

	payload := ruledomain.NewSubscriberCreate(email, tags, fields)

	body, err := c.Request(ctx, http.MethodPost, "/subscribers", nil, payload)
	if err != nil {
		return nil, err
	}

	return decodeSubscriber(body)
}

// UpdateSubscriber envia somente os campos presentes em update
func (c *RuleClient) UpdateSubscriber(ctx context.Context, subscriberID string, update ruledomain.SubscriberUpdate) (*ruledomain.Subscriber, error) {
	if subscriberID == "" {
		return nil, apiErrors.NewValidationError("subscriber id is required")
	}

	body, err := c.Request(ctx, http.MethodPut, subscriberPath(subscriberID), nil, update.Body())
	if err != nil {
		return nil, err
	}

	return decodeSubscriber(body)
}

func (c *RuleClient) DeleteSubscriber(ctx context.Context, subscriberID string) error {
	if subscriberID == "" {
		return apiErrors.NewValidationError("subscriber id is required")
	}

	_, err := c.Request(ctx, http.MethodDelete, subscriberPath(subscriberID), nil, nil)
	return err
}

func decodeSubscriber(body []byte) (*ruledomain.Subscriber, error) {
	subscriber, err := decodeItem[ruledomain.Subscriber](body)
	if err != nil {
		return nil, err
	}

	if err := subscriber.Validate(); err != nil {
		return nil, apiErrors.NewValidationError("invalid subscriber: %v", err)
	}

	return subscriber, nil
}
