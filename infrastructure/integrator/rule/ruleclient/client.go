package ruleclient

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	ruledomain "github.com/vfg2006/rule-mcp/infrastructure/integrator/rule/domain"
	"github.com/vfg2006/rule-mcp/pkg/apiErrors"
)

const (
	DefaultBaseURL = "https://app.rule.io/api/v3"
	DefaultTimeout = 30 * time.Second
	DefaultPage    = 1
	DefaultLimit   = 100
)

type Client interface {
	Request(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error)

	GetSubscribers(ctx context.Context, page, limit int, filters map[string]*string) ([]ruledomain.Subscriber, error)
	GetSubscriber(ctx context.Context, subscriberID string) (*ruledomain.Subscriber, error)
	CreateSubscriber(ctx context.Context, email string, tags []string, fields map[string]any) (*ruledomain.Subscriber, error)
	UpdateSubscriber(ctx context.Context, subscriberID string, update ruledomain.SubscriberUpdate) (*ruledomain.Subscriber, error)
	DeleteSubscriber(ctx context.Context, subscriberID string) error

	GetTags(ctx context.Context, page, limit int) ([]ruledomain.Tag, error)
	CreateTag(ctx context.Context, name string) (*ruledomain.Tag, error)

	GetCampaigns(ctx context.Context, page, limit int) ([]ruledomain.Campaign, error)

	GetCustomFields(ctx context.Context, page, limit int) ([]ruledomain.CustomField, error)
	CreateCustomField(ctx context.Context, name, fieldType string, defaultValue any) (*ruledomain.CustomField, error)

	GetAutomations(ctx context.Context, page, limit int) ([]ruledomain.Automation, error)
	GetTransactions(ctx context.Context, page, limit int) ([]ruledomain.Transaction, error)
}

// HTTPDoer permite substituir o *http.Client nos testes
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type RuleClient struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient HTTPDoer
}

type Option func(c *RuleClient)

// WithBaseURL troca a URL base; string vazia mantém o padrão
func WithBaseURL(baseURL string) Option {
	return func(c *RuleClient) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithTimeout define o timeout de toda a ida e volta HTTP
func WithTimeout(timeout time.Duration) Option {
	return func(c *RuleClient) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *RuleClient) {
		c.httpClient = doer
	}
}

// NewClient cria um cliente para a API v3 do Rule.io
func NewClient(apiKey string, opts ...Option) (*RuleClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, apiErrors.NewConfigError("API key is required")
	}

	client := &RuleClient{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{
			Timeout: client.timeout,
		}
	}

	return client, nil
}

func (c *RuleClient) BaseURL() string {
	return c.baseURL
}

func (c *RuleClient) Timeout() time.Duration {
	return c.timeout
}
