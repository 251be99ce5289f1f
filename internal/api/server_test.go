package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ruledomain "github.com/vfg2006/rule-mcp/infrastructure/integrator/rule/domain"
	"github.com/vfg2006/rule-mcp/infrastructure/integrator/rule/ruleclient"
	"github.com/vfg2006/rule-mcp/infrastructure/integrator/rule/ruleclient/mocks"
	"github.com/vfg2006/rule-mcp/internal/config"
	"github.com/vfg2006/rule-mcp/internal/mcp"
	"github.com/vfg2006/rule-mcp/pkg/log"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	log.SetupTestLogger()
}

// keyRecorder guarda as chaves recebidas pela fábrica de clientes
type keyRecorder struct {
	mu   sync.Mutex
	keys []string
}

func (k *keyRecorder) add(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.keys = append(k.keys, key)
}

func (k *keyRecorder) all() []string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]string(nil), k.keys...)
}

func newTestServer(t *testing.T) (*httptest.Server, *mocks.MockClient, *keyRecorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	keys := &keyRecorder{}

	dispatcher := mcp.New(
		mcp.WithRoutes(mcp.DefaultRoutes()...),
		mcp.WithClientFactory(func(apiKey string) (ruleclient.Client, error) {
			keys.add(apiKey)
			return client, nil
		}),
	)

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		CORS:   config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	srv, err := New(cfg, dispatcher)
	require.NoError(t, err)

	server := httptest.NewServer(srv.Handler())
	t.Cleanup(server.Close)

	return server, client, keys
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	var builder bytes.Buffer
	_, err := builder.ReadFrom(resp.Body)
	require.NoError(t, err)
	return builder.String()
}

func TestNew_RequiresDispatcher(t *testing.T) {
	_, err := New(&config.Config{}, nil)
	assert.Error(t, err)
}

func TestHealthcheck(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/healthcheck")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_, parseErr := time.Parse(time.RFC3339, readBody(t, resp))
	assert.NoError(t, parseErr)
}

func TestMCPEndpoint(t *testing.T) {
	server, client, keys := newTestServer(t)
	client.EXPECT().GetTags(gomock.Any(), 1, 100).Return([]ruledomain.Tag{{ID: "1", Name: "vip"}}, nil)

	body := `{"method":"GET","path":"/tags","metadata":{"api_key":"envelope-key"}}`
	resp, err := http.Post(server.URL+"/v1/mcp", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope mcp.Response
	require.NoError(t, json.UnmarshalFromString(readBody(t, resp), &envelope))
	assert.Equal(t, http.StatusOK, envelope.Status)
	assert.Contains(t, envelope.Body, `"total":1`)
	assert.Equal(t, []string{"envelope-key"}, keys.all())
}

func TestMCPEndpoint_DispatchErrors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "rota inexistente",
			body:           `{"method":"GET","path":"/unknown","metadata":{"api_key":"k"}}`,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"No route found for GET /unknown"}`,
		},
		{
			name:           "sem api key",
			body:           `{"method":"GET","path":"/tags","metadata":{}}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"API key is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _, keys := newTestServer(t)

			resp, err := http.Post(server.URL+"/v1/mcp", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.JSONEq(t, tt.expectedBody, readBody(t, resp))
			assert.Empty(t, keys.all())
		})
	}
}

func TestMCPEndpoint_InvalidEnvelope(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp, err := http.Post(server.URL+"/v1/mcp", "application/json", strings.NewReader(`not json`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRulePassthrough(t *testing.T) {
	server, client, keys := newTestServer(t)
	status := "active"
	client.EXPECT().
		GetSubscribers(gomock.Any(), 3, 100, map[string]*string{"status": &status}).
		Return([]ruledomain.Subscriber{}, nil)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/v1/rule/subscribers?page=3&status=active", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer header-key")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"subscribers":[],"page":3,"limit":100,"total":0}`, readBody(t, resp))
	assert.Equal(t, []string{"header-key"}, keys.all())
}

func TestRulePassthrough_EnvelopeStatus(t *testing.T) {
	server, client, _ := newTestServer(t)
	client.EXPECT().DeleteSubscriber(gomock.Any(), "42").Return(nil)

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/v1/rule/subscribers/42", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer header-key")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true}`, readBody(t, resp))
}

func TestRulePassthrough_MissingAPIKey(t *testing.T) {
	server, _, keys := newTestServer(t)

	resp, err := http.Post(server.URL+"/v1/rule/tags", "application/json", strings.NewReader(`{"name":"vip"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"API key is required"}`, readBody(t, resp))
	assert.Empty(t, keys.all())
}

func TestUnknownRoute(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/v2/anything")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	cfg := &config.Config{Server: config.Server{Host: "127.0.0.1", Port: "0"}}
	srv, err := New(cfg, mcp.New())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(ctx)
	}()

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servidor não desligou a tempo")
	}
}
