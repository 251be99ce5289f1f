package ruleclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rule-mcp/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var supportedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// Request executa uma chamada autenticada ao Rule.io e devolve o corpo JSON.
// Retorna nil sem erro para 204 e para 2xx com corpo vazio. GET envia apenas query, POST/PUT apenas body.
func (c *RuleClient) Request(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	method = strings.ToUpper(method)
	if !supportedMethods[method] {
		return nil, &apiErrors.UnsupportedMethodError{Method: method}
	}

	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, apiErrors.NewConfigError(fmt.Sprintf("invalid request URL: %v", err))
	}

	var reqBody io.Reader
	switch method {
	case http.MethodGet:
		if len(query) > 0 {
			endpoint.RawQuery = query.Encode()
		}
	case http.MethodPost, http.MethodPut:
		if body == nil {
			body = map[string]any{}
		}
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, apiErrors.NewValidationError("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reqBody)
	if err != nil {
		return nil, apiErrors.NewTransportError(err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	logger := logrus.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Warn("Falha de transporte ao chamar o Rule.io")
		return nil, apiErrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithError(err).Warn("Erro ao ler a resposta do Rule.io")
		return nil, apiErrors.NewTransportError(err)
	}

	logger.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Debug("Resposta recebida do Rule.io")

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newResponseError(resp, respBody)
	}

	// 204 ou 2xx sem corpo
	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(respBody)) == 0 {
		return nil, nil
	}

	if !json.Valid(respBody) {
		return nil, apiErrors.NewValidationError("invalid JSON response from %s %s", method, path)
	}

	return respBody, nil
}

// newResponseError extrai "message" do corpo JSON; sem JSON usa o texto bruto
func newResponseError(resp *http.Response, body []byte) *apiErrors.APIError {
	var details map[string]any
	if err := json.Unmarshal(body, &details); err == nil && details != nil {
		message, _ := details["message"].(string)
		if message == "" {
			message = resp.Status
		}
		return apiErrors.NewAPIError(resp.StatusCode, message, details)
	}

	message := strings.TrimSpace(string(body))
	if message == "" {
		message = resp.Status
	}

	return apiErrors.NewAPIError(resp.StatusCode, message, map[string]any{"detail": string(body)})
}
