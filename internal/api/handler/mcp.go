package handler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/rule-mcp/internal/mcp"
	"github.com/vfg2006/rule-mcp/pkg/apiErrors"
	"github.com/vfg2006/rule-mcp/pkg/log"
	"github.com/vfg2006/rule-mcp/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodySize = 1 << 20

// Dispatcher é implementado por *mcp.Router
type Dispatcher interface {
	Dispatch(ctx context.Context, req *mcp.Request) (*mcp.Response, error)
}

// MCPHandler recebe um envelope mcp.Request no corpo e devolve o mcp.Response
func MCPHandler(dispatcher Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req mcp.Request
		if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.NewValidationError("Invalid request envelope: %v", err))
			return
		}

		resp, err := dispatcher.Dispatch(r.Context(), &req)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Envelope MCP rejeitado")
			apiErrors.WriteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao escrever a resposta MCP")
		}
	})
}

// RulePassthroughHandler traduz /v1/rule/*path em um envelope e escreve o corpo com o status do envelope
func RulePassthroughHandler(dispatcher Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.NewValidationError("Invalid request body: %v", err))
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		req := &mcp.Request{
			Method:      r.Method,
			Path:        "/" + strings.TrimPrefix(params.ByName("path"), "/"),
			QueryParams: flattenQuery(r),
			Body:        string(body),
			Metadata: map[string]string{
				"api_key": middleware.APIKeyFromContext(r.Context()),
			},
		}

		resp, err := dispatcher.Dispatch(r.Context(), req)
		if err != nil {
			apiErrors.WriteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.Status)
		if _, err := w.Write([]byte(resp.Body)); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao escrever a resposta do Rule.io")
		}
	})
}

// flattenQuery mantém apenas o primeiro valor de cada parâmetro
func flattenQuery(r *http.Request) map[string]string {
	values := r.URL.Query()
	if len(values) == 0 {
		return nil
	}

	query := make(map[string]string, len(values))
	for key := range values {
		query[key] = values.Get(key)
	}
	return query
}
