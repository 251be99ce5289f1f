package handler

import (
	"net/http"

	"github.com/vfg2006/rule-mcp/internal/api/handler/router"
	"github.com/vfg2006/rule-mcp/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func MCP(dispatcher Dispatcher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/mcp",
			Method:  http.MethodPost,
			Handler: MCPHandler(dispatcher),
		},
	}
}

func Rule(dispatcher Dispatcher) []router.Route {
	passthrough := RulePassthroughHandler(dispatcher)
	apiKey := []func(http.Handler) http.Handler{middleware.APIKey()}

	var routes []router.Route
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		routes = append(routes, router.Route{
			Path:        "/v1/rule/*path",
			Method:      method,
			Handler:     passthrough,
			Middlewares: apiKey,
		})
	}

	return routes
}
