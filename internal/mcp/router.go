package mcp

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/rule-mcp/infrastructure/integrator/rule/ruleclient"
	"github.com/vfg2006/rule-mcp/pkg/apiErrors"
	"github.com/vfg2006/rule-mcp/pkg/log"
	"github.com/vfg2006/rule-mcp/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}

	WithClientFactory = func(factory ClientFactory) ConfigRouter {
		return func(router *Router) {
			router.newClient = factory
		}
	}
)

// Params são os parâmetros de caminho, por exemplo {id}
type Params map[string]string

func (p Params) ByName(name string) string {
	return p[name]
}

// HandlerContext é passado explicitamente a cada handler; o Client é exclusivo do despacho
type HandlerContext struct {
	Client  ruleclient.Client
	Request *Request
	Params  Params
	Logger  log.Logger
}

// HandlerFunc devolve um valor serializável em JSON ou um erro da taxonomia apiErrors
type HandlerFunc func(ctx context.Context, hc *HandlerContext) (any, error)

// ClientFactory constrói um cliente novo por despacho
type ClientFactory func(apiKey string) (ruleclient.Client, error)

type Route struct {
	Path    string
	Method  string
	Handler HandlerFunc

	segments []string
}

type Router struct {
	routes    []Route
	newClient ClientFactory
}

type ConfigRouter func(router *Router)

// DefaultClientFactory cria um RuleClient com as opções dadas
func DefaultClientFactory(opts ...ruleclient.Option) ClientFactory {
	return func(apiKey string) (ruleclient.Client, error) {
		client, err := ruleclient.NewClient(apiKey, opts...)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

func New(configs ...ConfigRouter) *Router {
	router := &Router{
		newClient: DefaultClientFactory(),
	}

	for _, config := range configs {
		config(router)
	}

	return router
}

// AddRoutes registra as rotas na ordem recebida; o casamento respeita essa ordem
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		route.Method = strings.ToUpper(route.Method)
		route.segments = splitPath(route.Path)
		r.routes = append(r.routes, route)
	}
}

// Routes devolve uma cópia da tabela de rotas
func (r *Router) Routes() []Route {
	routes := make([]Route, len(r.routes))
	copy(routes, r.routes)
	return routes
}

// Dispatch encaminha o envelope ao handler correspondente.
// Rota inexistente e api_key ausente são retornados como erro; erros dos
// handlers viram um Response com {"error": message}.
func (r *Router) Dispatch(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, apiErrors.NewValidationError("request is required")
	}

	method := strings.ToUpper(strings.TrimSpace(req.Method))
	route, params, ok := r.match(method, req.Path)
	if !ok {
		return nil, apiErrors.NewNotFoundError("No route found for %s %s", method, req.Path)
	}

	apiKey := req.APIKey()
	if apiKey == "" {
		return nil, apiErrors.NewValidationError("API key is required")
	}

	ctx = log.WithDispatchID(ctx, utils.NewDispatchID())
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"method": method,
		"path":   route.Path,
	})
	startTime := time.Now()

	client, err := r.newClient(apiKey)
	if err != nil {
		logger.WithError(err).Error("Erro ao criar o cliente do Rule.io")
		return errorResponse(err), nil
	}

	result, err := route.Handler(ctx, &HandlerContext{
		Client:  client,
		Request: req,
		Params:  params,
		Logger:  logger,
	})
	if err != nil {
		response := errorResponse(err)
		logger.WithFields(log.Fields{
			"status_code": response.Status,
			"duration_ms": time.Since(startTime).Milliseconds(),
			"error":       err.Error(),
		}).Warn("Despacho MCP finalizado com erro")
		return response, nil
	}

	body, err := json.Marshal(result)
	if err != nil {
		logger.WithError(err).Error("Erro ao serializar a resposta")
		return errorResponse(err), nil
	}

	logger.WithFields(log.Fields{
		"status_code": http.StatusOK,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Despacho MCP finalizado com sucesso")

	return &Response{
		Status: http.StatusOK,
		Body:   string(body),
	}, nil
}

func (r *Router) match(method, path string) (*Route, Params, bool) {
	segments := splitPath(path)

	for i := range r.routes {
		route := &r.routes[i]
		if route.Method != method || len(route.segments) != len(segments) {
			continue
		}

		params, ok := matchSegments(route.segments, segments)
		if ok {
			return route, params, true
		}
	}

	return nil, nil, false
}

func matchSegments(pattern, segments []string) (Params, bool) {
	params := Params{}

	for i, expected := range pattern {
		actual := segments[i]

		if strings.HasPrefix(expected, "{") && strings.HasSuffix(expected, "}") {
			if actual == "" {
				return nil, false
			}
			value, err := url.PathUnescape(actual)
			if err != nil {
				return nil, false
			}
			params[expected[1:len(expected)-1]] = value
			continue
		}

		if expected != actual {
			return nil, false
		}
	}

	return params, true
}

// splitPath ignora query string e barras nas pontas
func splitPath(path string) []string {
	if idx := strings.IndexByte(path, '?'); idx >= 0 {
		path = path[:idx]
	}

	path = strings.Trim(path, "/")
	if path == "" {
		return []string{}
	}

	return strings.Split(path, "/")
}

func errorResponse(err error) *Response {
	return &Response{
		Status: apiErrors.StatusOf(err),
		Body:   apiErrors.Body(err),
	}
}
