package mcp

import (
	"strconv"
	"strings"

	"github.com/vfg2006/rule-mcp/infrastructure/integrator/rule/ruleclient"
	"github.com/vfg2006/rule-mcp/pkg/apiErrors"
)

// SearchParams são os parâmetros de paginação e filtros das listagens
type SearchParams struct {
	Page    int
	Limit   int
	Filters map[string]*string
}

var reservedQueryParams = map[string]bool{
	"page":  true,
	"limit": true,
}

// parseSearchParams lê page e limit da query; ausentes ou <= 0 assumem 1 e 100.
// Com withFilters, os demais parâmetros viram filtros.
func parseSearchParams(query map[string]string, withFilters bool) (SearchParams, error) {
	params := SearchParams{
		Page:  ruleclient.DefaultPage,
		Limit: ruleclient.DefaultLimit,
	}

	var err error
	if params.Page, err = parseIntParam(query, "page", ruleclient.DefaultPage); err != nil {
		return params, err
	}
	if params.Limit, err = parseIntParam(query, "limit", ruleclient.DefaultLimit); err != nil {
		return params, err
	}

	// mesmos padrões aplicados pelo cliente, para que o eco corresponda à chamada
	if params.Page <= 0 {
		params.Page = ruleclient.DefaultPage
	}
	if params.Limit <= 0 {
		params.Limit = ruleclient.DefaultLimit
	}

	if withFilters {
		for key, value := range query {
			if reservedQueryParams[key] {
				continue
			}
			if params.Filters == nil {
				params.Filters = map[string]*string{}
			}
			v := value
			params.Filters[key] = &v
		}
	}

	return params, nil
}

func parseIntParam(query map[string]string, name string, fallback int) (int, error) {
	raw, ok := query[name]
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, apiErrors.NewValidationError("Invalid %s parameter: %s", name, raw)
	}

	return value, nil
}

// listResult monta {<key>: items, page, limit, total}; total é o tamanho da página
func listResult[T any](key string, items []T, params SearchParams) map[string]any {
	if items == nil {
		items = []T{}
	}

	return map[string]any{
		key:     items,
		"page":  params.Page,
		"limit": params.Limit,
		"total": len(items),
	}
}
