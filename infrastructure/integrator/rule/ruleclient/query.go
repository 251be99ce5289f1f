package ruleclient

import (
	"net/url"
	"strconv"
)

// listQuery monta page/limit e mescla os filtros, descartando os nulos
func listQuery(page, limit int, filters map[string]*string) url.Values {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	for key, value := range filters {
		if value == nil {
			continue
		}
		params.Set(key, *value)
	}

	return params
}
