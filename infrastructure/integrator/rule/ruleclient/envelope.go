package ruleclient

import (
	ruledomain "github.com/vfg2006/rule-mcp/infrastructure/integrator/rule/domain"
	"github.com/vfg2006/rule-mcp/pkg/apiErrors"
)

// decodeList desembrulha {data: [...]}. Em modo estrito data e pagination são obrigatórios.
func decodeList[T any](body []byte, strict bool) ([]T, *ruledomain.Pagination, error) {
	if body == nil {
		if strict {
			return nil, nil, apiErrors.NewValidationError("empty response where a list envelope was expected")
		}
		return []T{}, nil, nil
	}

	var response ruledomain.ListResponse[T]
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, nil, apiErrors.NewValidationError("invalid list envelope: %v", err)
	}

	if strict {
		if response.Data == nil {
			return nil, nil, apiErrors.NewValidationError("response envelope is missing data")
		}
		if response.Pagination == nil {
			return nil, nil, apiErrors.NewValidationError("response envelope is missing pagination")
		}
	}

	return response.Items(), response.Pagination, nil
}

// decodeItem desembrulha {data: {...}}
func decodeItem[T any](body []byte) (*T, error) {
	if body == nil {
		return nil, apiErrors.NewValidationError("empty response where an item envelope was expected")
	}

	var response ruledomain.ItemResponse[T]
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, apiErrors.NewValidationError("invalid item envelope: %v", err)
	}

	if response.Data == nil {
		return nil, apiErrors.NewValidationError("response envelope is missing data")
	}

	return response.Data, nil
}
