package ruledomain

// Pagination é o metadado de paginação devolvido pelos endpoints de listagem.
// total_pages não é recalculado localmente.
type Pagination struct {
	Total       int `json:"total"`
	Count       int `json:"count"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// ListResponse é o envelope {data: [...], pagination: {...}}
type ListResponse[T any] struct {
	Data       *[]T        `json:"data"`
	Pagination *Pagination `json:"pagination"`
}

// Items devolve os itens do envelope, vazio quando "data" não veio
func (r ListResponse[T]) Items() []T {
	if r.Data == nil {
		return []T{}
	}
	return *r.Data
}

// ItemResponse é o envelope {data: {...}}
type ItemResponse[T any] struct {
	Data *T `json:"data"`
}
