package mcp

import "strings"

// Request é o envelope genérico de entrada do MCP.
// metadata["api_key"] é obrigatório.
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	QueryParams map[string]string `json:"query_params,omitempty"`
	Body        string            `json:"body,omitempty"`
	Metadata    map[string]string `json:"metadata"`
}

// Response é o envelope genérico de saída; Body é sempre uma string JSON
type Response struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

// APIKey devolve metadata["api_key"] sem espaços, ou string vazia
func (r *Request) APIKey() string {
	if r.Metadata == nil {
		return ""
	}
	return strings.TrimSpace(r.Metadata["api_key"])
}
