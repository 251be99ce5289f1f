package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const dispatchIDLength = 10

// NewDispatchID gera um ID curto para correlacionar logs de um despacho MCP
func NewDispatchID() string {
	id, err := gonanoid.Generate(characters, dispatchIDLength)
	if err != nil {
		return "unknown"
	}
	return id
}
