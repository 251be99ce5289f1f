package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorBody é o corpo padronizado de erro, tanto no envelope MCP quanto na API HTTP
type ErrorBody struct {
	Error string `json:"error"`
}

// Body serializa a mensagem do erro no formato {"error": message}
func Body(err error) string {
	message := "unknown error"
	if err != nil {
		message = err.Error()
	}

	buffer, marshalErr := json.Marshal(ErrorBody{Error: message})
	if marshalErr != nil {
		return `{"error":"unknown error"}`
	}

	return string(buffer)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusOf(err))
	_, _ = w.Write([]byte(Body(err)))
}
