package api

import "encoding/json"

// GraphQLRequest представляет тело запроса к GraphQL endpoint
type GraphQLRequest struct {
	Variables map[string]any `json:"variables,omitempty"` // переменные запроса
	Query     string         `json:"query"`               // текст запроса
}

// GraphQLResponse представляет ответ GraphQL endpoint
// Успешный ответ содержит data, ошибка уровня приложения - errors
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// GraphQLError is one entry of the "errors" array.
type GraphQLError struct {
	Extensions map[string]any `json:"extensions,omitempty"`
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
}
