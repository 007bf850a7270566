package api

import (
	"bytes"
	"encoding/json"
)

// SignInResponse is the object form of a successful sign-in: {"token": "..."}.
// The endpoint may also answer with a bare token string.
type SignInResponse struct {
	Token string `json:"token"`
}

// DecodeSignIn interprets a sign-in response body. A valid JSON document is
// returned decoded (string, map[string]any, ...); anything else is returned
// as the trimmed raw text.
func DecodeSignIn(body []byte) any {
	trimmed := bytes.TrimSpace(body)

	var decoded any
	if err := json.Unmarshal(trimmed, &decoded); err == nil {
		return decoded
	}

	return string(trimmed)
}
