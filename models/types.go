// Package models contain needed models
package models

import "encoding/json"

// EncryptRequest is the body of every /encrypt endpoint. PlainText is a pointer
// so that an empty string still counts as present.
type EncryptRequest struct {
	PlainText *string         `json:"plain_text" binding:"required"`
	Key       json.RawMessage `json:"key" binding:"required"`
}

// DecryptRequest is the body of every /decrypt endpoint.
type DecryptRequest struct {
	CipherText *string         `json:"cipher_text" binding:"required"`
	Key        json.RawMessage `json:"key" binding:"required"`
}

// ErrorResponse is returned with every 4xx/5xx answer
type ErrorResponse struct {
	Error string `json:"error"`
}

// CipherInfo describes one cipher in GET /api/ciphers
type CipherInfo struct {
	Name      string   `json:"name"`
	KeyType   string   `json:"key_type"`
	Endpoints []string `json:"endpoints"`
}

// CipherListResponse represents the response of GET /api/ciphers
type CipherListResponse struct {
	Ciphers []CipherInfo `json:"ciphers"`
}
