package http

import (
	"strings"

	"intent-gateway/internal/intent"
)

// --- Request DTOs ---

type dispatchReq struct {
	Query *string `json:"query"`
}

func (r dispatchReq) validate() error {
	if r.Query == nil || strings.TrimSpace(*r.Query) == "" {
		return errMissingQuery
	}
	return nil
}

func (r dispatchReq) toInput() intent.DispatchInput {
	return intent.DispatchInput{Query: *r.Query}
}

// --- Response DTOs ---

// dispatchResp mirrors response.Resp; declared here for the API docs.
type dispatchResp struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Found 2 products."`
	Data    any    `json:"data,omitempty"`
}
