package http

import (
	"errors"
	"fmt"
	"net/http"

	"intent-gateway/internal/intent"
	"intent-gateway/pkg/response"
)

var errMissingQuery = fmt.Errorf("%w: missing query", intent.ErrInvalidInput)

// mapError picks the status code for a failed dispatch and builds the body
// from the result the use case produced.
func (h *handler) mapError(err error, out intent.DispatchOutput) (int, response.Resp) {
	resp := response.NewErrorResp(out.Result.Message)
	if resp.Message == "" {
		resp.Message = response.DefaultErrorMessage
	}

	switch {
	case errors.Is(err, intent.ErrInvalidInput):
		resp.Message = intent.MsgMissingQuery
		return http.StatusBadRequest, resp
	case errors.Is(err, intent.ErrUnknownIntent):
		return http.StatusBadRequest, resp
	case errors.Is(err, intent.ErrMalformedResponse):
		var ee *intent.ExtractError
		if errors.As(err, &ee) {
			resp.LLMRawOutput = ee.Raw
		} else {
			resp.LLMRawOutput = out.Raw
		}
		return http.StatusInternalServerError, resp
	case errors.Is(err, intent.ErrModelUnavailable),
		errors.Is(err, intent.ErrModelRejected),
		errors.Is(err, intent.ErrMissingIntent),
		errors.Is(err, intent.ErrDownstreamFault):
		return http.StatusInternalServerError, resp
	default:
		return http.StatusInternalServerError, response.NewErrorResp(response.DefaultErrorMessage)
	}
}
