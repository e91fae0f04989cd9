package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a success body with the given message and data.
func NewOKResp(message string, data any) Resp {
	return Resp{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

// NewErrorResp returns an error body.
func NewErrorResp(message string) Resp {
	return Resp{
		Status:  StatusError,
		Message: message,
	}
}

// OK sends 200 JSON with message and data.
func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, NewOKResp(message, data))
}

// JSON sends resp with the given status code.
func JSON(c *gin.Context, code int, resp Resp) {
	c.JSON(code, resp)
}

// Error sends an error body with the given status code.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, NewErrorResp(message))
}

// ErrorWithRaw sends an error body that includes the raw model output.
func ErrorWithRaw(c *gin.Context, code int, message, raw string) {
	resp := NewErrorResp(message)
	resp.LLMRawOutput = raw
	c.JSON(code, resp)
}

// BadRequest sends 400.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// InternalError aborts with 500. err is recorded on the context, never sent.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, NewErrorResp(DefaultErrorMessage))
}

// TooManyRequests sends 429 and aborts the chain.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, NewErrorResp(TooManyRequestsMessage))
}

// NotFound sends 404.
func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, RouteNotFoundMessage)
}

// MethodNotAllowed sends 405.
func MethodNotAllowed(c *gin.Context) {
	Error(c, http.StatusMethodNotAllowed, MethodNotAllowedMessage)
}
