package http

import (
	"github.com/gin-gonic/gin"
)

// processDispatchReq binds and validates the dispatch request body.
// Any bind failure, including an empty or non-JSON body, counts as a missing query.
func (h *handler) processDispatchReq(c *gin.Context) (dispatchReq, error) {
	var req dispatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "%s: bind request: %v", LogPrefixDispatch, err)
		return req, errMissingQuery
	}
	return req, req.validate()
}
