package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intent-gateway/internal/intent"
	"intent-gateway/pkg/response"
)

// Dispatch godoc
// @Summary     Dispatch a natural-language query
// @Description Classifies the query into a supported intent with the language model and runs the matching handler.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       body body     dispatchReq   true "Query to dispatch"
// @Success     200  {object} dispatchResp
// @Failure     400  {object} response.Resp "Missing query or unsupported intent"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Model, parse or Salesforce failure"
// @Router      /mcp_gateway [POST]
// @Router      /api/v1/intents/dispatch [POST]
func (h *handler) Dispatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDispatchReq(c)
	if err != nil {
		response.BadRequest(c, intent.MsgMissingQuery)
		return
	}

	out, err := h.uc.Dispatch(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.Dispatch: %v", LogPrefixDispatch, err)
		code, resp := h.mapError(err, out)
		response.JSON(c, code, resp)
		return
	}

	response.JSON(c, http.StatusOK, response.Resp{
		Status:  out.Result.Status,
		Message: out.Result.Message,
		Data:    out.Result.Data,
	})
}
