package http

import (
	"github.com/gin-gonic/gin"

	"task-tracker/pkg/response"
)

// GenerateToken godoc
// @Summary     Issue an API token
// @Description Exchanges the application password for a bearer token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body generateTokenReq true "Password"
// @Success     200 {object} response.Resp{data=tokenResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Wrong password"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/token/generate [POST]
func (h *handler) GenerateToken(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateTokenReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GenerateToken(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTokenResp(output))
}
