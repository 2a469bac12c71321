package http

import "github.com/gin-gonic/gin"

func (h *handler) processGenerateTokenReq(c *gin.Context) (generateTokenReq, error) {
	var req generateTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
