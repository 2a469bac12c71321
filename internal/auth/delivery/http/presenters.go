package http

import "task-tracker/internal/auth"

type generateTokenReq struct {
	Pwd string `json:"pwd" binding:"required"`
}

func (r generateTokenReq) toInput() auth.GenerateTokenInput {
	return auth.GenerateTokenInput{Password: r.Pwd}
}

type tokenResp struct {
	Token string `json:"token"`
}

func (h *handler) newTokenResp(out auth.TokenOutput) tokenResp {
	return tokenResp{Token: out.Token}
}
