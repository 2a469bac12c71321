package auth

type GenerateTokenInput struct {
	Password string
}

type TokenOutput struct {
	Token string
}
