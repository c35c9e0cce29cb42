package dto

// ConnectTokenRequest connects a mailbox using tokens the client already
// obtained from the provider.
type ConnectTokenRequest struct {
	Email        string `json:"email" binding:"required,email"`
	AccessToken  string `json:"access_token" binding:"required"`
	RefreshToken string `json:"refresh_token"`
	DisplayName  string `json:"display_name"`
}

// ConnectCodeRequest connects a mailbox from an OAuth authorization code.
type ConnectCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}
