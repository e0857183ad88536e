package dto

type AuthURLResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	State            string `json:"state"`
}

type ExchangeRequest struct {
	Code string `json:"code" binding:"required"`
}

type ExchangeResponse struct {
	User      *UserResponse `json:"user"`
	SessionID string        `json:"session_id"`
	ExpiresIn int           `json:"expires_in"`
}

type IdentityResponse struct {
	UserID     int64   `json:"user_id,string"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	PictureURL *string `json:"picture_url,omitempty"`
}
