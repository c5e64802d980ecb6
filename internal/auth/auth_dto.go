package auth

import "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/user"

type RegisterRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Industry    string `json:"industry"`
	Skills      string `json:"skills"`
	Interests   string `json:"interests"`
	LinkedinURL string `json:"linkedin_url" binding:"omitempty,url"`
	CompanyID   *int64 `json:"company_id" binding:"omitempty,min=1"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	TokenPair
	User user.UserProfileDTO `json:"user"`
}
