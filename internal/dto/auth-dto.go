package dto

type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	NomeCompleto string `json:"nome_completo"`
}

type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

// AuthResponse are the verified JWT claims stored in the request context.
type AuthResponse struct {
	UserID string  `json:"user_id"`
	Email  string  `json:"email"`
	Iat    float64 `json:"iat"`
	Expiry float64 `json:"expiry"`
}
