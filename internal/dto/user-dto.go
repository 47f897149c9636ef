package dto

import "time"

// CreateUserRequest is the super-admin user-provisioning payload.
type CreateUserRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	NomeCompleto string `json:"nome_completo"`
	NivelAcesso  string `json:"nivel_acesso"`
}

type ProfileResponse struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	NomeCompleto string     `json:"nome_completo"`
	NivelAcesso  string     `json:"nivel_acesso"`
	UltimoLogin  *time.Time `json:"ultimo_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
