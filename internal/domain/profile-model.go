package domain

import "time"

// Níveis de acesso.
const (
	NivelAdmin     = "admin"
	NivelOperador  = "operador"
	NivelConsulta  = "consulta"
	NivelVisitante = "visitante"
)

// Profile is the application-side identity record. The auth layer issues
// JWT sessions against it; nivel_acesso is the profile-level fallback when
// the user has no user_roles row.
type Profile struct {
	ID           string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `json:"-"`
	NomeCompleto string     `gorm:"not null" json:"nome_completo"`
	NivelAcesso  string     `gorm:"type:varchar(20);not null;default:operador" json:"nivel_acesso"`
	UltimoLogin  *time.Time `json:"ultimo_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`

	Roles []UserRole `gorm:"foreignKey:UserID;references:ID" json:"user_roles,omitempty"`
}

func (Profile) TableName() string { return "profiles" }

type UserRole struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserRole) TableName() string { return "user_roles" }
