package domain

import "time"

// LogSistema is the audit trail. Rows are insert-only from application code.
type LogSistema struct {
	IDLog     uint      `gorm:"primaryKey;column:id_log" json:"id_log"`
	UserID    *string   `gorm:"type:varchar(36);index" json:"user_id,omitempty"`
	Acao      string    `gorm:"type:varchar(100);not null" json:"acao"`
	Detalhes  *string   `gorm:"type:jsonb" json:"detalhes,omitempty"`
	IPOrigem  *string   `gorm:"column:ip_origem;type:varchar(45)" json:"ip_origem,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (LogSistema) TableName() string { return "logs_sistema" }
