package domain

import "time"

type SaudePsicologia struct {
	IDRegistro             uint      `gorm:"primaryKey;column:id_registro" json:"id_registro"`
	IDPresidiario          *uint     `gorm:"column:id_presidiario;index" json:"id_presidiario,omitempty"`
	CondicoesSaude         *string   `gorm:"type:text" json:"condicoes_saude,omitempty"`
	Medicamentos           *string   `gorm:"type:text" json:"medicamentos,omitempty"`
	AvaliacoesPsicologicas *string   `gorm:"type:text" json:"avaliacoes_psicologicas,omitempty"`
	Observacoes            *string   `gorm:"type:text" json:"observacoes,omitempty"`
	RiscoSuicidio          bool      `gorm:"default:false;index" json:"risco_suicidio"`
	DataAtualizacao        time.Time `gorm:"type:date;not null" json:"data_atualizacao"`
	AtualizadoPor          *string   `gorm:"type:varchar(36)" json:"atualizado_por,omitempty"`
	UpdatedAt              time.Time `json:"updated_at"`

	Presidiario *Presidiario `gorm:"foreignKey:IDPresidiario;references:IDPresidiario" json:"presidiario,omitempty"`
}

func (SaudePsicologia) TableName() string { return "saude_psicologia" }
