package domain

import "time"

type Visita struct {
	IDVisita           uint      `gorm:"primaryKey;column:id_visita" json:"id_visita"`
	IDPresidiario      *uint     `gorm:"column:id_presidiario;index" json:"id_presidiario,omitempty"`
	NomeVisitante      string    `gorm:"not null" json:"nome_visitante"`
	Parentesco         *string   `json:"parentesco,omitempty"`
	DocumentoVisitante *string   `json:"documento_visitante,omitempty"`
	Observacoes        *string   `gorm:"type:text" json:"observacoes,omitempty"`
	DataVisita         time.Time `gorm:"type:date;not null" json:"data_visita"`
	RegistradoPor      *string   `gorm:"type:varchar(36)" json:"registrado_por,omitempty"`
	CreatedAt          time.Time `json:"created_at"`

	Presidiario *Presidiario `gorm:"foreignKey:IDPresidiario;references:IDPresidiario" json:"presidiario,omitempty"`
}

func (Visita) TableName() string { return "visitas" }
