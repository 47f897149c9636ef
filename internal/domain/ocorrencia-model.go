package domain

import "time"

// Tipos de ocorrência.
const (
	OcorrenciaAdvertencia = "Advertência"
	OcorrenciaFuga        = "Fuga"
	OcorrenciaBriga       = "Briga"
	OcorrenciaBoaConduta  = "Boa Conduta"
	OcorrenciaOutros      = "Outros"
)

type Ocorrencia struct {
	IDOcorrencia   uint      `gorm:"primaryKey;column:id_ocorrencia" json:"id_ocorrencia"`
	IDPresidiario  *uint     `gorm:"column:id_presidiario;index" json:"id_presidiario,omitempty"`
	Tipo           *string   `gorm:"type:varchar(20)" json:"tipo,omitempty"`
	Descricao      string    `gorm:"type:text;not null" json:"descricao"`
	DataOcorrencia time.Time `gorm:"type:date;not null;index" json:"data_ocorrencia"`
	RegistradoPor  *string   `gorm:"type:varchar(36)" json:"registrado_por,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	Presidiario *Presidiario `gorm:"foreignKey:IDPresidiario;references:IDPresidiario" json:"presidiario,omitempty"`
}

func (Ocorrencia) TableName() string { return "ocorrencias" }
