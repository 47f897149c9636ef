package domain

import "time"

type Transferencia struct {
	IDTransferencia   uint      `gorm:"primaryKey;column:id_transferencia" json:"id_transferencia"`
	IDPresidiario     *uint     `gorm:"column:id_presidiario;index" json:"id_presidiario,omitempty"`
	UnidadeOrigem     *string   `json:"unidade_origem,omitempty"`
	UnidadeDestino    *string   `json:"unidade_destino,omitempty"`
	Motivo            *string   `gorm:"type:text" json:"motivo,omitempty"`
	Responsavel       *string   `json:"responsavel,omitempty"`
	DataTransferencia time.Time `gorm:"type:date;not null" json:"data_transferencia"`
	CreatedAt         time.Time `json:"created_at"`

	Presidiario *Presidiario `gorm:"foreignKey:IDPresidiario;references:IDPresidiario" json:"presidiario,omitempty"`
}

func (Transferencia) TableName() string { return "transferencias" }
