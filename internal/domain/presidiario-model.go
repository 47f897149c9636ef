package domain

import "time"

// Regimes prisionais.
const (
	RegimeFechado    = "Fechado"
	RegimeSemiaberto = "Semiaberto"
	RegimeAberto     = "Aberto"
)

// Situações jurídicas.
const (
	SituacaoProvisorio   = "Provisório"
	SituacaoCondenado    = "Condenado"
	SituacaoEmJulgamento = "Em julgamento"
)

type Presidiario struct {
	IDPresidiario uint    `gorm:"primaryKey;column:id_presidiario" json:"id_presidiario"`
	NomeCompleto  string  `gorm:"not null" json:"nome_completo"`
	Apelido       *string `json:"apelido,omitempty"`
	CPF           *string `gorm:"column:cpf" json:"cpf,omitempty"`
	RG            *string `gorm:"column:rg" json:"rg,omitempty"`

	DataNascimento *time.Time `gorm:"type:date" json:"data_nascimento,omitempty"`
	Naturalidade   *string    `json:"naturalidade,omitempty"`
	EstadoCivil    *string    `gorm:"type:varchar(20)" json:"estado_civil,omitempty"`
	FiliacaoPai    *string    `json:"filiacao_pai,omitempty"`
	FiliacaoMae    *string    `json:"filiacao_mae,omitempty"`
	Religiao       *string    `json:"religiao,omitempty"`
	FotoURL        *string    `gorm:"column:foto_url" json:"foto_url,omitempty"`

	ProcessoNumero []string `gorm:"serializer:json;type:jsonb" json:"processo_numero,omitempty"`
	Crime          []string `gorm:"serializer:json;type:jsonb" json:"crime,omitempty"`
	PenaTotal      *string  `json:"pena_total,omitempty"`

	DataPrisao          *time.Time `gorm:"type:date" json:"data_prisao,omitempty"`
	DataPrevistaSoltura *time.Time `gorm:"type:date;index" json:"data_prevista_soltura,omitempty"`

	Regime   *string `gorm:"type:varchar(20)" json:"regime,omitempty"`
	Situacao *string `gorm:"type:varchar(20)" json:"situacao,omitempty"`

	VaraResponsavel *string `json:"vara_responsavel,omitempty"`
	JuizResponsavel *string `json:"juiz_responsavel,omitempty"`
	UnidadeOrigem   *string `json:"unidade_origem,omitempty"`
	Ala             *string `gorm:"type:varchar(50)" json:"ala,omitempty"`
	Cela            *string `gorm:"type:varchar(50)" json:"cela,omitempty"`
	Observacoes     *string `gorm:"type:text" json:"observacoes,omitempty"`

	CadastradoPor *string   `gorm:"type:varchar(36)" json:"cadastrado_por,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Presidiario) TableName() string { return "presidiarios" }
