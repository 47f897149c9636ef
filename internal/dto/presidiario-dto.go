package dto

// PresidiarioRequest mirrors the cadastro form. Date fields arrive as
// "2006-01-02" strings; empty strings are stored as NULL.
type PresidiarioRequest struct {
	NomeCompleto   string `json:"nome_completo"`
	Apelido        string `json:"apelido"`
	CPF            string `json:"cpf"`
	RG             string `json:"rg"`
	DataNascimento string `json:"data_nascimento"`
	Naturalidade   string `json:"naturalidade"`
	EstadoCivil    string `json:"estado_civil"`
	FiliacaoPai    string `json:"filiacao_pai"`
	FiliacaoMae    string `json:"filiacao_mae"`
	Religiao       string `json:"religiao"`

	ProcessoNumero []string `json:"processo_numero"`
	Crime          []string `json:"crime"`
	PenaTotal      string   `json:"pena_total"`

	DataPrisao          string `json:"data_prisao"`
	DataPrevistaSoltura string `json:"data_prevista_soltura"`
	Regime              string `json:"regime"`
	Situacao            string `json:"situacao"`

	VaraResponsavel string `json:"vara_responsavel"`
	JuizResponsavel string `json:"juiz_responsavel"`
	UnidadeOrigem   string `json:"unidade_origem"`
	Ala             string `json:"ala"`
	Cela            string `json:"cela"`
	Observacoes     string `json:"observacoes"`
}
