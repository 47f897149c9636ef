package dto

type TransferenciaRequest struct {
	IDPresidiario     uint   `json:"id_presidiario"`
	UnidadeOrigem     string `json:"unidade_origem"`
	UnidadeDestino    string `json:"unidade_destino"`
	Motivo            string `json:"motivo"`
	DataTransferencia string `json:"data_transferencia"`
}

type OcorrenciaRequest struct {
	IDPresidiario  uint   `json:"id_presidiario"`
	Tipo           string `json:"tipo"`
	Descricao      string `json:"descricao"`
	DataOcorrencia string `json:"data_ocorrencia"`
}

type SaudeRequest struct {
	IDPresidiario          uint   `json:"id_presidiario"`
	CondicoesSaude         string `json:"condicoes_saude"`
	Medicamentos           string `json:"medicamentos"`
	AvaliacoesPsicologicas string `json:"avaliacoes_psicologicas"`
	Observacoes            string `json:"observacoes"`
	RiscoSuicidio          bool   `json:"risco_suicidio"`
	DataAtualizacao        string `json:"data_atualizacao"`
}

type VisitaRequest struct {
	IDPresidiario      uint   `json:"id_presidiario"`
	NomeVisitante      string `json:"nome_visitante"`
	Parentesco         string `json:"parentesco"`
	DocumentoVisitante string `json:"documento_visitante"`
	Observacoes        string `json:"observacoes"`
	DataVisita         string `json:"data_visita"`
}
