package dto

// DashboardStats holds the four painel geral counters. Each is computed by
// an independent count; a failed count shows as zero.
type DashboardStats struct {
	Total        int64 `json:"total"`
	ProximosSair int64 `json:"proximos_sair"`
	Ocorrencias  int64 `json:"ocorrencias"`
	CasosMedicos int64 `json:"casos_medicos"`
}
