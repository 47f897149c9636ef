package dto

import "github.com/bepp-pmpa/sigpen-backend/internal/domain"

// FichaResponse is the consolidated detail view: the presidiario plus the
// four related histories, each newest first. Any history slice may be empty.
type FichaResponse struct {
	Presidiario    *domain.Presidiario      `json:"presidiario"`
	Transferencias []domain.Transferencia   `json:"transferencias"`
	Ocorrencias    []domain.Ocorrencia      `json:"ocorrencias"`
	Saude          []domain.SaudePsicologia `json:"saude"`
	Visitas        []domain.Visita          `json:"visitas"`
}
