package services

import (
	"context"
	"log"
	"time"

	"github.com/bepp-pmpa/sigpen-backend/internal/dto"
	"github.com/bepp-pmpa/sigpen-backend/internal/repository"
	"golang.org/x/sync/errgroup"
)

type StatsService interface {
	Dashboard(ctx context.Context) dto.DashboardStats
}

type statsService struct {
	presidiarios repository.PresidiarioRepository
	ocorrencias  repository.OcorrenciaRepository
	saude        repository.SaudeRepository
	now          func() time.Time
}

func NewStatsService(
	presidiarios repository.PresidiarioRepository,
	ocorrencias repository.OcorrenciaRepository,
	saude repository.SaudeRepository,
) StatsService {
	return &statsService{
		presidiarios: presidiarios,
		ocorrencias:  ocorrencias,
		saude:        saude,
		now:          time.Now,
	}
}

// Dashboard gathers the four home-screen counters concurrently. Each counter
// is independent: one failing query zeroes its own card and nothing else.
func (s *statsService) Dashboard(ctx context.Context) dto.DashboardStats {
	hoje := dateOnly(s.now())
	stats := dto.DashboardStats{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.presidiarios.CountTotal()
		if err != nil {
			log.Printf("dashboard: total count failed: %v", err)
			return nil
		}
		stats.Total = n
		return nil
	})
	g.Go(func() error {
		n, err := s.presidiarios.CountSolturaEntre(hoje, hoje.AddDate(0, 0, 30))
		if err != nil {
			log.Printf("dashboard: soltura count failed: %v", err)
			return nil
		}
		stats.ProximosSair = n
		return nil
	})
	g.Go(func() error {
		n, err := s.ocorrencias.CountEntre(hoje.AddDate(0, 0, -7), hoje)
		if err != nil {
			log.Printf("dashboard: ocorrencias count failed: %v", err)
			return nil
		}
		stats.Ocorrencias = n
		return nil
	})
	g.Go(func() error {
		n, err := s.saude.CountRiscoSuicidio()
		if err != nil {
			log.Printf("dashboard: risco suicidio count failed: %v", err)
			return nil
		}
		stats.CasosMedicos = n
		return nil
	})
	g.Wait()

	return stats
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
