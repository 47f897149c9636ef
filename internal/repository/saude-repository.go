package repository

import (
	"errors"
	"log"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"gorm.io/gorm"
)

type SaudeRepository interface {
	Create(s *domain.SaudePsicologia) error
	ListByPresidiario(idPresidiario uint) ([]domain.SaudePsicologia, error)
	ListRecentes() ([]domain.SaudePsicologia, error)
	CountRiscoSuicidio() (int64, error)
}

type saudeRepository struct {
	db *gorm.DB
}

func NewSaudeRepository(db *gorm.DB) SaudeRepository {
	return &saudeRepository{db: db}
}

func (r *saudeRepository) Create(s *domain.SaudePsicologia) error {
	if s == nil {
		return errors.New("nil registro de saude")
	}

	if err := r.db.Create(s).Error; err != nil {
		log.Printf("create registro de saude error: %v", err)
		return errors.New("failed to create registro de saude")
	}
	return nil
}

func (r *saudeRepository) ListByPresidiario(idPresidiario uint) ([]domain.SaudePsicologia, error) {
	var out []domain.SaudePsicologia
	err := r.db.
		Where("id_presidiario = ?", idPresidiario).
		Order("data_atualizacao DESC, id_registro ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *saudeRepository) ListRecentes() ([]domain.SaudePsicologia, error) {
	var out []domain.SaudePsicologia
	err := r.db.
		Preload("Presidiario").
		Order("data_atualizacao DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *saudeRepository) CountRiscoSuicidio() (int64, error) {
	var count int64
	err := r.db.Model(&domain.SaudePsicologia{}).
		Where("risco_suicidio = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
