package repository

import (
	"errors"
	"log"
	"time"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"gorm.io/gorm"
)

type OcorrenciaRepository interface {
	Create(o *domain.Ocorrencia) error
	ListByPresidiario(idPresidiario uint) ([]domain.Ocorrencia, error)
	ListRecentes() ([]domain.Ocorrencia, error)
	CountEntre(inicio, fim time.Time) (int64, error)
}

type ocorrenciaRepository struct {
	db *gorm.DB
}

func NewOcorrenciaRepository(db *gorm.DB) OcorrenciaRepository {
	return &ocorrenciaRepository{db: db}
}

func (r *ocorrenciaRepository) Create(o *domain.Ocorrencia) error {
	if o == nil {
		return errors.New("nil ocorrencia")
	}

	if err := r.db.Create(o).Error; err != nil {
		log.Printf("create ocorrencia error: %v", err)
		return errors.New("failed to create ocorrencia")
	}
	return nil
}

func (r *ocorrenciaRepository) ListByPresidiario(idPresidiario uint) ([]domain.Ocorrencia, error) {
	var out []domain.Ocorrencia
	err := r.db.
		Where("id_presidiario = ?", idPresidiario).
		Order("data_ocorrencia DESC, id_ocorrencia ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ocorrenciaRepository) ListRecentes() ([]domain.Ocorrencia, error) {
	var out []domain.Ocorrencia
	err := r.db.
		Preload("Presidiario").
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ocorrenciaRepository) CountEntre(inicio, fim time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Ocorrencia{}).
		Where("data_ocorrencia >= ? AND data_ocorrencia <= ?", inicio, fim).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
