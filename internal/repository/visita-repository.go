package repository

import (
	"errors"
	"log"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"gorm.io/gorm"
)

type VisitaRepository interface {
	Create(v *domain.Visita) error
	ListByPresidiario(idPresidiario uint) ([]domain.Visita, error)
	ListRecentes() ([]domain.Visita, error)
}

type visitaRepository struct {
	db *gorm.DB
}

func NewVisitaRepository(db *gorm.DB) VisitaRepository {
	return &visitaRepository{db: db}
}

func (r *visitaRepository) Create(v *domain.Visita) error {
	if v == nil {
		return errors.New("nil visita")
	}

	if err := r.db.Create(v).Error; err != nil {
		log.Printf("create visita error: %v", err)
		return errors.New("failed to create visita")
	}
	return nil
}

func (r *visitaRepository) ListByPresidiario(idPresidiario uint) ([]domain.Visita, error) {
	var out []domain.Visita
	err := r.db.
		Where("id_presidiario = ?", idPresidiario).
		Order("data_visita DESC, id_visita ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *visitaRepository) ListRecentes() ([]domain.Visita, error) {
	var out []domain.Visita
	err := r.db.
		Preload("Presidiario").
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
