package services

import (
	"encoding/json"
	"log"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"github.com/bepp-pmpa/sigpen-backend/internal/interfaces"
	"github.com/bepp-pmpa/sigpen-backend/internal/repository"
)

// AuditTrail writes logs_sistema rows and mirrors each entry to the broker.
// Both sinks are best-effort: an audit failure never fails the operation
// being audited.
type AuditTrail struct {
	logs     repository.LogRepository
	producer interfaces.ProducerHandler
}

func NewAuditTrail(logs repository.LogRepository, producer interfaces.ProducerHandler) *AuditTrail {
	return &AuditTrail{
		logs:     logs,
		producer: producer,
	}
}

func (a *AuditTrail) Record(userID, acao, ipOrigem string, detalhes map[string]interface{}) {
	if a == nil {
		return
	}

	var detalhesJSON *string
	if len(detalhes) > 0 {
		if raw, err := json.Marshal(detalhes); err == nil {
			s := string(raw)
			detalhesJSON = &s
		}
	}

	entry := &domain.LogSistema{
		Acao:     acao,
		Detalhes: detalhesJSON,
	}
	if userID != "" {
		entry.UserID = &userID
	}
	if ipOrigem != "" {
		entry.IPOrigem = &ipOrigem
	}

	if a.logs != nil {
		if err := a.logs.Create(entry); err != nil {
			log.Printf("audit log write failed: %v", err)
		}
	}

	if a.producer != nil {
		payload, err := json.Marshal(entry)
		if err != nil {
			return
		}
		if err := a.producer.PublishMessage([]byte(acao), payload); err != nil {
			log.Printf("audit event publish failed: %v", err)
		}
	}
}
