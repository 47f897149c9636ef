package services

import (
	"time"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"github.com/bepp-pmpa/sigpen-backend/internal/repository"
)

type fakePresidiarioRepo struct {
	byID       map[uint]*domain.Presidiario
	findErr    error
	created    []*domain.Presidiario
	saved      []*domain.Presidiario
	recentes   []domain.Presidiario
	ordenado   []domain.Presidiario
	comSoltura []domain.Presidiario
	listErr    error

	total      int64
	totalErr   error
	soltura    int64
	solturaErr error

	solturaInicio time.Time
	solturaFim    time.Time
}

func (f *fakePresidiarioRepo) Create(p *domain.Presidiario) (*domain.Presidiario, error) {
	p.IDPresidiario = uint(len(f.created) + 1)
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakePresidiarioRepo) Save(p *domain.Presidiario) error {
	f.saved = append(f.saved, p)
	return nil
}

func (f *fakePresidiarioRepo) FindByID(id uint) (*domain.Presidiario, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	p, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakePresidiarioRepo) ListRecentes() ([]domain.Presidiario, error) {
	return f.recentes, f.listErr
}

func (f *fakePresidiarioRepo) Search(term string) ([]domain.Presidiario, error) {
	return f.recentes, f.listErr
}

func (f *fakePresidiarioRepo) CountTotal() (int64, error) {
	return f.total, f.totalErr
}

func (f *fakePresidiarioRepo) CountSolturaEntre(inicio, fim time.Time) (int64, error) {
	f.solturaInicio, f.solturaFim = inicio, fim
	return f.soltura, f.solturaErr
}

func (f *fakePresidiarioRepo) ListOrdenado(coluna string) ([]domain.Presidiario, error) {
	return f.ordenado, f.listErr
}

func (f *fakePresidiarioRepo) ListComSolturaPrevista() ([]domain.Presidiario, error) {
	return f.comSoltura, f.listErr
}

type fakeTransferenciaRepo struct {
	items []domain.Transferencia
	err   error
	calls int
}

func (f *fakeTransferenciaRepo) Create(t *domain.Transferencia) error {
	f.items = append(f.items, *t)
	return f.err
}

func (f *fakeTransferenciaRepo) ListByPresidiario(id uint) ([]domain.Transferencia, error) {
	f.calls++
	return f.items, f.err
}

func (f *fakeTransferenciaRepo) ListRecentes() ([]domain.Transferencia, error) {
	return f.items, f.err
}

type fakeOcorrenciaRepo struct {
	items []domain.Ocorrencia
	err   error
	calls int

	count       int64
	countErr    error
	countInicio time.Time
	countFim    time.Time
}

func (f *fakeOcorrenciaRepo) Create(o *domain.Ocorrencia) error {
	f.items = append(f.items, *o)
	return f.err
}

func (f *fakeOcorrenciaRepo) ListByPresidiario(id uint) ([]domain.Ocorrencia, error) {
	f.calls++
	return f.items, f.err
}

func (f *fakeOcorrenciaRepo) ListRecentes() ([]domain.Ocorrencia, error) {
	return f.items, f.err
}

func (f *fakeOcorrenciaRepo) CountEntre(inicio, fim time.Time) (int64, error) {
	f.countInicio, f.countFim = inicio, fim
	return f.count, f.countErr
}

type fakeSaudeRepo struct {
	items []domain.SaudePsicologia
	err   error
	calls int

	count    int64
	countErr error
}

func (f *fakeSaudeRepo) Create(s *domain.SaudePsicologia) error {
	f.items = append(f.items, *s)
	return f.err
}

func (f *fakeSaudeRepo) ListByPresidiario(id uint) ([]domain.SaudePsicologia, error) {
	f.calls++
	return f.items, f.err
}

func (f *fakeSaudeRepo) ListRecentes() ([]domain.SaudePsicologia, error) {
	return f.items, f.err
}

func (f *fakeSaudeRepo) CountRiscoSuicidio() (int64, error) {
	return f.count, f.countErr
}

type fakeVisitaRepo struct {
	items []domain.Visita
	err   error
	calls int
}

func (f *fakeVisitaRepo) Create(v *domain.Visita) error {
	f.items = append(f.items, *v)
	return f.err
}

func (f *fakeVisitaRepo) ListByPresidiario(id uint) ([]domain.Visita, error) {
	f.calls++
	return f.items, f.err
}

func (f *fakeVisitaRepo) ListRecentes() ([]domain.Visita, error) {
	return f.items, f.err
}

type fakeProfileRepo struct {
	byID    map[string]*domain.Profile
	byEmail map[string]*domain.Profile
	roles   map[string][]domain.UserRole

	rolesErr  error
	createErr error
	created   []*domain.Profile
	listed    []domain.Profile
}

func (f *fakeProfileRepo) CreateWithRole(p *domain.Profile, role string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProfileRepo) FindByEmail(email string) (*domain.Profile, error) {
	p, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) FindByID(id string) (*domain.Profile, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) List() ([]domain.Profile, error) {
	return f.listed, nil
}

func (f *fakeProfileRepo) SetUltimoLogin(id string, quando time.Time) error {
	return nil
}

func (f *fakeProfileRepo) RolesByUserID(id string) ([]domain.UserRole, error) {
	if f.rolesErr != nil {
		return nil, f.rolesErr
	}
	return f.roles[id], nil
}

func noopAudit() *AuditTrail {
	return NewAuditTrail(nil, nil)
}
