package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"gestao_reparos/internal/domain/entities"
	"gestao_reparos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// TrackedService is an in-progress service with its urgency as of the call.
type TrackedService struct {
	entities.Service
	Urgency entities.Urgency `json:"urgency"`
}

// IServiceUseCase exposes the service tracker.
type IServiceUseCase interface {
	ListInProgress(ctx context.Context) ([]TrackedService, error)
	FinalizeService(ctx context.Context, id string, finishedAt time.Time) (entities.FinishedService, error)
}

type ServiceUseCase struct {
	repo         interfaces.IServiceRepository
	finishedRepo interfaces.IFinishedServiceRepository
	now          func() time.Time
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository, finishedRepo interfaces.IFinishedServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, finishedRepo: finishedRepo, now: utcNow}
}

func (u *ServiceUseCase) WithClock(now func() time.Time) *ServiceUseCase {
	u.now = now
	return u
}

// ListInProgress returns services still em_andamento. Urgency is computed
// here on every call and never persisted.
func (u *ServiceUseCase) ListInProgress(ctx context.Context) ([]TrackedService, error) {
	services, err := u.repo.ListByStatus(ctx, entities.ServiceStatusEmAndamento)
	if err != nil {
		return nil, err
	}
	now := u.now()
	out := make([]TrackedService, 0, len(services))
	for _, s := range services {
		out = append(out, TrackedService{Service: s, Urgency: entities.ComputeUrgency(s.Deadline, now)})
	}
	return out, nil
}

// FinalizeService closes an in-progress service and records its revenue.
// A zero finishedAt means now.
func (u *ServiceUseCase) FinalizeService(ctx context.Context, id string, finishedAt time.Time) (entities.FinishedService, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FinishedService{}, &ValidationError{Field: "id", Reason: "required"}
	}
	if finishedAt.IsZero() {
		finishedAt = u.now()
	}

	s, ok, err := u.repo.TransitionStatus(ctx, id, entities.ServiceStatusEmAndamento, entities.ServiceStatusFinalizado)
	if err != nil {
		return entities.FinishedService{}, err
	}
	if s.ID == "" {
		return entities.FinishedService{}, &NotFoundError{Entity: "service", ID: id}
	}
	if !ok {
		return entities.FinishedService{}, &InvalidTransitionError{
			Entity:   "service",
			ID:       id,
			Expected: string(entities.ServiceStatusEmAndamento),
			Actual:   string(s.Status),
		}
	}

	fact, err := u.finishedRepo.Create(ctx, s.Finish(uuid.NewString(), finishedAt.UTC()))
	if err != nil {
		log.Printf("[service][usecase] finished record failed service_id=%s err=%v; reverting service", id, err)
		if _, _, rErr := u.repo.TransitionStatus(ctx, id, entities.ServiceStatusFinalizado, entities.ServiceStatusEmAndamento); rErr != nil {
			log.Printf("[service][usecase] revert failed service_id=%s err=%v", id, rErr)
		}
		return entities.FinishedService{}, err
	}
	log.Printf("[service][usecase] finalized service_id=%s value=%.2f", id, fact.Value)
	return fact, nil
}
