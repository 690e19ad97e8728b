package usecase

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"gestao_reparos/internal/domain/entities"
	"gestao_reparos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// DefaultDeadlineDays is used when a quote is accepted without a deadline.
const DefaultDeadlineDays = 30

// CreateQuoteInput carries the raw form fields of a new quote.
type CreateQuoteInput struct {
	ClientName  string
	Address     string
	ServiceType string
	Value       string
}

// IQuoteUseCase exposes the quote registry.
//
//   - "Novo Orçamento" => CreateQuote()
//   - "Aceitar" => AcceptQuote(), which opens an in-progress service
//   - "Recusar" => RejectQuote()

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error)
	AcceptQuote(ctx context.Context, id string, deadline time.Time) (entities.Service, error)
	RejectQuote(ctx context.Context, id string) (entities.Quote, error)
	ListQuotes(ctx context.Context) ([]entities.Quote, error)
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo         interfaces.IQuoteRepository
	serviceRepo  interfaces.IServiceRepository
	cache        interfaces.IQuoteListCache
	sf           singleflight.Group
	now          func() time.Time
	deadlineDays int
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase creates a QuoteUseCase. cache may be nil.
func NewQuoteUseCase(repo interfaces.IQuoteRepository, serviceRepo interfaces.IServiceRepository, cache interfaces.IQuoteListCache) *QuoteUseCase {
	return &QuoteUseCase{
		repo:         repo,
		serviceRepo:  serviceRepo,
		cache:        cache,
		now:          utcNow,
		deadlineDays: DefaultDeadlineDays,
	}
}

func (u *QuoteUseCase) WithClock(now func() time.Time) *QuoteUseCase {
	u.now = now
	return u
}

func (u *QuoteUseCase) WithDefaultDeadlineDays(days int) *QuoteUseCase {
	if days > 0 {
		u.deadlineDays = days
	}
	return u
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	clientName, err := requireText("client_name", in.ClientName)
	if err != nil {
		return entities.Quote{}, err
	}
	address, err := requireText("address", in.Address)
	if err != nil {
		return entities.Quote{}, err
	}
	rawType, err := requireText("service_type", in.ServiceType)
	if err != nil {
		return entities.Quote{}, err
	}
	serviceType := entities.ServiceType(strings.ToLower(rawType))
	if !serviceType.Valid() {
		return entities.Quote{}, &ValidationError{Field: "service_type", Reason: "must be reparo or pintura"}
	}
	value, err := parseAmount("value", in.Value)
	if err != nil {
		return entities.Quote{}, err
	}

	now := u.now()
	q := entities.Quote{
		ID:          uuid.NewString(),
		ClientName:  clientName,
		Address:     address,
		ServiceType: serviceType,
		Value:       value,
		Status:      entities.QuoteStatusPendente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] create failed client=%q err=%v", clientName, err)
		return entities.Quote{}, err
	}
	u.invalidateCache(ctx)
	log.Printf("[quote][usecase] created quote_id=%s type=%s value=%.2f", created.ID, created.ServiceType, created.Value)
	return created, nil
}

// AcceptQuote moves a pending quote to aceito and opens its service.
// A zero deadline means now + the default deadline window.
func (u *QuoteUseCase) AcceptQuote(ctx context.Context, id string, deadline time.Time) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, &ValidationError{Field: "id", Reason: "required"}
	}

	q, err := u.transition(ctx, id, entities.QuoteStatusAceito)
	if err != nil {
		return entities.Service{}, err
	}

	now := u.now()
	if deadline.IsZero() {
		deadline = now.AddDate(0, 0, u.deadlineDays)
	}
	svc := entities.NewServiceFromQuote(uuid.NewString(), q, now, deadline.UTC())
	created, err := u.serviceRepo.Create(ctx, svc)
	if err != nil {
		log.Printf("[quote][usecase] service create failed quote_id=%s err=%v; reverting quote", id, err)
		if _, _, rErr := u.repo.TransitionStatus(ctx, id, entities.QuoteStatusAceito, entities.QuoteStatusPendente, u.now()); rErr != nil {
			log.Printf("[quote][usecase] revert failed quote_id=%s err=%v", id, rErr)
		}
		u.invalidateCache(ctx)
		return entities.Service{}, err
	}
	log.Printf("[quote][usecase] accepted quote_id=%s service_id=%s deadline=%s", id, created.ID, created.Deadline.Format(time.DateOnly))
	return created, nil
}

func (u *QuoteUseCase) RejectQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, &ValidationError{Field: "id", Reason: "required"}
	}
	q, err := u.transition(ctx, id, entities.QuoteStatusRecusado)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] rejected quote_id=%s", id)
	return q, nil
}

func (u *QuoteUseCase) transition(ctx context.Context, id string, to entities.QuoteStatus) (entities.Quote, error) {
	q, ok, err := u.repo.TransitionStatus(ctx, id, entities.QuoteStatusPendente, to, u.now())
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, &NotFoundError{Entity: "quote", ID: id}
	}
	if !ok {
		return entities.Quote{}, &InvalidTransitionError{
			Entity:   "quote",
			ID:       id,
			Expected: string(entities.QuoteStatusPendente),
			Actual:   string(q.Status),
		}
	}
	u.invalidateCache(ctx)
	return q, nil
}

// ListQuotes returns every quote, newest first.
//
// The cache generation is read before the repository, and concurrent callers
// only share a load started under the same generation, so a quote written
// before this call is never hidden by an older listing.
func (u *QuoteUseCase) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	if u.cache == nil {
		return u.repo.List(ctx)
	}
	if list, err := u.cache.GetList(ctx); err == nil && list != nil {
		return list, nil
	}
	gen, err := u.cache.Generation(ctx)
	if err != nil {
		log.Printf("[quote][usecase] cache generation failed err=%v", err)
		return u.repo.List(ctx)
	}

	v, err, _ := u.sf.Do("quotes:list:"+strconv.FormatInt(gen, 10), func() (interface{}, error) {
		list, err := u.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		if err := u.cache.SetList(ctx, gen, list); err != nil {
			log.Printf("[quote][usecase] cache set failed err=%v", err)
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entities.Quote), nil
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, &ValidationError{Field: "id", Reason: "required"}
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, &NotFoundError{Entity: "quote", ID: id}
	}
	return q, nil
}

func (u *QuoteUseCase) invalidateCache(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx); err != nil {
		log.Printf("[quote][usecase] cache invalidate failed err=%v", err)
	}
}
