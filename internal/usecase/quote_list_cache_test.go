package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"gestao_reparos/internal/adapter/persistence/memory"
	"gestao_reparos/internal/domain/entities"
	"gestao_reparos/internal/infrastructure/cache"
	"gestao_reparos/internal/usecase/interfaces"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// slowListRepo holds the first List call after it has read the store, until
// resume is closed.
type slowListRepo struct {
	interfaces.IQuoteRepository
	once   sync.Once
	read   chan struct{}
	resume chan struct{}
}

func (r *slowListRepo) List(ctx context.Context) ([]entities.Quote, error) {
	list, err := r.IQuoteRepository.List(ctx)
	r.once.Do(func() {
		close(r.read)
		<-r.resume
	})
	return list, err
}

func TestQuoteUseCase_ListQuotes_WriteDuringCacheFill(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := memory.NewStore()
	repo := &slowListRepo{IQuoteRepository: store.Quotes(), read: make(chan struct{}), resume: make(chan struct{})}
	uc := NewQuoteUseCase(repo, store.Services(), cache.NewQuoteListCache(rdb, time.Minute))

	type result struct {
		list []entities.Quote
		err  error
	}
	done := make(chan result, 1)
	go func() {
		list, err := uc.ListQuotes(ctx)
		done <- result{list, err}
	}()

	<-repo.read
	created, err := uc.CreateQuote(ctx, validQuoteInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	close(repo.resume)

	first := <-done
	if first.err != nil || len(first.list) != 0 {
		t.Fatalf("expected the in-flight listing to predate the write, got %+v %v", first.list, first.err)
	}

	list, err := uc.ListQuotes(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("created quote %s missing from listing: %+v", created.ID, list)
	}

	// the fresh listing is cached now and served without the repository
	again, err := uc.ListQuotes(ctx)
	if err != nil || len(again) != 1 || again[0].ID != created.ID {
		t.Fatalf("unexpected cached listing: %+v %v", again, err)
	}
}

func TestQuoteUseCase_ListQuotes_CachedAcrossTransitions(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := memory.NewStore()
	uc := NewQuoteUseCase(store.Quotes(), store.Services(), cache.NewQuoteListCache(rdb, time.Minute)).WithClock(fixedClock)

	q, err := uc.CreateQuote(ctx, validQuoteInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if list, _ := uc.ListQuotes(ctx); len(list) != 1 || list[0].Status != entities.QuoteStatusPendente {
		t.Fatalf("unexpected listing: %+v", list)
	}

	if _, err := uc.RejectQuote(ctx, q.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}
	list, err := uc.ListQuotes(ctx)
	if err != nil || len(list) != 1 || list[0].Status != entities.QuoteStatusRecusado {
		t.Fatalf("expected recusado after reject, got %+v %v", list, err)
	}
	if !list[0].UpdatedAt.Equal(fixedNow) {
		t.Fatalf("expected updated_at from the use case clock, got %v", list[0].UpdatedAt)
	}
}
