package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"gestao_reparos/internal/adapter/http/handlers"
	"gestao_reparos/internal/adapter/http/routes"
	"gestao_reparos/internal/adapter/persistence/memory"
	"gestao_reparos/internal/adapter/persistence/repository"
	"gestao_reparos/internal/config"
	"gestao_reparos/internal/infrastructure/cache"
	"gestao_reparos/internal/infrastructure/database"
	"gestao_reparos/internal/infrastructure/seed"
	"gestao_reparos/internal/usecase"
	"gestao_reparos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

// App owns the configured store, the optional Redis client and the use cases
// built on top of them.
type App struct {
	cfg   config.Config
	redis *redis.Client

	Quotes    *usecase.QuoteUseCase
	Services  *usecase.ServiceUseCase
	Finance   *usecase.FinanceUseCase
	Dashboard *usecase.DashboardUseCase
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{cfg: cfg}

	repos, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var quoteCache interfaces.IQuoteListCache
	if cfg.Redis.Enabled() {
		rdb, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.redis = rdb
		quoteCache = cache.NewQuoteListCache(rdb, cfg.Redis.DefaultTTL.Duration())
		log.Printf("[app] quote list cache enabled addr=%s ttl=%s", cfg.Redis.Addr, cfg.Redis.DefaultTTL.Duration())
	}

	if cfg.App.SeedDemoData {
		if err := seed.Load(ctx, repos); err != nil {
			a.Close()
			return nil, err
		}
	}

	a.Quotes = usecase.NewQuoteUseCase(repos.Quotes, repos.Services, quoteCache).
		WithDefaultDeadlineDays(cfg.App.DefaultDeadlineDays)
	a.Services = usecase.NewServiceUseCase(repos.Services, repos.FinishedServices)
	a.Finance = usecase.NewFinanceUseCase(repos.FinishedServices, repos.Expenses)
	a.Dashboard = usecase.NewDashboardUseCase(repos.Quotes, repos.Services, repos.FinishedServices, cfg.App.DashboardMonths)
	return a, nil
}

func openStore(ctx context.Context, cfg config.Config) (seed.Repositories, error) {
	switch cfg.Store.Backend {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
		if err != nil {
			return seed.Repositories{}, err
		}
		if cfg.Dynamo.Endpoint != "" {
			// Local DynamoDB starts empty; real deployments provision tables up front.
			if err := database.EnsureTables(ctx, ddb, database.TableNames(cfg.Dynamo)...); err != nil {
				return seed.Repositories{}, err
			}
		}
		log.Printf("[app] store=dynamodb region=%s", cfg.Dynamo.Region)
		return seed.Repositories{
			Quotes:           repository.NewQuoteDynamoRepository(ddb, cfg.Dynamo.QuotesTable),
			Services:         repository.NewServiceDynamoRepository(ddb, cfg.Dynamo.ServicesTable),
			FinishedServices: repository.NewFinishedServiceDynamoRepository(ddb, cfg.Dynamo.FinishedServicesTable),
			Expenses:         repository.NewExpenseDynamoRepository(ddb, cfg.Dynamo.ExpensesTable),
		}, nil
	case config.StoreMemory:
		log.Printf("[app] store=memory")
		store := memory.NewStore()
		return seed.Repositories{
			Quotes:           store.Quotes(),
			Services:         store.Services(),
			FinishedServices: store.FinishedServices(),
			Expenses:         store.Expenses(),
		}, nil
	default:
		return seed.Repositories{}, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// Router builds the HTTP router over the app's use cases.
func (a *App) Router() *gin.Engine {
	return routes.NewRouter(a.cfg, routes.Handlers{
		Quotes:    handlers.NewQuoteHandler(a.Quotes),
		Services:  handlers.NewServiceHandler(a.Services),
		Finance:   handlers.NewFinanceHandler(a.Finance),
		Dashboard: handlers.NewDashboardHandler(a.Dashboard),
	})
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully.
func (a *App) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:         "0.0.0.0:" + a.cfg.HTTP.Port,
		Handler:      a.Router(),
		ReadTimeout:  a.cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: a.cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  a.cfg.HTTP.IdleTimeout.Duration(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Printf("HTTP server shutting down")
	return server.Shutdown(shutdownCtx)
}

func (a *App) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
}
