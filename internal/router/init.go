package router

import (
	"github.com/stocknest/backend/internal/application"
	"github.com/stocknest/backend/internal/container"
	pginfra "github.com/stocknest/backend/internal/infrastructure/postgres"
	handlers "github.com/stocknest/backend/internal/interface/http"
	"github.com/stocknest/backend/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	pool := container.GetPGPool()
	logger := container.GetLogger()

	accountSvc := application.NewAccountService(
		pginfra.NewUserRepository(pool),
		container.GetJWT(),
		container.GetRedis(),
		logger,
	)
	stockSvc := application.NewStockService(pginfra.NewStockRepository(pool))
	portfolioSvc := application.NewPortfolioService(
		pginfra.NewPortfolioRepository(pool),
		container.GetRabbitPub(),
		logger,
	)

	userHandler := handlers.NewUserHandler(accountSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	stockHandler := handlers.NewStockHandler(stockSvc, logger)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioSvc, logger)

	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewStockModule(stockHandler))
	r.Add(modules.NewPortfolioModule(portfolioHandler))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
