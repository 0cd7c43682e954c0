package router

import (
	"github.com/oktarian/shopstock/internal/application"
	"github.com/oktarian/shopstock/internal/container"
	mongoinfra "github.com/oktarian/shopstock/internal/infrastructure/mongodb"
	pginfra "github.com/oktarian/shopstock/internal/infrastructure/postgres"
	handlers "github.com/oktarian/shopstock/internal/interface/http"
	"github.com/oktarian/shopstock/internal/router/modules"
	"github.com/oktarian/shopstock/pkg/helpers"
)

func buildAuditRepo() *pginfra.AuditRepository {
	pool := container.GetAuditPool()
	if pool == nil {
		return nil
	}
	return pginfra.NewAuditRepository(pool)
}

func buildAuthHandler(audit *pginfra.AuditRepository) *handlers.AuthHandler {
	cfg := container.GetConfig()
	repo := mongoinfra.NewUserRepository(container.GetMongoDB(), cfg.MongoUsersColl)
	svc := application.NewAuthService(
		repo,
		helpers.MatcherForScheme(cfg.CredentialScheme),
		container.GetLogger(),
	)
	return handlers.NewAuthHandler(svc, audit, container.GetLogger())
}

func buildProductHandler(audit *pginfra.AuditRepository) *handlers.ProductHandler {
	cfg := container.GetConfig()
	repo := mongoinfra.NewProductRepository(container.GetMongoDB(), cfg.MongoProductsColl)
	svc := application.NewProductService(
		repo,
		container.GetRedis(),
		container.GetRabbitPub(),
		container.GetES(),
		cfg.ESProductsIndex,
		container.GetLogger(),
		cfg.ProductCacheTTL,
	)
	return handlers.NewProductHandler(svc, audit, container.GetLogger())
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	audit := buildAuditRepo()
	r.Add(modules.NewAuthModule(buildAuthHandler(audit)))
	r.Add(modules.NewProductModule(buildProductHandler(audit)))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
