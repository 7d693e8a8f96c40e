package wire

import (
	"farm-visit/internal/adaptor"
	"farm-visit/internal/data/entity"
	"farm-visit/internal/data/repository"
	"farm-visit/pkg/middleware"
	"farm-visit/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVisitRequest(
	r chi.Router,
	visitHandler *adaptor.VisitRequestHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	limiter := middleware.NewIPRateLimiter(config.RateLimit.SubmitPerSecond, config.RateLimit.SubmitBurst)

	// ==================== SUBMISSION (guest or authenticated) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(limiter, log))
		r.Use(middleware.OptionalAuth(repo.Session, log))

		r.Post("/api/visit-requests", visitHandler.Submit)
	})

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/api/user/visit-requests", visitHandler.ListMine)
		r.Get("/api/visit-requests/{id}", visitHandler.Get)
		r.Post("/api/visit-requests/{id}/decision", visitHandler.Decide)
	})

	// ==================== SELLER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.RequireRole(log, entity.RoleSeller))

		r.Get("/api/seller/visit-requests", visitHandler.ListForSeller)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.RequireRole(log, entity.RoleAdmin, entity.RoleSuperadmin))

		r.Get("/sellers/{sellerID}/visit-requests", visitHandler.ListBySeller)
		r.Post("/visit-requests/{id}/override", visitHandler.Override)
	})
}
