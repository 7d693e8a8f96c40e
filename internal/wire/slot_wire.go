package wire

import (
	"farm-visit/internal/adaptor"
	"farm-visit/internal/data/entity"
	"farm-visit/internal/data/repository"
	"farm-visit/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSlot(
	r chi.Router,
	slotHandler *adaptor.SlotHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// a token is optional here; owners and staff also see hidden farms
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(repo.Session, log))

		r.Get("/api/slots", slotHandler.ListSlots)
		r.Get("/api/slots/{id}", slotHandler.GetSlot)
		r.Get("/api/farms/{sellerID}/slots", slotHandler.ListFarmSlots)
	})

	// ==================== SELLER ROUTES ====================
	r.Route("/api/seller/slots", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.RequireRole(log, entity.RoleSeller, entity.RoleAdmin, entity.RoleSuperadmin))

		r.Post("/", slotHandler.CreateSlot)
		r.Put("/{id}", slotHandler.UpdateSlot)
		r.Delete("/{id}", slotHandler.DeleteSlot)
		r.Get("/{id}/ledger", slotHandler.SlotLedger)
	})
}
