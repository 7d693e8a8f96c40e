package wire

import (
	"net/http"

	"farm-visit/internal/adaptor"
	"farm-visit/internal/data/repository"
	"farm-visit/internal/notify"
	"farm-visit/internal/usecase"
	"farm-visit/pkg/middleware"
	"farm-visit/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, notifier notify.Notifier, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, notifier, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireSlot(r, handler.Slot, repo, logger)
	wireVisitRequest(r, handler.VisitRequest, repo, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", nil)
	})

	return r
}
