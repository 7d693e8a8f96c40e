package usecase

import (
	"farm-visit/internal/data/repository"
	"farm-visit/internal/notify"

	"go.uber.org/zap"
)

type Service struct {
	Reservation ReservationService
}

func NewService(repo *repository.Repository, notifier notify.Notifier, log *zap.Logger) *Service {
	return &Service{
		Reservation: NewReservationService(repo, notifier, log),
	}
}
