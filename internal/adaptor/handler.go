package adaptor

import (
	"farm-visit/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Slot         *SlotHandler
	VisitRequest *VisitRequestHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Slot:         NewSlotHandler(service.Reservation, log),
		VisitRequest: NewVisitRequestHandler(service.Reservation, log),
	}
}
