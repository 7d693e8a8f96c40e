package adaptor

import (
	"encoding/json"
	"net/http"

	"farm-visit/internal/dto/request"
	"farm-visit/internal/usecase"
	"farm-visit/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SlotHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewSlotHandler(service usecase.ReservationService, log *zap.Logger) *SlotHandler {
	return &SlotHandler{
		service: service,
		log:     log.With(zap.String("handler", "slot")),
	}
}

func parseListSlots(r *http.Request) *request.ListSlotsRequest {
	query := r.URL.Query()
	return &request.ListSlotsRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
		DateFrom:      query.Get("date_from"),
		DateTo:        query.Get("date_to"),
		VisitType:     query.Get("visit_type"),
		OnlyAvailable: utils.ParseBool(query.Get("available"), false),
		IncludePast:   utils.ParseBool(query.Get("include_past"), false),
	}
}

// ListSlots handles GET /api/slots (public)
func (h *SlotHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	req := parseListSlots(r)
	req.SellerID = r.URL.Query().Get("seller_id")

	slots, err := h.service.ListSlots(r.Context(), utils.GetActorFromContext(r.Context()), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// ListFarmSlots handles GET /api/farms/{sellerID}/slots (public)
func (h *SlotHandler) ListFarmSlots(w http.ResponseWriter, r *http.Request) {
	req := parseListSlots(r)
	req.SellerID = chi.URLParam(r, "sellerID")

	slots, err := h.service.ListSlots(r.Context(), utils.GetActorFromContext(r.Context()), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list farm slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// GetSlot handles GET /api/slots/{id} (public)
func (h *SlotHandler) GetSlot(w http.ResponseWriter, r *http.Request) {
	slot, err := h.service.GetSlot(r.Context(), utils.GetActorFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get slot")
		return
	}

	utils.ResponseSuccess(w, "success", slot)
}

// CreateSlot handles POST /api/seller/slots (seller, admin)
func (h *SlotHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slot, err := h.service.CreateSlot(r.Context(), utils.GetActorFromContext(r.Context()), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create slot")
		return
	}

	utils.ResponseCreated(w, "Slot created", slot)
}

// UpdateSlot handles PUT /api/seller/slots/{id} (owner, admin)
func (h *SlotHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slot, err := h.service.UpdateSlot(r.Context(), utils.GetActorFromContext(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update slot")
		return
	}

	utils.ResponseSuccess(w, "Slot updated", slot)
}

// DeleteSlot handles DELETE /api/seller/slots/{id}?cascade=true (owner, admin)
func (h *SlotHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	cascade := utils.ParseBool(r.URL.Query().Get("cascade"), false)

	err := h.service.DeleteSlot(r.Context(), utils.GetActorFromContext(r.Context()), chi.URLParam(r, "id"), cascade)
	if err != nil {
		handleServiceError(h.log, w, err, "delete slot")
		return
	}

	utils.ResponseSuccess(w, "Slot deleted", nil)
}

// SlotLedger handles GET /api/seller/slots/{id}/ledger (owner, admin)
func (h *SlotHandler) SlotLedger(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.service.SlotLedger(r.Context(), utils.GetActorFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "slot ledger")
		return
	}

	utils.ResponseSuccess(w, "success", ledger)
}
