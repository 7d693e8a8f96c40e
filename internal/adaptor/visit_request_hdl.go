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

type VisitRequestHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewVisitRequestHandler(service usecase.ReservationService, log *zap.Logger) *VisitRequestHandler {
	return &VisitRequestHandler{
		service: service,
		log:     log.With(zap.String("handler", "visit_request")),
	}
}

func parseListVisitRequests(r *http.Request) *request.ListVisitRequestsRequest {
	query := r.URL.Query()
	return &request.ListVisitRequestsRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
		Status:   query.Get("status"),
		SlotID:   query.Get("slot_id"),
		DateFrom: query.Get("date_from"),
		DateTo:   query.Get("date_to"),
	}
}

// Submit handles POST /api/visit-requests (guest or authenticated)
func (h *VisitRequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	visit, err := h.service.SubmitVisitRequest(r.Context(), utils.GetActorFromContext(r.Context()), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "submit visit request")
		return
	}

	utils.ResponseCreated(w, "Visit request submitted", visit)
}

// Get handles GET /api/visit-requests/{id} (requester, owner, admin)
func (h *VisitRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	visit, err := h.service.GetVisitRequest(r.Context(), utils.GetActorFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get visit request")
		return
	}

	utils.ResponseSuccess(w, "success", visit)
}

// Decide handles POST /api/visit-requests/{id}/decision
func (h *VisitRequestHandler) Decide(w http.ResponseWriter, r *http.Request) {
	var req request.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	visit, err := h.service.DecideVisitRequest(r.Context(), utils.GetActorFromContext(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "decide visit request")
		return
	}

	utils.ResponseSuccess(w, "Visit request "+string(visit.Status), visit)
}

// Override handles POST /api/admin/visit-requests/{id}/override (admin)
func (h *VisitRequestHandler) Override(w http.ResponseWriter, r *http.Request) {
	var req request.OverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	visit, err := h.service.OverrideVisitRequest(r.Context(), utils.GetActorFromContext(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "override visit request")
		return
	}

	utils.ResponseSuccess(w, "Visit request overridden", visit)
}

// ListMine handles GET /api/user/visit-requests
func (h *VisitRequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	visits, err := h.service.ListForRequester(r.Context(), utils.GetActorFromContext(r.Context()), parseListVisitRequests(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list own visit requests")
		return
	}

	utils.ResponseSuccess(w, "success", visits)
}

// ListForSeller handles GET /api/seller/visit-requests
func (h *VisitRequestHandler) ListForSeller(w http.ResponseWriter, r *http.Request) {
	actor := utils.GetActorFromContext(r.Context())

	visits, err := h.service.ListForSeller(r.Context(), actor, actor.UserID.String(), parseListVisitRequests(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list seller visit requests")
		return
	}

	utils.ResponseSuccess(w, "success", visits)
}

// ListBySeller handles GET /api/admin/sellers/{sellerID}/visit-requests (admin)
func (h *VisitRequestHandler) ListBySeller(w http.ResponseWriter, r *http.Request) {
	visits, err := h.service.ListForSeller(r.Context(), utils.GetActorFromContext(r.Context()), chi.URLParam(r, "sellerID"), parseListVisitRequests(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list visit requests by seller")
		return
	}

	utils.ResponseSuccess(w, "success", visits)
}
