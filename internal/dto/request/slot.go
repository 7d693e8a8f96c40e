package request

// SlotRequest carries the seller-editable slot fields. Updates replace all of
// them; an omitted is_available keeps the current value.
type SlotRequest struct {
	Date           string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime      string  `json:"start_time" validate:"required,hhmm"`
	EndTime        string  `json:"end_time" validate:"required,hhmm"`
	IsAvailable    *bool   `json:"is_available,omitempty"`
	MaxVisitors    int     `json:"max_visitors" validate:"gte=0,max=10000"`
	PricePerPerson float64 `json:"price_per_person" validate:"gte=0"`
	VisitType      string  `json:"visit_type" validate:"max=50"`
	LocationType   string  `json:"location_type" validate:"max=50"`
	ActivityType   string  `json:"activity_type" validate:"max=50"`
	Notes          *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type CreateSlotRequest struct {
	// SellerID is honoured for admins only; sellers always create their own slots.
	SellerID string `json:"seller_id,omitempty" validate:"omitempty,uuid"`
	SlotRequest
}

type UpdateSlotRequest struct {
	SlotRequest
}

type ListSlotsRequest struct {
	PaginatedRequest
	SellerID      string `validate:"omitempty,uuid"`
	DateFrom      string `validate:"omitempty,datetime=2006-01-02"`
	DateTo        string `validate:"omitempty,datetime=2006-01-02"`
	VisitType     string `validate:"max=50"`
	OnlyAvailable bool
	IncludePast   bool
}
