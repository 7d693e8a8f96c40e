package request

type SubmitVisitRequest struct {
	AvailabilityID      string  `json:"availability_id" validate:"required,uuid"`
	NumberOfVisitors    int     `json:"number_of_visitors" validate:"required,min=1"`
	VisitorName         string  `json:"visitor_name" validate:"required,max=100"`
	VisitorPhone        string  `json:"visitor_phone" validate:"omitempty,max=30"`
	VisitorEmail        string  `json:"visitor_email" validate:"omitempty,email,max=255"`
	Purpose             string  `json:"purpose" validate:"max=255"`
	SpecialRequirements string  `json:"special_requirements" validate:"max=1000"`
	Message             *string `json:"message,omitempty" validate:"omitempty,max=1000"`
}

type DecisionRequest struct {
	Decision        string `json:"decision" validate:"required,oneof=approve reject complete cancel"`
	Notes           string `json:"notes" validate:"max=1000"`
	RejectionReason string `json:"rejection_reason" validate:"max=1000"`
}

type OverrideRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected completed cancelled"`
	Notes  string `json:"notes" validate:"required,max=1000"`
}

type ListVisitRequestsRequest struct {
	PaginatedRequest
	Status   string `validate:"omitempty,oneof=pending approved rejected completed cancelled"`
	SlotID   string `validate:"omitempty,uuid"`
	DateFrom string `validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `validate:"omitempty,datetime=2006-01-02"`
}
