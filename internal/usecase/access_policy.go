package usecase

import (
	"fmt"

	"farm-visit/internal/data/entity"
	"farm-visit/internal/errs"

	"github.com/google/uuid"
)

// Party is the relation between an actor and a resource. An actor can hold several.
type Party uint8

const (
	PartyRequester Party = 1 << iota
	PartySellerOwner
	PartyAdmin
	PartySuperadmin
	PartyAuthenticated
)

const partyStaff = PartyAdmin | PartySuperadmin

type Action string

const (
	ActionViewSlot           Action = "slot.view"
	ActionListSlots          Action = "slot.list"
	ActionCreateSlot         Action = "slot.create"
	ActionUpdateSlot         Action = "slot.update"
	ActionDeleteSlot         Action = "slot.delete"
	ActionViewLedger         Action = "slot.ledger"
	ActionSubmitRequest      Action = "request.submit"
	ActionViewRequest        Action = "request.view"
	ActionListOwnRequests    Action = "request.list_own"
	ActionListSellerRequests Action = "request.list_seller"
	ActionApprove            Action = "request.approve"
	ActionReject             Action = "request.reject"
	ActionComplete           Action = "request.complete"
	ActionCancel             Action = "request.cancel"
	ActionOverride           Action = "request.override"
)

// Resource identifies who owns and who asked for the thing being acted on.
type Resource struct {
	SellerID    uuid.UUID
	RequesterID *uuid.UUID
}

type rule struct {
	public  bool
	allowed Party
}

var defaultRules = map[Action]rule{
	ActionViewSlot:           {public: true},
	ActionListSlots:          {public: true},
	ActionSubmitRequest:      {public: true},
	ActionCreateSlot:         {allowed: PartySellerOwner | partyStaff},
	ActionUpdateSlot:         {allowed: PartySellerOwner | partyStaff},
	ActionDeleteSlot:         {allowed: PartySellerOwner | partyStaff},
	ActionViewLedger:         {allowed: PartySellerOwner | partyStaff},
	ActionViewRequest:        {allowed: PartyRequester | PartySellerOwner | partyStaff},
	ActionListOwnRequests:    {allowed: PartyAuthenticated},
	ActionListSellerRequests: {allowed: PartySellerOwner | partyStaff},
	ActionApprove:            {allowed: PartySellerOwner | partyStaff},
	ActionReject:             {allowed: PartySellerOwner | partyStaff},
	ActionComplete:           {allowed: PartySellerOwner | partyStaff},
	ActionCancel:             {allowed: PartyRequester | PartySellerOwner | partyStaff},
	ActionOverride:           {allowed: partyStaff},
}

// AccessPolicy is the single place that decides who may do what.
type AccessPolicy struct {
	rules map[Action]rule
}

func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{rules: defaultRules}
}

// Parties resolves the actor's relations to res. A seller acting on another
// seller's resource resolves to PartyAuthenticated only.
func (p *AccessPolicy) Parties(actor entity.Actor, res Resource) Party {
	if actor.IsGuest() {
		return 0
	}

	parties := PartyAuthenticated
	switch actor.Role {
	case entity.RoleAdmin:
		parties |= PartyAdmin
	case entity.RoleSuperadmin:
		parties |= PartySuperadmin
	case entity.RoleSeller:
		if res.SellerID != uuid.Nil && res.SellerID == actor.UserID {
			parties |= PartySellerOwner
		}
	}
	if res.RequesterID != nil && *res.RequesterID == actor.UserID {
		parties |= PartyRequester
	}
	return parties
}

// Authorize returns ErrUnauthenticated for guests on non-public actions and
// ErrUnauthorized when the actor holds none of the allowed parties.
func (p *AccessPolicy) Authorize(actor entity.Actor, action Action, res Resource) error {
	r, ok := p.rules[action]
	if !ok {
		return fmt.Errorf("unknown action %s: %w", action, errs.ErrUnauthorized)
	}
	if r.public {
		return nil
	}
	if actor.IsGuest() {
		return fmt.Errorf("%s: %w", action, errs.ErrUnauthenticated)
	}
	if p.Parties(actor, res)&r.allowed == 0 {
		return fmt.Errorf("%s by %s %s: %w", action, actor.Role, actor.UserID, errs.ErrUnauthorized)
	}
	return nil
}

// Can is Authorize as a bool, for visibility filtering.
func (p *AccessPolicy) Can(actor entity.Actor, action Action, res Resource) bool {
	return p.Authorize(actor, action, res) == nil
}
