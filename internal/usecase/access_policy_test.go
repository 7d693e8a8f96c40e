package usecase

import (
	"testing"

	"farm-visit/internal/data/entity"
	"farm-visit/internal/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccessPolicy_Authorize(t *testing.T) {
	policy := NewAccessPolicy()

	sellerA := entity.Actor{UserID: uuid.New(), Role: entity.RoleSeller}
	sellerB := entity.Actor{UserID: uuid.New(), Role: entity.RoleSeller}
	buyer := entity.Actor{UserID: uuid.New(), Role: entity.RoleBuyer}
	stranger := entity.Actor{UserID: uuid.New(), Role: entity.RoleBuyer}
	admin := entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	superadmin := entity.Actor{UserID: uuid.New(), Role: entity.RoleSuperadmin}
	guest := entity.Guest()

	requestOfBuyer := Resource{SellerID: sellerA.UserID, RequesterID: &buyer.UserID}
	slotOfA := Resource{SellerID: sellerA.UserID}

	tests := []struct {
		name    string
		actor   entity.Actor
		action  Action
		res     Resource
		wantErr error
	}{
		{"guest views slot", guest, ActionViewSlot, slotOfA, nil},
		{"guest submits request", guest, ActionSubmitRequest, Resource{}, nil},
		{"guest lists own requests", guest, ActionListOwnRequests, Resource{}, errs.ErrUnauthenticated},
		{"guest approves", guest, ActionApprove, requestOfBuyer, errs.ErrUnauthenticated},
		{"owner creates slot", sellerA, ActionCreateSlot, slotOfA, nil},
		{"seller creates slot for another seller", sellerB, ActionCreateSlot, slotOfA, errs.ErrUnauthorized},
		{"buyer creates slot for self", buyer, ActionCreateSlot, Resource{SellerID: buyer.UserID}, errs.ErrUnauthorized},
		{"owner approves", sellerA, ActionApprove, requestOfBuyer, nil},
		{"other seller approves", sellerB, ActionApprove, requestOfBuyer, errs.ErrUnauthorized},
		{"admin approves", admin, ActionApprove, requestOfBuyer, nil},
		{"superadmin approves", superadmin, ActionApprove, requestOfBuyer, nil},
		{"requester approves own request", buyer, ActionApprove, requestOfBuyer, errs.ErrUnauthorized},
		{"requester cancels", buyer, ActionCancel, requestOfBuyer, nil},
		{"stranger cancels", stranger, ActionCancel, requestOfBuyer, errs.ErrUnauthorized},
		{"requester views", buyer, ActionViewRequest, requestOfBuyer, nil},
		{"stranger views", stranger, ActionViewRequest, requestOfBuyer, errs.ErrUnauthorized},
		{"buyer lists own", buyer, ActionListOwnRequests, Resource{}, nil},
		{"owner lists seller requests", sellerA, ActionListSellerRequests, slotOfA, nil},
		{"other seller lists seller requests", sellerB, ActionListSellerRequests, slotOfA, errs.ErrUnauthorized},
		{"owner overrides", sellerA, ActionOverride, requestOfBuyer, errs.ErrUnauthorized},
		{"admin overrides", admin, ActionOverride, requestOfBuyer, nil},
		{"owner reads ledger", sellerA, ActionViewLedger, slotOfA, nil},
		{"other seller reads ledger", sellerB, ActionViewLedger, slotOfA, errs.ErrUnauthorized},
		{"unknown action", admin, Action("slot.teleport"), slotOfA, errs.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Authorize(tt.actor, tt.action, tt.res)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccessPolicy_Parties(t *testing.T) {
	policy := NewAccessPolicy()
	seller := entity.Actor{UserID: uuid.New(), Role: entity.RoleSeller}

	// a seller who also submitted the request holds both relations
	res := Resource{SellerID: seller.UserID, RequesterID: &seller.UserID}
	parties := policy.Parties(seller, res)

	assert.NotZero(t, parties&PartySellerOwner)
	assert.NotZero(t, parties&PartyRequester)
	assert.Zero(t, parties&partyStaff)
	assert.Zero(t, policy.Parties(entity.Guest(), res))
}
