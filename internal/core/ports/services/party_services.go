package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// PartySvcFacade manages one kind of party owned by the caller.
type PartySvcFacade interface {
	Kind() domain.PartyKind

	// CreateParty canonicalizes the tax id and rejects duplicates with the existing party attached.
	CreateParty(ctx context.Context, callerID string, input domain.Party) (*domain.Party, error)
	GetParty(ctx context.Context, callerID string, partyID int64) (*domain.Party, error)
	ListParties(ctx context.Context, callerID string, filter domain.PartyFilter) ([]domain.Party, error)
	UpdateParty(ctx context.Context, callerID string, partyID int64, patch domain.PartyPatch) (*domain.Party, error)
	DeleteParty(ctx context.Context, callerID string, partyID int64) error
}
