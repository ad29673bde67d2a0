package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// PartyReader looks up parties of one kind. Lookups by id or tax id ignore the owner.
type PartyReader interface {
	// Kind returns the party kind this repository stores.
	Kind() domain.PartyKind

	FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error)
	FindPartyByTaxID(ctx context.Context, taxID string) (*domain.Party, error)

	// ListParties returns the user's parties ordered by name.
	ListParties(ctx context.Context, userID string, filter domain.PartyFilter) ([]domain.Party, error)
}

// PartyRepositoryFacade stores one kind of party (clients or vendors).
type PartyRepositoryFacade interface {
	PartyReader

	SaveParty(ctx context.Context, party domain.Party) (*domain.Party, error)

	// UpdateParty applies a patch to a party owned by userID. It reports false if no row matched.
	UpdateParty(ctx context.Context, partyID int64, userID string, patch domain.PartyPatch) (bool, error)
	DeleteParty(ctx context.Context, partyID int64, userID string) (bool, error)
}
