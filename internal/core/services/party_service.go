package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/utils/rut"
)

// partyService implements PartySvcFacade for one party kind.
type partyService struct {
	BaseService
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPartyService creates a party service for the kind stored by partyRepo.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) Kind() domain.PartyKind {
	return s.partyRepo.Kind()
}

func (s *partyService) CreateParty(ctx context.Context, callerID string, input domain.Party) (*domain.Party, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, apperrors.NewValidationError(string(s.Kind()) + " name is required")
	}
	taxID, err := canonicalPartyTaxID(input.TaxID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureTaxIDFree(ctx, callerID, taxID, 0); err != nil {
		return nil, err
	}

	input.TaxID = taxID
	input.Kind = s.Kind()
	input.UserID = callerID
	created, err := s.partyRepo.SaveParty(ctx, input)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save party", slog.String("kind", string(s.Kind())))
		return nil, err
	}
	s.LogInfo(ctx, "Party created", slog.String("kind", string(s.Kind())), slog.Int64("party_id", created.ID))
	return created, nil
}

func (s *partyService) GetParty(ctx context.Context, callerID string, partyID int64) (*domain.Party, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	return s.ownedParty(ctx, callerID, partyID)
}

func (s *partyService) ListParties(ctx context.Context, callerID string, filter domain.PartyFilter) ([]domain.Party, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	parties, err := s.partyRepo.ListParties(ctx, callerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties", slog.String("kind", string(s.Kind())))
		return nil, err
	}
	if parties == nil {
		parties = []domain.Party{}
	}
	return parties, nil
}

func (s *partyService) UpdateParty(ctx context.Context, callerID string, partyID int64, patch domain.PartyPatch) (*domain.Party, error) {
	if err := s.RequireCaller(callerID); err != nil {
		return nil, err
	}
	current, err := s.ownedParty(ctx, callerID, partyID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apperrors.NewValidationError(string(s.Kind()) + " name cannot be empty")
		}
		patch.Name = &name
	}
	if patch.TaxID != nil {
		taxID, err := canonicalPartyTaxID(*patch.TaxID)
		if err != nil {
			return nil, err
		}
		if taxID != current.TaxID {
			if err := s.ensureTaxIDFree(ctx, callerID, taxID, partyID); err != nil {
				return nil, err
			}
		}
		patch.TaxID = &taxID
	}

	updated, err := s.partyRepo.UpdateParty(ctx, partyID, callerID, patch)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update party", slog.Int64("party_id", partyID))
		return nil, err
	}
	if !updated {
		return nil, apperrors.NewNotFoundError(string(s.Kind()) + " not found")
	}
	return s.partyRepo.FindPartyByID(ctx, partyID)
}

func (s *partyService) DeleteParty(ctx context.Context, callerID string, partyID int64) error {
	if err := s.RequireCaller(callerID); err != nil {
		return err
	}
	if _, err := s.ownedParty(ctx, callerID, partyID); err != nil {
		return err
	}
	deleted, err := s.partyRepo.DeleteParty(ctx, partyID, callerID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete party", slog.Int64("party_id", partyID))
		return err
	}
	if !deleted {
		return apperrors.NewNotFoundError(string(s.Kind()) + " not found")
	}
	return nil
}

func (s *partyService) ownedParty(ctx context.Context, callerID string, partyID int64) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if party.UserID != callerID {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("you do not have access to this %s", s.Kind()))
	}
	return party, nil
}

// ensureTaxIDFree fails with a conflict when taxID is taken. The conflict carries the
// existing party only when the caller owns it.
func (s *partyService) ensureTaxIDFree(ctx context.Context, callerID, taxID string, selfID int64) error {
	existing, err := s.partyRepo.FindPartyByTaxID(ctx, taxID)
	switch {
	case err == nil && existing.ID != selfID:
		message := fmt.Sprintf("a %s with tax id %s already exists", s.Kind(), taxID)
		if existing.UserID != callerID {
			return apperrors.NewConflictError(message)
		}
		return apperrors.NewConflictErrorWithDetails(message, existing)
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check party tax id", slog.String("tax_id", taxID))
		return err
	}
	return nil
}

func canonicalPartyTaxID(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", apperrors.NewValidationError("tax_id is required")
	}
	formatted, ok := rut.ValidateAndFormat(raw)
	if !ok {
		return "", apperrors.NewValidationError("invalid RUT")
	}
	return formatted, nil
}
