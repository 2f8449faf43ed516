package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/linskybing/workflow-go/internal/repository"
)

// TrailEntry is one audit entry read back from a record, whichever kind the
// record stores.
type TrailEntry struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Details     string    `json:"details,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type TrailService struct {
	Repos *repository.Repos
}

func NewTrailService(repos *repository.Repos) *TrailService {
	return &TrailService{Repos: repos}
}

func (s *TrailService) ListTrail(ctx context.Context, ref entity.EntityRef) ([]TrailEntry, error) {
	if !ref.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEntityRef, ref)
	}

	var entries []TrailEntry
	switch ref.EntityType {
	case entity.TypeOffer, entity.TypeSale:
		list := s.Repos.Offer.ListActivities
		if ref.EntityType == entity.TypeSale {
			list = s.Repos.Sale.ListActivities
		}
		activities, err := list(ctx, ref.EntityID)
		if err != nil {
			return nil, err
		}
		for _, a := range activities {
			entries = append(entries, TrailEntry{Type: a.Type, Description: a.Description, Details: a.Details, CreatedAt: a.CreatedAt})
		}
	case entity.TypeServiceOrder, entity.TypeDispatch:
		list := s.Repos.ServiceOrder.ListNotes
		if ref.EntityType == entity.TypeDispatch {
			list = s.Repos.Dispatch.ListNotes
		}
		notes, err := list(ctx, ref.EntityID)
		if err != nil {
			return nil, err
		}
		for _, n := range notes {
			desc, details, _ := strings.Cut(n.Content, "\n")
			entries = append(entries, TrailEntry{Type: n.Type, Description: desc, Details: details, CreatedAt: n.CreatedAt})
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoNotifier, ref.EntityType)
	}
	return entries, nil
}
