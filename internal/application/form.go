package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/linskybing/workflow-go/internal/domain/document"
	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/linskybing/workflow-go/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ChecklistBroadcaster fans a checklist event out to a record's chain
// without blocking the caller.
type ChecklistBroadcaster interface {
	PropagateAsync(ctx context.Context, req PropagationRequest)
}

// FormService owns the form document lifecycle. It fires "added" once when
// a document is attached and "completed" only on the draft to completed
// transition.
type FormService struct {
	Repos       *repository.Repos
	broadcaster ChecklistBroadcaster
}

func NewFormService(repos *repository.Repos, broadcaster ChecklistBroadcaster) *FormService {
	return &FormService{Repos: repos, broadcaster: broadcaster}
}

func (s *FormService) ListTemplates(ctx context.Context) ([]document.FormTemplate, error) {
	return s.Repos.FormTemplate.ListReleased(ctx)
}

func (s *FormService) ListForms(ctx context.Context, owner entity.EntityRef) ([]document.FormDocument, error) {
	if !owner.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEntityRef, owner)
	}
	return s.Repos.FormDocument.ListByEntity(ctx, owner)
}

func (s *FormService) GetForm(ctx context.Context, id int64) (*document.FormDocument, error) {
	doc, err := s.Repos.FormDocument.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (s *FormService) AttachForm(ctx context.Context, userID uint, owner entity.EntityRef, input document.AttachFormDTO) (*document.FormDocument, error) {
	if !owner.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEntityRef, owner)
	}
	link, err := optionalRef(input.DirectLink)
	if err != nil {
		return nil, err
	}

	tpl, err := s.Repos.FormTemplate.GetReleased(ctx, input.FormID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotReleased
		}
		return nil, err
	}

	doc := &document.FormDocument{
		EntityType:  owner.EntityType,
		EntityID:    owner.EntityID,
		FormID:      tpl.ID,
		FormVersion: tpl.Version,
		FormName:    tpl.Name,
		Title:       input.Title,
		Status:      document.FormStatusDraft,
		Responses:   datatypes.JSONMap(input.Responses),
		CreatedBy:   userID,
	}
	if err := s.Repos.FormDocument.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.broadcast(ctx, doc, ActionAdded, link, input.Locale)
	return doc, nil
}

// UpdateForm applies edits to a draft document. Completed documents reject
// edits; re-saving one as completed is a no-op and does not re-broadcast.
func (s *FormService) UpdateForm(ctx context.Context, id int64, input document.UpdateFormDTO) (*document.FormDocument, error) {
	link, err := optionalRef(input.DirectLink)
	if err != nil {
		return nil, err
	}

	doc, err := s.GetForm(ctx, id)
	if err != nil {
		return nil, err
	}

	var next document.FormStatus
	if input.Status != nil {
		next = document.FormStatus(*input.Status)
		if next != document.FormStatusDraft && next != document.FormStatusCompleted {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, *input.Status)
		}
	}

	if doc.IsCompleted() {
		if input.Title != nil || input.Responses != nil || next == document.FormStatusDraft {
			return nil, ErrDocumentCompleted
		}
		return doc, nil
	}

	previous := doc.Status
	if input.Title != nil {
		doc.Title = input.Title
	}
	if input.Responses != nil {
		doc.Responses = datatypes.JSONMap(input.Responses)
	}
	if next != "" {
		doc.Status = next
	}

	updated, err := s.Repos.FormDocument.UpdateDraft(ctx, doc)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Another request completed or removed the document after it was read.
		current, err := s.GetForm(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.IsCompleted() && input.Title == nil && input.Responses == nil && next == document.FormStatusCompleted {
			return current, nil
		}
		return nil, ErrDocumentCompleted
	}

	if previous == document.FormStatusDraft && doc.Status == document.FormStatusCompleted {
		s.broadcast(ctx, doc, ActionCompleted, link, input.Locale)
	}
	return doc, nil
}

func (s *FormService) DeleteForm(ctx context.Context, id int64) error {
	if err := s.Repos.FormDocument.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}
	return nil
}

// PurgeDeleted removes documents that were soft-deleted longer than
// retention ago.
func (s *FormService) PurgeDeleted(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("%w: retention must be positive", ErrInvalidRequest)
	}
	return s.Repos.FormDocument.PurgeDeleted(ctx, time.Now().Add(-retention))
}

func (s *FormService) broadcast(ctx context.Context, doc *document.FormDocument, action Action, link *entity.EntityRef, locale string) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.PropagateAsync(ctx, PropagationRequest{
		Subject:    doc.FormName,
		Source:     doc.Owner(),
		DirectLink: link,
		Action:     action,
		Locale:     locale,
	})
}

func optionalRef(dto *entity.RefDTO) (*entity.EntityRef, error) {
	if dto == nil {
		return nil, nil
	}
	ref, err := dto.Ref()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEntityRef, err)
	}
	return &ref, nil
}
