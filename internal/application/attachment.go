package application

import (
	"context"
	"fmt"
	"strconv"

	"github.com/linskybing/workflow-go/internal/domain/document"
	"github.com/linskybing/workflow-go/internal/domain/entity"
)

// AttachmentService is the read and bulk-edit surface over the merged
// attachment list of a record.
type AttachmentService struct {
	aggregator *Aggregator
	forms      *FormService
	files      *FileService
}

func NewAttachmentService(aggregator *Aggregator, forms *FormService, files *FileService) *AttachmentService {
	return &AttachmentService{aggregator: aggregator, forms: forms, files: files}
}

func (s *AttachmentService) ListAttachments(ctx context.Context, owner entity.EntityRef, related []RelatedSource, filter AttachmentFilter) ([]document.AttachmentView, error) {
	if !owner.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEntityRef, owner)
	}
	views := s.aggregator.Aggregate(ctx, owner, related)
	return SortAttachments(FilterAttachments(views, filter)), nil
}

// BulkDelete removes the selected attachments owned by owner. Items that
// are origin-tagged in the merged view, or that turn out to belong to a
// different record, are skipped rather than deleted.
func (s *AttachmentService) BulkDelete(ctx context.Context, owner entity.EntityRef, related []RelatedSource, sel AttachmentSelection) (document.BulkDeleteResult, error) {
	result := document.BulkDeleteResult{}
	if !owner.Valid() {
		return result, fmt.Errorf("%w: %s", ErrInvalidEntityRef, owner)
	}

	views := s.aggregator.Aggregate(ctx, owner, related)
	keep, skipped := SelectDeletable(views, sel)
	result.Skipped = append(result.Skipped, skipped...)

	for _, id := range keep.FormIDs {
		doc, err := s.forms.GetForm(ctx, id)
		if err != nil {
			return result, err
		}
		if doc.Owner() != owner {
			result.Skipped = append(result.Skipped, string(document.KindForm)+":"+strconv.FormatInt(id, 10))
			continue
		}
		if err := s.forms.DeleteForm(ctx, id); err != nil {
			return result, err
		}
		result.DeletedForms = append(result.DeletedForms, id)
	}

	for _, id := range keep.FileIDs {
		f, err := s.files.GetFile(ctx, id)
		if err != nil {
			return result, err
		}
		fileOwner, err := f.Owner()
		if err != nil || fileOwner != owner {
			result.Skipped = append(result.Skipped, string(document.KindFile)+":"+id)
			continue
		}
		if err := s.files.DeleteFile(ctx, id); err != nil {
			return result, err
		}
		result.DeletedFiles = append(result.DeletedFiles, id)
	}
	return result, nil
}
