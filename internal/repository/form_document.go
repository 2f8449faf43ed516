package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/linskybing/workflow-go/internal/domain/document"
	"github.com/linskybing/workflow-go/internal/domain/entity"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FormDocumentRepo interface {
	ListByEntity(ctx context.Context, ref entity.EntityRef) ([]document.FormDocument, error)
	GetByID(ctx context.Context, id int64) (document.FormDocument, error)
	Create(ctx context.Context, doc *document.FormDocument) error
	UpdateDraft(ctx context.Context, doc *document.FormDocument) (bool, error)
	SoftDelete(ctx context.Context, id int64) error
	Copy(ctx context.Context, source, target entity.EntityRef) (int, error)
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
	WithTx(tx *gorm.DB) FormDocumentRepo
}

type DBFormDocumentRepo struct {
	db *gorm.DB
}

func NewFormDocumentRepo(db *gorm.DB) *DBFormDocumentRepo {
	return &DBFormDocumentRepo{db: db}
}

func (r *DBFormDocumentRepo) ListByEntity(ctx context.Context, ref entity.EntityRef) ([]document.FormDocument, error) {
	var docs []document.FormDocument
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", ref.EntityType, ref.EntityID).
		Order("created_at desc").
		Find(&docs).Error
	return docs, err
}

func (r *DBFormDocumentRepo) GetByID(ctx context.Context, id int64) (document.FormDocument, error) {
	var doc document.FormDocument
	err := r.db.WithContext(ctx).First(&doc, id).Error
	return doc, err
}

func (r *DBFormDocumentRepo) Create(ctx context.Context, doc *document.FormDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

// UpdateDraft writes the editable columns of doc only while the stored row
// is still a draft. It reports false when the row was completed or removed
// in the meantime.
func (r *DBFormDocumentRepo) UpdateDraft(ctx context.Context, doc *document.FormDocument) (bool, error) {
	res := r.db.WithContext(ctx).Model(doc).
		Where("status = ?", document.FormStatusDraft).
		Select("title", "responses", "status", "updated_at").
		Updates(doc)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *DBFormDocumentRepo) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&document.FormDocument{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PurgeDeleted hard-deletes documents soft-deleted before the cutoff.
func (r *DBFormDocumentRepo) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
		Delete(&document.FormDocument{})
	return res.RowsAffected, res.Error
}

// Copy duplicates every live form document of source onto target in one
// transaction and returns the number of rows created.
func (r *DBFormDocumentRepo) Copy(ctx context.Context, source, target entity.EntityRef) (int, error) {
	copied := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var docs []document.FormDocument
		if err := tx.Where("entity_type = ? AND entity_id = ?", source.EntityType, source.EntityID).
			Order("created_at asc").
			Find(&docs).Error; err != nil {
			return err
		}
		if len(docs) == 0 {
			return nil
		}

		clones := make([]document.FormDocument, 0, len(docs))
		for _, d := range docs {
			clones = append(clones, document.FormDocument{
				EntityType:  target.EntityType,
				EntityID:    target.EntityID,
				FormID:      d.FormID,
				FormVersion: d.FormVersion,
				FormName:    d.FormName,
				Title:       d.Title,
				Status:      d.Status,
				Responses:   cloneResponses(d.Responses),
				CreatedBy:   d.CreatedBy,
			})
		}
		if err := tx.Create(&clones).Error; err != nil {
			return fmt.Errorf("copy form documents %s -> %s: %w", source, target, err)
		}
		copied = len(clones)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return copied, nil
}

func (r *DBFormDocumentRepo) WithTx(tx *gorm.DB) FormDocumentRepo {
	if tx == nil {
		return r
	}
	return &DBFormDocumentRepo{db: tx}
}

func cloneResponses(in datatypes.JSONMap) datatypes.JSONMap {
	if in == nil {
		return nil
	}
	out := make(datatypes.JSONMap, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

type FormTemplateRepo interface {
	GetReleased(ctx context.Context, formID int64) (document.FormTemplate, error)
	ListReleased(ctx context.Context) ([]document.FormTemplate, error)
	WithTx(tx *gorm.DB) FormTemplateRepo
}

type DBFormTemplateRepo struct {
	db *gorm.DB
}

func NewFormTemplateRepo(db *gorm.DB) *DBFormTemplateRepo {
	return &DBFormTemplateRepo{db: db}
}

func (r *DBFormTemplateRepo) GetReleased(ctx context.Context, formID int64) (document.FormTemplate, error) {
	var tpl document.FormTemplate
	err := r.db.WithContext(ctx).Where("id = ? AND released = ?", formID, true).First(&tpl).Error
	return tpl, err
}

func (r *DBFormTemplateRepo) ListReleased(ctx context.Context) ([]document.FormTemplate, error) {
	var tpls []document.FormTemplate
	err := r.db.WithContext(ctx).Where("released = ?", true).Order("name asc").Find(&tpls).Error
	return tpls, err
}

func (r *DBFormTemplateRepo) WithTx(tx *gorm.DB) FormTemplateRepo {
	if tx == nil {
		return r
	}
	return &DBFormTemplateRepo{db: tx}
}
