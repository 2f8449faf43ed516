package repository

import (
	"context"

	"github.com/linskybing/workflow-go/internal/domain/document"
	"gorm.io/gorm"
)

type FileQuery struct {
	ModuleType string
	ModuleID   *int64
}

type UploadedFileRepo interface {
	List(ctx context.Context, q FileQuery) ([]document.UploadedFile, error)
	GetByID(ctx context.Context, id string) (document.UploadedFile, error)
	Create(ctx context.Context, f *document.UploadedFile) error
	Delete(ctx context.Context, id string) error
	WithTx(tx *gorm.DB) UploadedFileRepo
}

type DBUploadedFileRepo struct {
	db *gorm.DB
}

func NewUploadedFileRepo(db *gorm.DB) *DBUploadedFileRepo {
	return &DBUploadedFileRepo{db: db}
}

func (r *DBUploadedFileRepo) List(ctx context.Context, q FileQuery) ([]document.UploadedFile, error) {
	var files []document.UploadedFile
	query := r.db.WithContext(ctx).Model(&document.UploadedFile{})
	if q.ModuleType != "" {
		query = query.Where("module_type = ?", q.ModuleType)
	}
	if q.ModuleID != nil {
		query = query.Where("module_id = ?", *q.ModuleID)
	}
	err := query.Order("uploaded_at desc").Find(&files).Error
	return files, err
}

func (r *DBUploadedFileRepo) GetByID(ctx context.Context, id string) (document.UploadedFile, error) {
	var f document.UploadedFile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	return f, err
}

func (r *DBUploadedFileRepo) Create(ctx context.Context, f *document.UploadedFile) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *DBUploadedFileRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&document.UploadedFile{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBUploadedFileRepo) WithTx(tx *gorm.DB) UploadedFileRepo {
	if tx == nil {
		return r
	}
	return &DBUploadedFileRepo{db: tx}
}
