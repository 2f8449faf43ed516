package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/workflow-go/internal/domain/document"
	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/linskybing/workflow-go/internal/repository"
	"github.com/linskybing/workflow-go/internal/storage"
	"gorm.io/gorm"
)

type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

type FileService struct {
	Repos *repository.Repos
	store storage.ObjectStore
}

func NewFileService(repos *repository.Repos, store storage.ObjectStore) *FileService {
	return &FileService{Repos: repos, store: store}
}

func (s *FileService) ListFiles(ctx context.Context, owner entity.EntityRef) ([]document.UploadedFile, error) {
	if !owner.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEntityRef, owner)
	}
	return s.Repos.UploadedFile.List(ctx, moduleQuery(owner))
}

// moduleQuery addresses owner in the file store, which keys rows by the
// PascalCase module type.
func moduleQuery(owner entity.EntityRef) repository.FileQuery {
	id := owner.EntityID
	return repository.FileQuery{ModuleType: entity.WireName(owner.EntityType), ModuleID: &id}
}

func (s *FileService) GetFile(ctx context.Context, id string) (*document.UploadedFile, error) {
	f, err := s.Repos.UploadedFile.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return &f, nil
}

// Upload stores every file of the batch or none of them. Metadata rows are
// inserted in one transaction; objects already written are removed again
// when any step fails.
func (s *FileService) Upload(ctx context.Context, userID uint, owner entity.EntityRef, category string, uploads []FileUpload) ([]document.UploadedFile, error) {
	if !owner.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEntityRef, owner)
	}
	if len(uploads) == 0 {
		return nil, fmt.Errorf("%w: no files", ErrInvalidRequest)
	}

	stored := make([]document.UploadedFile, 0, len(uploads))
	removeObjects := func() {
		for _, f := range stored {
			if err := s.store.Remove(ctx, f.ObjectKey); err != nil {
				log.Printf("[Upload] WARN cleanup of %s failed: %v", f.ObjectKey, err)
			}
		}
	}

	for _, up := range uploads {
		id := uuid.NewString()
		key := storage.ObjectKey(owner, id, up.Name)
		if err := s.store.Put(ctx, key, up.ContentType, up.Content, up.Size); err != nil {
			removeObjects()
			return nil, fmt.Errorf("store %s: %w", up.Name, err)
		}

		stored = append(stored, document.UploadedFile{
			ID:           id,
			ModuleType:   entity.WireName(owner.EntityType),
			ModuleID:     owner.EntityID,
			Category:     category,
			FileType:     document.FileExtension(up.Name),
			FileName:     path.Base(key),
			OriginalName: up.Name,
			ContentType:  up.ContentType,
			FileSize:     up.Size,
			ObjectKey:    key,
			UploadedBy:   userID,
			UploadedAt:   time.Now(),
		})
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		for i := range stored {
			if err := tx.UploadedFile.Create(ctx, &stored[i]); err != nil {
				return fmt.Errorf("save %s: %w", stored[i].OriginalName, err)
			}
		}
		return nil
	})
	if err != nil {
		removeObjects()
		return nil, err
	}
	return stored, nil
}

func (s *FileService) DeleteFile(ctx context.Context, id string) error {
	f, err := s.GetFile(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repos.UploadedFile.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFileNotFound
		}
		return err
	}
	if err := s.store.Remove(ctx, f.ObjectKey); err != nil {
		log.Printf("[DeleteFile] WARN object %s left behind: %v", f.ObjectKey, err)
	}
	return nil
}

func (s *FileService) DownloadURL(ctx context.Context, id string, expiry time.Duration) (string, error) {
	f, err := s.GetFile(ctx, id)
	if err != nil {
		return "", err
	}
	return s.store.PresignedGetURL(ctx, f.ObjectKey, expiry)
}
