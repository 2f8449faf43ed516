package document

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/linskybing/workflow-go/internal/domain/entity"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FormStatus string

const (
	FormStatusDraft     FormStatus = "draft"
	FormStatusCompleted FormStatus = "completed"
)

// FormTemplate is a form definition. Only released templates can be
// attached to a record.
type FormTemplate struct {
	ID        int64             `json:"id" gorm:"primaryKey"`
	Name      string            `json:"name" gorm:"size:255;not null"`
	Version   int               `json:"version" gorm:"not null;default:1"`
	Released  bool              `json:"released" gorm:"not null;default:false"`
	Schema    datatypes.JSONMap `json:"schema" gorm:"type:jsonb"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// FormDocument is one attached instance of a released template.
// FormVersion is captured at attach time and never re-synced.
type FormDocument struct {
	ID          int64             `json:"id" gorm:"primaryKey"`
	EntityType  entity.EntityType `json:"entity_type" gorm:"size:32;not null;index:idx_form_doc_entity"`
	EntityID    int64             `json:"entity_id" gorm:"not null;index:idx_form_doc_entity"`
	FormID      int64             `json:"form_id" gorm:"not null"`
	FormVersion int               `json:"form_version" gorm:"not null"`
	FormName    string            `json:"form_name" gorm:"size:255"`
	Title       *string           `json:"title"`
	Status      FormStatus        `json:"status" gorm:"size:16;not null;default:'draft'"`
	Responses   datatypes.JSONMap `json:"responses" gorm:"type:jsonb"`
	CreatedBy   uint              `json:"created_by"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `json:"-" gorm:"index"`
}

func (d FormDocument) Owner() entity.EntityRef {
	return entity.NewRef(d.EntityType, d.EntityID)
}

func (d FormDocument) IsCompleted() bool {
	return d.Status == FormStatusCompleted
}

// DisplayName is the note title when set, otherwise the form name.
func (d FormDocument) DisplayName() string {
	if d.Title != nil && strings.TrimSpace(*d.Title) != "" {
		return *d.Title
	}
	return d.FormName
}

// UploadedFile is addressed by the attachment system's own module
// type/id pair, parallel to EntityRef.
type UploadedFile struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	ModuleType   string    `json:"module_type" gorm:"size:32;not null;index:idx_file_module"`
	ModuleID     int64     `json:"module_id" gorm:"not null;index:idx_file_module"`
	Category     string    `json:"category" gorm:"size:64"`
	FileType     string    `json:"file_type" gorm:"size:16"`
	FileName     string    `json:"file_name" gorm:"size:255;not null"`
	OriginalName string    `json:"original_name" gorm:"size:255"`
	ContentType  string    `json:"content_type" gorm:"size:128"`
	FileSize     int64     `json:"file_size"`
	ObjectKey    string    `json:"-" gorm:"size:512;not null"`
	UploadedBy   uint      `json:"uploaded_by"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

func (f UploadedFile) Owner() (entity.EntityRef, error) {
	t, err := entity.ParseEntityType(f.ModuleType)
	if err != nil {
		return entity.EntityRef{}, err
	}
	return entity.NewRef(t, f.ModuleID), nil
}

// FileClass is the coarse classification used by attachment filters.
type FileClass string

const (
	ClassAll       FileClass = "all"
	ClassPDF       FileClass = "pdf"
	ClassImages    FileClass = "images"
	ClassDocuments FileClass = "documents"
	ClassOther     FileClass = "other"
)

var extensionClasses = map[string]FileClass{
	"pdf":  ClassPDF,
	"png":  ClassImages,
	"jpg":  ClassImages,
	"jpeg": ClassImages,
	"gif":  ClassImages,
	"webp": ClassImages,
	"bmp":  ClassImages,
	"svg":  ClassImages,
	"doc":  ClassDocuments,
	"docx": ClassDocuments,
	"xls":  ClassDocuments,
	"xlsx": ClassDocuments,
	"ppt":  ClassDocuments,
	"pptx": ClassDocuments,
	"odt":  ClassDocuments,
	"ods":  ClassDocuments,
	"txt":  ClassDocuments,
	"csv":  ClassDocuments,
	"rtf":  ClassDocuments,
}

// FileExtension returns the lower-case extension of name without the dot.
func FileExtension(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

func ClassifyExtension(ext string) FileClass {
	if c, ok := extensionClasses[strings.ToLower(strings.TrimPrefix(ext, "."))]; ok {
		return c
	}
	return ClassOther
}

func ClassifyFile(name string) FileClass {
	return ClassifyExtension(FileExtension(name))
}

func ParseFileClass(s string) FileClass {
	switch FileClass(strings.ToLower(strings.TrimSpace(s))) {
	case ClassPDF:
		return ClassPDF
	case ClassImages:
		return ClassImages
	case ClassDocuments:
		return ClassDocuments
	case ClassOther:
		return ClassOther
	default:
		return ClassAll
	}
}

type AttachmentKind string

const (
	KindForm AttachmentKind = "form"
	KindFile AttachmentKind = "file"
)

// AttachmentView is the merged read model over form documents and
// uploaded files. Items with a non-empty Origin belong to a related record.
type AttachmentView struct {
	Kind      AttachmentKind   `json:"kind"`
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Name      string           `json:"name"`
	Status    FormStatus       `json:"status,omitempty"`
	FileType  string           `json:"file_type,omitempty"`
	Class     FileClass        `json:"class"`
	FileSize  int64            `json:"file_size,omitempty"`
	Owner     entity.EntityRef `json:"owner"`
	Origin    string           `json:"origin,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func (v AttachmentView) ReadOnly() bool {
	return v.Origin != ""
}
