package document

import "github.com/linskybing/workflow-go/internal/domain/entity"

type AttachFormDTO struct {
	FormID    int64          `json:"form_id" binding:"required"`
	Title     *string        `json:"title"`
	Responses map[string]any `json:"responses"`
	// DirectLink is a record the caller already knows is linked, e.g. the
	// parent service order of a dispatch.
	DirectLink *entity.RefDTO `json:"direct_link"`
	Locale     string         `json:"locale"`
}

type UpdateFormDTO struct {
	Title      *string        `json:"title"`
	Responses  map[string]any `json:"responses"`
	Status     *string        `json:"status"`
	DirectLink *entity.RefDTO `json:"direct_link"`
	Locale     string         `json:"locale"`
}

type BulkDeleteDTO struct {
	FormIDs []int64         `json:"form_ids"`
	FileIDs []string        `json:"file_ids"`
	Related []entity.RefDTO `json:"related"`
}

type BulkDeleteResult struct {
	DeletedForms []int64  `json:"deleted_forms"`
	DeletedFiles []string `json:"deleted_files"`
	Skipped      []string `json:"skipped"`
}

type CopyDTO struct {
	Source entity.RefDTO `json:"source" binding:"required"`
	Target entity.RefDTO `json:"target" binding:"required"`
}

// CopyChainDTO copies from Sources in order. With no Sources the target's
// chain is resolved, using DirectLink as its known parent.
type CopyChainDTO struct {
	Target     entity.RefDTO   `json:"target" binding:"required"`
	Sources    []entity.RefDTO `json:"sources"`
	DirectLink *entity.RefDTO  `json:"direct_link"`
}

// PropagateDTO triggers a checklist broadcast directly, for callers that
// manage form documents elsewhere.
type PropagateDTO struct {
	Subject    string         `json:"subject" binding:"required"`
	Action     string         `json:"action" binding:"required"`
	DirectLink *entity.RefDTO `json:"direct_link"`
	Locale     string         `json:"locale"`
}
