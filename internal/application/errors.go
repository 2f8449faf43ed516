package application

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrInvalidEntityRef    = errors.New("invalid entity reference")
	ErrDocumentNotFound    = errors.New("form document not found")
	ErrDocumentCompleted   = errors.New("form document is completed and can no longer be edited")
	ErrInvalidStatus       = errors.New("invalid form document status transition")
	ErrTemplateNotReleased = errors.New("form template not found or not released")
	ErrFileNotFound        = errors.New("file not found")
	ErrNoNotifier          = errors.New("no notifier registered for entity type")
)
