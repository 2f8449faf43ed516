package application

import (
	"context"
	"fmt"
	"time"

	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/linskybing/workflow-go/internal/domain/record"
	"github.com/linskybing/workflow-go/internal/repository"
)

type NoteKind string

const (
	NoteChecklistAdded     NoteKind = "checklist_added"
	NoteChecklistCompleted NoteKind = "checklist_completed"
)

// NotableEntity writes one audit entry onto a record of a single type.
type NotableEntity interface {
	Notify(ctx context.Context, id int64, kind NoteKind, description, details string) error
}

// activityNotifier targets records whose service exposes addActivity.
type activityNotifier struct {
	add func(ctx context.Context, id int64, input record.ActivityInput) error
}

func (n activityNotifier) Notify(ctx context.Context, id int64, kind NoteKind, description, details string) error {
	return n.add(ctx, id, record.ActivityInput{
		Type:        string(kind),
		Description: description,
		Details:     details,
	})
}

// noteNotifier targets records whose service exposes addNote; the note body
// is the description and details joined by a newline.
type noteNotifier struct {
	add func(ctx context.Context, id int64, content, noteType string) error
}

func (n noteNotifier) Notify(ctx context.Context, id int64, kind NoteKind, description, details string) error {
	content := description
	if details != "" {
		content = description + "\n" + details
	}
	return n.add(ctx, id, content, string(kind))
}

// NotifierRegistry selects the audit capability for an entity type.
// Installation has no backing record service and is not registered.
type NotifierRegistry map[entity.EntityType]NotableEntity

func NewNotifierRegistry(repos *repository.Repos) NotifierRegistry {
	return NotifierRegistry{
		entity.TypeOffer:        activityNotifier{add: repos.Offer.AddActivity},
		entity.TypeSale:         activityNotifier{add: repos.Sale.AddActivity},
		entity.TypeServiceOrder: noteNotifier{add: repos.ServiceOrder.AddNote},
		entity.TypeDispatch:     noteNotifier{add: repos.Dispatch.AddNote},
	}
}

// Notify delivers one entry to ref, bounding the gateway call by timeout
// when it is positive.
func (r NotifierRegistry) Notify(ctx context.Context, ref entity.EntityRef, kind NoteKind, msg MessagePair, timeout time.Duration) error {
	if !ref.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidEntityRef, ref)
	}
	n, ok := r[ref.EntityType]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoNotifier, ref.EntityType)
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return n.Notify(ctx, ref.EntityID, kind, msg.Description, msg.Details)
}
