package application

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/linskybing/workflow-go/internal/domain/record"
	"github.com/stretchr/testify/assert"
)

func TestNotifierRegistryRoutesByCapability(t *testing.T) {
	repos, m := setupRepoMocks(t)
	reg := NewNotifierRegistry(repos)
	msg := MessagePair{Description: "Checklist added: Intake", Details: "More"}

	m.offer.EXPECT().AddActivity(gomock.Any(), int64(1), record.ActivityInput{
		Type: "checklist_added", Description: "Checklist added: Intake", Details: "More",
	}).Return(nil)
	m.dispatch.EXPECT().AddNote(gomock.Any(), int64(4), "Checklist added: Intake\nMore", "checklist_added").Return(nil)

	assert.NoError(t, reg.Notify(context.Background(), offer1, NoteChecklistAdded, msg, 0))
	assert.NoError(t, reg.Notify(context.Background(), disp4, NoteChecklistAdded, msg, 0))
}

func TestNotifierRegistryNoteWithoutDetails(t *testing.T) {
	repos, m := setupRepoMocks(t)
	reg := NewNotifierRegistry(repos)

	m.serviceOrder.EXPECT().AddNote(gomock.Any(), int64(3), "Checklist completed: Intake", "checklist_completed").Return(nil)

	err := reg.Notify(context.Background(), so3, NoteChecklistCompleted,
		MessagePair{Description: "Checklist completed: Intake"}, 0)
	assert.NoError(t, err)
}

func TestNotifierRegistryRejectsUnsupportedTargets(t *testing.T) {
	repos, _ := setupRepoMocks(t)
	reg := NewNotifierRegistry(repos)

	err := reg.Notify(context.Background(), entity.NewRef(entity.TypeInstallation, 1), NoteChecklistAdded, MessagePair{}, 0)
	assert.ErrorIs(t, err, ErrNoNotifier)

	err = reg.Notify(context.Background(), entity.NewRef(entity.TypeSale, 0), NoteChecklistAdded, MessagePair{}, 0)
	assert.ErrorIs(t, err, ErrInvalidEntityRef)
}

func TestNotifierRegistryAppliesTimeout(t *testing.T) {
	repos, m := setupRepoMocks(t)
	reg := NewNotifierRegistry(repos)

	m.sale.EXPECT().AddActivity(gomock.Any(), int64(2), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int64, _ record.ActivityInput) error {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
			return nil
		})

	assert.NoError(t, reg.Notify(context.Background(), sale2, NoteChecklistAdded, MessagePair{}, time.Second))
}
