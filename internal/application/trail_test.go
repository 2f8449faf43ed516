package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/linskybing/workflow-go/internal/domain/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTrail_SplitsNoteContent(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewTrailService(repos)
	m.dispatch.EXPECT().ListNotes(gomock.Any(), int64(4)).Return([]record.Note{
		{Type: "checklist_added", Content: "Checklist added: Intake\nThe checklist \"Intake\" was added to this record."},
		{Type: "manual", Content: "Called customer"},
	}, nil)

	entries, err := svc.ListTrail(context.Background(), disp4)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Checklist added: Intake", entries[0].Description)
	assert.Equal(t, "The checklist \"Intake\" was added to this record.", entries[0].Details)
	assert.Empty(t, entries[1].Details)
}

func TestListTrail_ReadsActivities(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewTrailService(repos)
	m.sale.EXPECT().ListActivities(gomock.Any(), int64(2)).Return([]record.Activity{
		{Type: "checklist_completed", Description: "d", Details: "x"},
	}, nil)

	entries, err := svc.ListTrail(context.Background(), sale2)

	require.NoError(t, err)
	assert.Equal(t, []TrailEntry{{Type: "checklist_completed", Description: "d", Details: "x"}}, entries)
}

func TestListTrail_Installation(t *testing.T) {
	repos, _ := setupRepoMocks(t)
	svc := NewTrailService(repos)

	_, err := svc.ListTrail(context.Background(), entity.NewRef(entity.TypeInstallation, 1))

	assert.ErrorIs(t, err, ErrNoNotifier)
}
