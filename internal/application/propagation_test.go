package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/linskybing/workflow-go/internal/domain/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPropagator(t *testing.T) (*Propagator, *repoMocks) {
	repos, m := setupRepoMocks(t)
	resolver := NewChainResolver(repos, time.Second)
	return NewPropagator(resolver, NewNotifierRegistry(repos), 4, time.Second, "en"), m
}

func expectChainLookups(m *repoMocks, log *callLog) {
	m.serviceOrder.EXPECT().GetServiceOrderByID(gomock.Any(), int64(3)).
		DoAndReturn(func(_ context.Context, id int64) (record.ServiceOrder, error) {
			log.add("lookup:service_order")
			return record.ServiceOrder{ID: id, SaleID: ptrInt64(2)}, nil
		})
	m.sale.EXPECT().GetSaleByID(gomock.Any(), int64(2)).
		Return(record.Sale{ID: 2, OfferID: ptrInt64(1)}, nil)
}

func TestPropagateCompletedOnDispatchReachesWholeChain(t *testing.T) {
	p, m := setupPropagator(t)
	calls := &callLog{}
	expectChainLookups(m, calls)

	m.dispatch.EXPECT().AddNote(gomock.Any(), int64(4), gomock.Any(), "checklist_completed").
		DoAndReturn(func(_ context.Context, _ int64, content, _ string) error {
			calls.add("notify:dispatch")
			assert.True(t, strings.HasPrefix(content, "Checklist completed: Intake Form\n"))
			return nil
		})
	m.serviceOrder.EXPECT().AddNote(gomock.Any(), int64(3), gomock.Any(), "checklist_completed").
		DoAndReturn(func(_ context.Context, _ int64, content, _ string) error {
			calls.add("notify:service_order")
			assert.Equal(t,
				"Checklist completed from Dispatch: Intake Form\nThe checklist \"Intake Form\" was completed on the linked Dispatch #4.",
				content)
			return nil
		})
	m.sale.EXPECT().AddActivity(gomock.Any(), int64(2), record.ActivityInput{
		Type:        "checklist_completed",
		Description: "Checklist completed from Dispatch: Intake Form",
		Details:     "The checklist \"Intake Form\" was completed on the linked Dispatch #4.",
	}).DoAndReturn(func(context.Context, int64, record.ActivityInput) error {
		calls.add("notify:sale")
		return nil
	})
	m.offer.EXPECT().AddActivity(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(context.Context, int64, record.ActivityInput) error {
			calls.add("notify:offer")
			return nil
		})

	report := p.Propagate(context.Background(), PropagationRequest{
		Subject:    "Intake Form",
		Source:     disp4,
		DirectLink: &so3,
		Action:     ActionCompleted,
	})

	assert.Equal(t, 4, report.Delivered())
	assert.Empty(t, report.Failures())
	assert.False(t, report.Source.Derived)
	require.Len(t, report.Targets, 3)
	for i, want := range []entity.EntityRef{so3, sale2, offer1} {
		assert.Equal(t, want, report.Targets[i].Target)
		assert.True(t, report.Targets[i].Derived)
	}

	got := calls.snapshot()
	require.NotEmpty(t, got)
	assert.Equal(t, "notify:dispatch", got[0], "source must be notified before the chain is resolved")
	assert.Equal(t, "lookup:service_order", got[1])
}

func TestPropagateIsolatesTargetFailures(t *testing.T) {
	p, m := setupPropagator(t)
	expectChainLookups(m, &callLog{})

	m.dispatch.EXPECT().AddNote(gomock.Any(), int64(4), gomock.Any(), gomock.Any()).Return(nil)
	m.serviceOrder.EXPECT().AddNote(gomock.Any(), int64(3), gomock.Any(), gomock.Any()).
		Return(errors.New("notes service down"))
	m.sale.EXPECT().AddActivity(gomock.Any(), int64(2), gomock.Any()).Return(nil)
	m.offer.EXPECT().AddActivity(gomock.Any(), int64(1), gomock.Any()).Return(nil)

	report := p.Propagate(context.Background(), PropagationRequest{
		Subject:    "Intake Form",
		Source:     disp4,
		DirectLink: &so3,
		Action:     ActionAdded,
	})

	assert.Equal(t, 3, report.Delivered())
	failures := report.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, so3, failures[0].Target)
	assert.Contains(t, failures[0].Error, "notes service down")
}

func TestPropagateContinuesWhenSourceNotifyFails(t *testing.T) {
	p, m := setupPropagator(t)

	m.sale.EXPECT().AddActivity(gomock.Any(), int64(2), gomock.Any()).Return(errors.New("boom"))
	m.offer.EXPECT().AddActivity(gomock.Any(), int64(1), gomock.Any()).Return(nil)

	report := p.Propagate(context.Background(), PropagationRequest{
		Subject:    "Survey",
		Source:     sale2,
		DirectLink: &offer1,
		Action:     ActionAdded,
	})

	assert.False(t, report.Source.OK())
	require.Len(t, report.Targets, 1)
	assert.True(t, report.Targets[0].OK())
}

func TestPropagateNeverNotifiesSourceTwice(t *testing.T) {
	p, m := setupPropagator(t)
	expectChainLookups(m, &callLog{})

	m.serviceOrder.EXPECT().AddNote(gomock.Any(), int64(3), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.sale.EXPECT().AddActivity(gomock.Any(), int64(2), gomock.Any()).Return(nil)
	m.offer.EXPECT().AddActivity(gomock.Any(), int64(1), gomock.Any()).Return(nil)

	report := p.Propagate(context.Background(), PropagationRequest{
		Subject:    "Intake Form",
		Source:     so3,
		DirectLink: &so3,
		Action:     ActionAdded,
	})

	assert.Equal(t, 3, report.Delivered())
	for _, target := range report.Targets {
		assert.NotEqual(t, so3, target.Target)
	}
}

func TestPropagateFromInstallationIsSkipped(t *testing.T) {
	p, _ := setupPropagator(t)

	report := p.Propagate(context.Background(), PropagationRequest{
		Subject: "Handover",
		Source:  entity.NewRef(entity.TypeInstallation, 8),
		Action:  ActionCompleted,
	})

	assert.ErrorIs(t, report.Source.Err, ErrNoNotifier)
	assert.Empty(t, report.Targets)
}

func TestPropagateUsesRequestLocale(t *testing.T) {
	p, m := setupPropagator(t)

	m.sale.EXPECT().AddActivity(gomock.Any(), int64(2), gomock.Any()).Return(nil)
	m.offer.EXPECT().AddActivity(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, in record.ActivityInput) error {
			assert.Equal(t, "Checklist ajoutée depuis Vente : Survey", in.Description)
			return nil
		})

	p.Propagate(context.Background(), PropagationRequest{
		Subject:    "Survey",
		Source:     sale2,
		DirectLink: &offer1,
		Action:     ActionAdded,
		Locale:     "fr-CA",
	})
}

func TestPropagateAsyncSurvivesCallerCancellation(t *testing.T) {
	p, m := setupPropagator(t)
	done := make(chan struct{})

	m.offer.EXPECT().AddActivity(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int64, _ record.ActivityInput) error {
			assert.NoError(t, ctx.Err())
			close(done)
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.PropagateAsync(ctx, PropagationRequest{Subject: "Survey", Source: offer1, Action: ActionAdded})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("async propagation did not run")
	}
}
