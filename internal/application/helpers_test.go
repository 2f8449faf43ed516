package application

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/workflow-go/internal/repository"
	"github.com/linskybing/workflow-go/internal/repository/mock"
)

type repoMocks struct {
	offer        *mock.MockOfferRepo
	sale         *mock.MockSaleRepo
	serviceOrder *mock.MockServiceOrderRepo
	dispatch     *mock.MockDispatchRepo
	forms        *mock.MockFormDocumentRepo
	templates    *mock.MockFormTemplateRepo
	files        *mock.MockUploadedFileRepo
}

func setupRepoMocks(t *testing.T) (*repository.Repos, *repoMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &repoMocks{
		offer:        mock.NewMockOfferRepo(ctrl),
		sale:         mock.NewMockSaleRepo(ctrl),
		serviceOrder: mock.NewMockServiceOrderRepo(ctrl),
		dispatch:     mock.NewMockDispatchRepo(ctrl),
		forms:        mock.NewMockFormDocumentRepo(ctrl),
		templates:    mock.NewMockFormTemplateRepo(ctrl),
		files:        mock.NewMockUploadedFileRepo(ctrl),
	}
	repos := &repository.Repos{
		Offer:        m.offer,
		Sale:         m.sale,
		ServiceOrder: m.serviceOrder,
		Dispatch:     m.dispatch,
		FormDocument: m.forms,
		FormTemplate: m.templates,
		UploadedFile: m.files,
	}
	return repos, m
}

func ptrInt64(v int64) *int64 { return &v }

func ptrString(s string) *string { return &s }

// callLog records the order in which mocked gateways were hit.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(call string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
}

func (l *callLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.calls))
	copy(out, l.calls)
	return out
}

// recordingBroadcaster captures propagation requests synchronously.
type recordingBroadcaster struct {
	mu       sync.Mutex
	requests []PropagationRequest
}

func (b *recordingBroadcaster) PropagateAsync(_ context.Context, req PropagationRequest) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, req)
}

func (b *recordingBroadcaster) sent() []PropagationRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]PropagationRequest, len(b.requests))
	copy(out, b.requests)
	return out
}
