package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/workflow-go/internal/domain/document"
	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/linskybing/workflow-go/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --------------------- Setup ---------------------
var (
	so5   = entity.NewRef(entity.TypeServiceOrder, 5)
	disp9 = entity.NewRef(entity.TypeDispatch, 9)
	base  = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
)

func setupAggregator(t *testing.T) (*Aggregator, *repoMocks) {
	repos, m := setupRepoMocks(t)
	return NewAggregator(repos, 4, time.Second), m
}

func formsByOwner(docs map[entity.EntityRef][]document.FormDocument, failing map[entity.EntityRef]error) func(context.Context, entity.EntityRef) ([]document.FormDocument, error) {
	return func(_ context.Context, ref entity.EntityRef) ([]document.FormDocument, error) {
		if err := failing[ref]; err != nil {
			return nil, err
		}
		return docs[ref], nil
	}
}

func filesByOwner(files map[entity.EntityRef][]document.UploadedFile) func(context.Context, repository.FileQuery) ([]document.UploadedFile, error) {
	return func(_ context.Context, q repository.FileQuery) ([]document.UploadedFile, error) {
		t, err := entity.ParseEntityType(q.ModuleType)
		if err != nil || q.ModuleID == nil || q.ModuleType != entity.WireName(t) {
			return nil, errors.New("bad query")
		}
		return files[entity.NewRef(t, *q.ModuleID)], nil
	}
}

func sampleAttachments() (map[entity.EntityRef][]document.FormDocument, map[entity.EntityRef][]document.UploadedFile) {
	docs := map[entity.EntityRef][]document.FormDocument{
		so5: {{ID: 11, EntityType: so5.EntityType, EntityID: 5, FormName: "Intake", Status: document.FormStatusDraft, CreatedAt: base}},
		disp9: {{ID: 21, EntityType: disp9.EntityType, EntityID: 9, FormName: "Site Check",
			Title: ptrString("Roof"), Status: document.FormStatusCompleted, CreatedAt: base.Add(2 * time.Hour)}},
	}
	files := map[entity.EntityRef][]document.UploadedFile{
		so5: {{ID: "f-1", ModuleType: "ServiceOrder", ModuleID: 5, FileName: "a.pdf", OriginalName: "Quote.pdf",
			FileType: "pdf", UploadedAt: base.Add(time.Hour)}},
		disp9: {{ID: "f-2", ModuleType: "Dispatch", ModuleID: 9, FileName: "b.jpg", OriginalName: "Photo.JPG",
			UploadedAt: base.Add(3 * time.Hour)}},
	}
	return docs, files
}

// --------------------- Aggregate ---------------------
func TestAggregate_TagsRelatedItemsWithOrigin(t *testing.T) {
	agg, m := setupAggregator(t)
	docs, files := sampleAttachments()
	m.forms.EXPECT().ListByEntity(gomock.Any(), gomock.Any()).DoAndReturn(formsByOwner(docs, nil)).Times(2)
	m.files.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(filesByOwner(files)).Times(2)

	views := agg.Aggregate(context.Background(), so5, []RelatedSource{{Ref: disp9}})

	require.Len(t, views, 4)
	byID := map[string]document.AttachmentView{}
	for _, v := range views {
		byID[string(v.Kind)+":"+v.ID] = v
	}
	assert.Empty(t, byID["form:11"].Origin)
	assert.Empty(t, byID["file:f-1"].Origin)
	assert.Equal(t, "Dispatch", byID["form:21"].Origin)
	assert.Equal(t, "Dispatch", byID["file:f-2"].Origin)
	assert.Equal(t, "Roof", byID["form:21"].Title)
	assert.Equal(t, document.ClassImages, byID["file:f-2"].Class)
	assert.Equal(t, "jpg", byID["file:f-2"].FileType)
	assert.Equal(t, disp9, byID["file:f-2"].Owner)
	assert.True(t, byID["form:21"].ReadOnly())
	assert.False(t, byID["form:11"].ReadOnly())
}

func TestAggregate_CustomLabelAndDuplicateSources(t *testing.T) {
	agg, m := setupAggregator(t)
	docs, files := sampleAttachments()
	m.forms.EXPECT().ListByEntity(gomock.Any(), gomock.Any()).DoAndReturn(formsByOwner(docs, nil)).Times(2)
	m.files.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(filesByOwner(files)).Times(2)

	views := agg.Aggregate(context.Background(), so5, []RelatedSource{
		{Ref: disp9, Label: "Dispatch D-9"},
		{Ref: disp9},
		{Ref: so5},
		{Ref: entity.NewRef(entity.TypeSale, 0)},
	})

	require.Len(t, views, 4)
	for _, v := range views {
		if v.Owner == disp9 {
			assert.Equal(t, "Dispatch D-9", v.Origin)
		}
	}
}

func TestAggregate_IsolatesSourceFailures(t *testing.T) {
	agg, m := setupAggregator(t)
	docs, files := sampleAttachments()
	failing := map[entity.EntityRef]error{disp9: errors.New("forms api timeout")}
	m.forms.EXPECT().ListByEntity(gomock.Any(), gomock.Any()).DoAndReturn(formsByOwner(docs, failing)).Times(2)
	m.files.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(filesByOwner(files)).Times(2)

	views := agg.Aggregate(context.Background(), so5, []RelatedSource{{Ref: disp9}})

	require.Len(t, views, 3)
	for _, v := range views {
		assert.NotEqual(t, "21", v.ID)
	}
}

// --------------------- Filter / Sort ---------------------
func TestFilterAttachments(t *testing.T) {
	views := []document.AttachmentView{
		{Kind: document.KindFile, ID: "1", Title: "Quote.pdf", Name: "x.pdf", Class: document.ClassPDF},
		{Kind: document.KindFile, ID: "2", Title: "Photo", Name: "roof.jpg", Class: document.ClassImages},
		{Kind: document.KindForm, ID: "3", Title: "Intake", Name: "Intake", Class: document.ClassDocuments},
	}

	assert.Len(t, FilterAttachments(views, AttachmentFilter{}), 3)
	assert.Len(t, FilterAttachments(views, AttachmentFilter{Class: document.ClassAll}), 3)

	pdf := FilterAttachments(views, AttachmentFilter{Class: document.ClassPDF})
	require.Len(t, pdf, 1)
	assert.Equal(t, "1", pdf[0].ID)

	roof := FilterAttachments(views, AttachmentFilter{Query: "  ROOF "})
	require.Len(t, roof, 1)
	assert.Equal(t, "2", roof[0].ID)

	assert.Empty(t, FilterAttachments(views, AttachmentFilter{Query: "intake", Class: document.ClassImages}))
}

func TestSortAttachments_NewestFirstStable(t *testing.T) {
	views := []document.AttachmentView{
		{ID: "old", CreatedAt: base},
		{ID: "tie-a", CreatedAt: base.Add(time.Hour)},
		{ID: "new", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "tie-b", CreatedAt: base.Add(time.Hour)},
	}

	sorted := SortAttachments(views)

	ids := make([]string, len(sorted))
	for i, v := range sorted {
		ids[i] = v.ID
	}
	assert.Equal(t, []string{"new", "tie-a", "tie-b", "old"}, ids)
	assert.Equal(t, "old", views[0].ID, "input must not be reordered")
}

// --------------------- SelectDeletable ---------------------
func TestSelectDeletable_SkipsOriginTaggedItems(t *testing.T) {
	views := []document.AttachmentView{
		{Kind: document.KindForm, ID: "11"},
		{Kind: document.KindForm, ID: "21", Origin: "Dispatch"},
		{Kind: document.KindFile, ID: "f-1"},
		{Kind: document.KindFile, ID: "f-2", Origin: "Dispatch"},
	}

	keep, skipped := SelectDeletable(views, AttachmentSelection{
		FormIDs: []int64{11, 21},
		FileIDs: []string{"f-1", "f-2"},
	})

	assert.Equal(t, []int64{11}, keep.FormIDs)
	assert.Equal(t, []string{"f-1"}, keep.FileIDs)
	assert.ElementsMatch(t, []string{"form:21", "file:f-2"}, skipped)
}
