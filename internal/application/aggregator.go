package application

import (
	"context"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/linskybing/workflow-go/internal/domain/document"
	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/linskybing/workflow-go/internal/repository"
	"golang.org/x/sync/errgroup"
)

// RelatedSource is a non-owning record whose attachments are shown
// alongside the owner's. An empty Label falls back to the entity type label.
type RelatedSource struct {
	Ref   entity.EntityRef
	Label string
}

func (s RelatedSource) origin() string {
	if strings.TrimSpace(s.Label) != "" {
		return s.Label
	}
	return entity.Label(s.Ref.EntityType)
}

// Aggregator merges form documents and uploaded files of an owner record
// and its related records into one read model.
type Aggregator struct {
	forms       repository.FormDocumentRepo
	files       repository.UploadedFileRepo
	concurrency int
	timeout     time.Duration
}

func NewAggregator(repos *repository.Repos, concurrency int, timeout time.Duration) *Aggregator {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Aggregator{
		forms:       repos.FormDocument,
		files:       repos.UploadedFile,
		concurrency: concurrency,
		timeout:     timeout,
	}
}

// Aggregate never fails: a source whose attachments cannot be fetched is
// logged and left out. Owner items come first, then each related source in
// the order given; use SortAttachments for display order.
func (a *Aggregator) Aggregate(ctx context.Context, owner entity.EntityRef, related []RelatedSource) []document.AttachmentView {
	sources := []RelatedSource{{Ref: owner}}
	seen := map[entity.EntityRef]struct{}{owner: {}}
	for _, r := range related {
		if !r.Ref.Valid() {
			continue
		}
		if _, dup := seen[r.Ref]; dup {
			continue
		}
		seen[r.Ref] = struct{}{}
		sources = append(sources, r)
	}

	sections := make([][]document.AttachmentView, len(sources))
	var g errgroup.Group
	g.SetLimit(a.concurrency)
	for i, src := range sources {
		i, src := i, src
		origin := ""
		if i > 0 {
			origin = src.origin()
		}
		g.Go(func() error {
			sections[i] = a.fetch(ctx, src.Ref, origin)
			return nil
		})
	}
	_ = g.Wait()

	var views []document.AttachmentView
	for _, s := range sections {
		views = append(views, s...)
	}
	return views
}

func (a *Aggregator) fetch(ctx context.Context, ref entity.EntityRef, origin string) []document.AttachmentView {
	if !ref.Valid() {
		return nil
	}
	var views []document.AttachmentView

	fetchCtx, cancel := a.lookupContext(ctx)
	docs, err := a.forms.ListByEntity(fetchCtx, ref)
	cancel()
	if err != nil {
		log.Printf("[Aggregate] WARN form documents of %s unavailable: %v", ref, err)
	}
	for _, d := range docs {
		views = append(views, FormView(d, origin))
	}

	fetchCtx, cancel = a.lookupContext(ctx)
	files, err := a.files.List(fetchCtx, moduleQuery(ref))
	cancel()
	if err != nil {
		log.Printf("[Aggregate] WARN files of %s unavailable: %v", ref, err)
	}
	for _, f := range files {
		views = append(views, FileView(f, ref, origin))
	}
	return views
}

func (a *Aggregator) lookupContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout > 0 {
		return context.WithTimeout(ctx, a.timeout)
	}
	return context.WithCancel(ctx)
}

func FormView(d document.FormDocument, origin string) document.AttachmentView {
	return document.AttachmentView{
		Kind:      document.KindForm,
		ID:        strconv.FormatInt(d.ID, 10),
		Title:     d.DisplayName(),
		Name:      d.FormName,
		Status:    d.Status,
		Class:     document.ClassDocuments,
		Owner:     d.Owner(),
		Origin:    origin,
		CreatedAt: d.CreatedAt,
	}
}

func FileView(f document.UploadedFile, owner entity.EntityRef, origin string) document.AttachmentView {
	title := f.OriginalName
	if title == "" {
		title = f.FileName
	}
	ext := f.FileType
	if ext == "" {
		ext = document.FileExtension(f.FileName)
	}
	return document.AttachmentView{
		Kind:      document.KindFile,
		ID:        f.ID,
		Title:     title,
		Name:      f.FileName,
		FileType:  ext,
		Class:     document.ClassifyExtension(ext),
		FileSize:  f.FileSize,
		Owner:     owner,
		Origin:    origin,
		CreatedAt: f.UploadedAt,
	}
}

type AttachmentFilter struct {
	Query string
	Class document.FileClass
}

// FilterAttachments keeps views whose title or name contains Query
// (case-insensitive) and whose class matches Class.
func FilterAttachments(views []document.AttachmentView, f AttachmentFilter) []document.AttachmentView {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]document.AttachmentView, 0, len(views))
	for _, v := range views {
		if f.Class != "" && f.Class != document.ClassAll && v.Class != f.Class {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(v.Title), q) &&
			!strings.Contains(strings.ToLower(v.Name), q) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// SortAttachments orders views newest first. Ties keep their input order.
func SortAttachments(views []document.AttachmentView) []document.AttachmentView {
	out := make([]document.AttachmentView, len(views))
	copy(out, views)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

type AttachmentSelection struct {
	FormIDs []int64
	FileIDs []string
}

// SelectDeletable narrows a selection to items the owner actually owns.
// Origin-tagged items belong to another record and are returned as skipped.
func SelectDeletable(views []document.AttachmentView, sel AttachmentSelection) (AttachmentSelection, []string) {
	readOnly := make(map[string]bool)
	for _, v := range views {
		if v.ReadOnly() {
			readOnly[string(v.Kind)+":"+v.ID] = true
		}
	}

	var keep AttachmentSelection
	var skipped []string
	for _, id := range sel.FormIDs {
		key := string(document.KindForm) + ":" + strconv.FormatInt(id, 10)
		if readOnly[key] {
			skipped = append(skipped, key)
			continue
		}
		keep.FormIDs = append(keep.FormIDs, id)
	}
	for _, id := range sel.FileIDs {
		key := string(document.KindFile) + ":" + id
		if readOnly[key] {
			skipped = append(skipped, key)
			continue
		}
		keep.FileIDs = append(keep.FileIDs, id)
	}
	return keep, skipped
}
