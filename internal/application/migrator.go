package application

import (
	"context"
	"fmt"
	"log"

	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/linskybing/workflow-go/internal/repository"
)

// Migrator copies form documents between records during workflow
// transitions such as converting an offer into a sale.
type Migrator struct {
	forms    repository.FormDocumentRepo
	resolver *ChainResolver
}

func NewMigrator(repos *repository.Repos, resolver *ChainResolver) *Migrator {
	return &Migrator{forms: repos.FormDocument, resolver: resolver}
}

// Copy copies every form document of source onto target. Errors are
// returned to the caller.
func (m *Migrator) Copy(ctx context.Context, source, target entity.EntityRef) (int, error) {
	if !source.Valid() {
		return 0, fmt.Errorf("%w: source %s", ErrInvalidEntityRef, source)
	}
	if !target.Valid() {
		return 0, fmt.Errorf("%w: target %s", ErrInvalidEntityRef, target)
	}
	if source == target {
		return 0, fmt.Errorf("%w: source and target are both %s", ErrInvalidRequest, source)
	}
	n, err := m.forms.Copy(ctx, source, target)
	if err != nil {
		return 0, fmt.Errorf("copy form documents from %s to %s: %w", source, target, err)
	}
	log.Printf("[Migrate] copied %d form documents %s -> %s", n, source, target)
	return n, nil
}

// CopyFromChain copies from each source in order and returns the total.
// A failing source is logged and skipped; later sources are still tried.
func (m *Migrator) CopyFromChain(ctx context.Context, target entity.EntityRef, sources []entity.EntityRef) int {
	total := 0
	for _, src := range sources {
		if src == target {
			continue
		}
		n, err := m.Copy(ctx, src, target)
		if err != nil {
			log.Printf("[Migrate] WARN copy from %s to %s failed: %v", src, target, err)
			continue
		}
		total += n
	}
	return total
}

// ChainSources returns the records CopyFromChain would read from when the
// caller does not name them explicitly.
func (m *Migrator) ChainSources(ctx context.Context, target entity.EntityRef, directLink *entity.EntityRef) []entity.EntityRef {
	return m.resolver.Resolve(ctx, target, directLink)
}
