package application

import (
	"github.com/linskybing/workflow-go/internal/config"
	"github.com/linskybing/workflow-go/internal/repository"
	"github.com/linskybing/workflow-go/internal/storage"
)

type Services struct {
	Chain       *ChainResolver
	Propagation *Propagator
	Aggregator  *Aggregator
	Migrator    *Migrator
	Form        *FormService
	File        *FileService
	Attachment  *AttachmentService
	Trail       *TrailService
}

func New(repos *repository.Repos, store storage.ObjectStore) *Services {
	chain := NewChainResolver(repos, config.GatewayTimeout)
	propagation := NewPropagator(chain, NewNotifierRegistry(repos), config.PropagationConcurrency, config.GatewayTimeout, config.DefaultLocale)
	aggregator := NewAggregator(repos, config.PropagationConcurrency, config.GatewayTimeout)
	form := NewFormService(repos, propagation)
	file := NewFileService(repos, store)

	return &Services{
		Chain:       chain,
		Propagation: propagation,
		Aggregator:  aggregator,
		Migrator:    NewMigrator(repos, chain),
		Form:        form,
		File:        file,
		Attachment:  NewAttachmentService(aggregator, form, file),
		Trail:       NewTrailService(repos),
	}
}
