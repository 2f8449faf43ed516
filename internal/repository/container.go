package repository

import (
	"github.com/linskybing/workflow-go/internal/domain/document"
	"github.com/linskybing/workflow-go/internal/domain/record"
	"gorm.io/gorm"
)

type Repos struct {
	Offer        OfferRepo
	Sale         SaleRepo
	ServiceOrder ServiceOrderRepo
	Dispatch     DispatchRepo
	FormDocument FormDocumentRepo
	FormTemplate FormTemplateRepo
	UploadedFile UploadedFileRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Offer:        NewOfferRepo(db),
		Sale:         NewSaleRepo(db),
		ServiceOrder: NewServiceOrderRepo(db),
		Dispatch:     NewDispatchRepo(db),
		FormDocument: NewFormDocumentRepo(db),
		FormTemplate: NewFormTemplateRepo(db),
		UploadedFile: NewUploadedFileRepo(db),
		db:           db,
	}
}

// Models lists every table owned by this service, in migration order.
func Models() []any {
	return []any{
		&record.Offer{},
		&record.Sale{},
		&record.ServiceOrder{},
		&record.Dispatch{},
		&record.Activity{},
		&record.Note{},
		&document.FormTemplate{},
		&document.FormDocument{},
		&document.UploadedFile{},
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Offer:        r.Offer.WithTx(tx),
		Sale:         r.Sale.WithTx(tx),
		ServiceOrder: r.ServiceOrder.WithTx(tx),
		Dispatch:     r.Dispatch.WithTx(tx),
		FormDocument: r.FormDocument.WithTx(tx),
		FormTemplate: r.FormTemplate.WithTx(tx),
		UploadedFile: r.UploadedFile.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn against repos bound to a single transaction. Repos
// assembled without a database (mocked gateways) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
