package repository

import (
	"context"
	"fmt"

	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/linskybing/workflow-go/internal/domain/record"
	"gorm.io/gorm"
)

type OfferRepo interface {
	GetOfferByID(ctx context.Context, id int64) (record.Offer, error)
	AddActivity(ctx context.Context, id int64, input record.ActivityInput) error
	ListActivities(ctx context.Context, id int64) ([]record.Activity, error)
	WithTx(tx *gorm.DB) OfferRepo
}

type SaleRepo interface {
	GetSaleByID(ctx context.Context, id int64) (record.Sale, error)
	AddActivity(ctx context.Context, id int64, input record.ActivityInput) error
	ListActivities(ctx context.Context, id int64) ([]record.Activity, error)
	WithTx(tx *gorm.DB) SaleRepo
}

type ServiceOrderRepo interface {
	GetServiceOrderByID(ctx context.Context, id int64) (record.ServiceOrder, error)
	AddNote(ctx context.Context, id int64, content, noteType string) error
	ListNotes(ctx context.Context, id int64) ([]record.Note, error)
	WithTx(tx *gorm.DB) ServiceOrderRepo
}

type DispatchRepo interface {
	GetDispatchByID(ctx context.Context, id int64) (record.Dispatch, error)
	AddNote(ctx context.Context, id int64, content, noteType string) error
	ListNotes(ctx context.Context, id int64) ([]record.Note, error)
	WithTx(tx *gorm.DB) DispatchRepo
}

func addActivity(ctx context.Context, db *gorm.DB, ref entity.EntityRef, input record.ActivityInput) error {
	a := &record.Activity{
		EntityType:  ref.EntityType,
		EntityID:    ref.EntityID,
		Type:        input.Type,
		Description: input.Description,
		Details:     input.Details,
	}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("add activity to %s: %w", ref, err)
	}
	return nil
}

func listActivities(ctx context.Context, db *gorm.DB, ref entity.EntityRef) ([]record.Activity, error) {
	var activities []record.Activity
	err := db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", ref.EntityType, ref.EntityID).
		Order("created_at desc").
		Find(&activities).Error
	return activities, err
}

func addNote(ctx context.Context, db *gorm.DB, ref entity.EntityRef, content, noteType string) error {
	n := &record.Note{
		EntityType: ref.EntityType,
		EntityID:   ref.EntityID,
		Type:       noteType,
		Content:    content,
	}
	if err := db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("add note to %s: %w", ref, err)
	}
	return nil
}

func listNotes(ctx context.Context, db *gorm.DB, ref entity.EntityRef) ([]record.Note, error) {
	var notes []record.Note
	err := db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", ref.EntityType, ref.EntityID).
		Order("created_at desc").
		Find(&notes).Error
	return notes, err
}

// --- Offer ---

type DBOfferRepo struct {
	db *gorm.DB
}

func NewOfferRepo(db *gorm.DB) *DBOfferRepo {
	return &DBOfferRepo{db: db}
}

func (r *DBOfferRepo) GetOfferByID(ctx context.Context, id int64) (record.Offer, error) {
	var o record.Offer
	err := r.db.WithContext(ctx).First(&o, id).Error
	return o, err
}

// AddActivity refuses to log against an offer that does not exist and
// returns the wrapped gorm.ErrRecordNotFound instead.
func (r *DBOfferRepo) AddActivity(ctx context.Context, id int64, input record.ActivityInput) error {
	ref := entity.NewRef(entity.TypeOffer, id)
	if _, err := r.GetOfferByID(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", ref, err)
	}
	return addActivity(ctx, r.db, ref, input)
}

func (r *DBOfferRepo) ListActivities(ctx context.Context, id int64) ([]record.Activity, error) {
	return listActivities(ctx, r.db, entity.NewRef(entity.TypeOffer, id))
}

func (r *DBOfferRepo) WithTx(tx *gorm.DB) OfferRepo {
	if tx == nil {
		return r
	}
	return &DBOfferRepo{db: tx}
}

// --- Sale ---

type DBSaleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) *DBSaleRepo {
	return &DBSaleRepo{db: db}
}

func (r *DBSaleRepo) GetSaleByID(ctx context.Context, id int64) (record.Sale, error) {
	var s record.Sale
	err := r.db.WithContext(ctx).First(&s, id).Error
	return s, err
}

func (r *DBSaleRepo) AddActivity(ctx context.Context, id int64, input record.ActivityInput) error {
	ref := entity.NewRef(entity.TypeSale, id)
	if _, err := r.GetSaleByID(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", ref, err)
	}
	return addActivity(ctx, r.db, ref, input)
}

func (r *DBSaleRepo) ListActivities(ctx context.Context, id int64) ([]record.Activity, error) {
	return listActivities(ctx, r.db, entity.NewRef(entity.TypeSale, id))
}

func (r *DBSaleRepo) WithTx(tx *gorm.DB) SaleRepo {
	if tx == nil {
		return r
	}
	return &DBSaleRepo{db: tx}
}

// --- ServiceOrder ---

type DBServiceOrderRepo struct {
	db *gorm.DB
}

func NewServiceOrderRepo(db *gorm.DB) *DBServiceOrderRepo {
	return &DBServiceOrderRepo{db: db}
}

func (r *DBServiceOrderRepo) GetServiceOrderByID(ctx context.Context, id int64) (record.ServiceOrder, error) {
	var so record.ServiceOrder
	err := r.db.WithContext(ctx).First(&so, id).Error
	return so, err
}

func (r *DBServiceOrderRepo) AddNote(ctx context.Context, id int64, content, noteType string) error {
	ref := entity.NewRef(entity.TypeServiceOrder, id)
	if _, err := r.GetServiceOrderByID(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", ref, err)
	}
	return addNote(ctx, r.db, ref, content, noteType)
}

func (r *DBServiceOrderRepo) ListNotes(ctx context.Context, id int64) ([]record.Note, error) {
	return listNotes(ctx, r.db, entity.NewRef(entity.TypeServiceOrder, id))
}

func (r *DBServiceOrderRepo) WithTx(tx *gorm.DB) ServiceOrderRepo {
	if tx == nil {
		return r
	}
	return &DBServiceOrderRepo{db: tx}
}

// --- Dispatch ---

type DBDispatchRepo struct {
	db *gorm.DB
}

func NewDispatchRepo(db *gorm.DB) *DBDispatchRepo {
	return &DBDispatchRepo{db: db}
}

func (r *DBDispatchRepo) GetDispatchByID(ctx context.Context, id int64) (record.Dispatch, error) {
	var d record.Dispatch
	err := r.db.WithContext(ctx).First(&d, id).Error
	return d, err
}

func (r *DBDispatchRepo) AddNote(ctx context.Context, id int64, content, noteType string) error {
	ref := entity.NewRef(entity.TypeDispatch, id)
	if _, err := r.GetDispatchByID(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", ref, err)
	}
	return addNote(ctx, r.db, ref, content, noteType)
}

func (r *DBDispatchRepo) ListNotes(ctx context.Context, id int64) ([]record.Note, error) {
	return listNotes(ctx, r.db, entity.NewRef(entity.TypeDispatch, id))
}

func (r *DBDispatchRepo) WithTx(tx *gorm.DB) DispatchRepo {
	if tx == nil {
		return r
	}
	return &DBDispatchRepo{db: tx}
}
