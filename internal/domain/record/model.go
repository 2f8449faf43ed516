package record

import (
	"time"

	"github.com/linskybing/workflow-go/internal/domain/entity"
)

type Offer struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Sale struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	OfferID   *int64    `json:"offer_id" gorm:"index"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ServiceOrder struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	SaleID    *int64    `json:"sale_id" gorm:"index"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Dispatch struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	ServiceOrderID *int64    `json:"service_order_id" gorm:"index"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Activity is the audit entry kind used by offers and sales.
type Activity struct {
	ID          int64             `json:"id" gorm:"primaryKey"`
	EntityType  entity.EntityType `json:"entity_type" gorm:"size:32;not null;index:idx_activity_entity"`
	EntityID    int64             `json:"entity_id" gorm:"not null;index:idx_activity_entity"`
	Type        string            `json:"type" gorm:"size:64;not null"`
	Description string            `json:"description" gorm:"type:text"`
	Details     string            `json:"details" gorm:"type:text"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Note is the audit entry kind used by service orders and dispatches.
// Content holds description and details joined by a newline.
type Note struct {
	ID         int64             `json:"id" gorm:"primaryKey"`
	EntityType entity.EntityType `json:"entity_type" gorm:"size:32;not null;index:idx_note_entity"`
	EntityID   int64             `json:"entity_id" gorm:"not null;index:idx_note_entity"`
	Type       string            `json:"type" gorm:"size:64;not null"`
	Content    string            `json:"content" gorm:"type:text"`
	CreatedAt  time.Time         `json:"created_at"`
}

// ActivityInput mirrors the addActivity payload of the offer and sale services.
type ActivityInput struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Details     string `json:"details"`
}
