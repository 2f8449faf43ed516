package entity

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type EntityType string

const (
	TypeOffer        EntityType = "offer"
	TypeSale         EntityType = "sale"
	TypeServiceOrder EntityType = "service_order"
	TypeDispatch     EntityType = "dispatch"
	TypeInstallation EntityType = "installation"
)

// WorkflowOrder is used for display grouping only. Chain traversal follows
// foreign keys, never this order.
var WorkflowOrder = []EntityType{
	TypeOffer,
	TypeSale,
	TypeServiceOrder,
	TypeDispatch,
	TypeInstallation,
}

var labels = map[EntityType]string{
	TypeOffer:        "Offer",
	TypeSale:         "Sale",
	TypeServiceOrder: "Service Order",
	TypeDispatch:     "Dispatch",
	TypeInstallation: "Installation",
}

var wireNames = map[EntityType]string{
	TypeOffer:        "Offer",
	TypeSale:         "Sale",
	TypeServiceOrder: "ServiceOrder",
	TypeDispatch:     "Dispatch",
	TypeInstallation: "Installation",
}

var ErrUnknownEntityType = errors.New("unknown entity type")

// Label returns the display label for t, or the raw value when t is unknown.
func Label(t EntityType) string {
	if l, ok := labels[t]; ok {
		return l
	}
	return string(t)
}

// WireName returns the PascalCase form the record services expect.
func WireName(t EntityType) string {
	if w, ok := wireNames[t]; ok {
		return w
	}
	return string(t)
}

func (t EntityType) Known() bool {
	_, ok := labels[t]
	return ok
}

// ParseEntityType accepts the canonical snake_case form as well as the
// wire casings used by the record services (ServiceOrder, service-order,
// SERVICE_ORDER).
func ParseEntityType(s string) (EntityType, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return "", ErrUnknownEntityType
	}
	if strings.ToUpper(raw) == raw {
		raw = strings.ToLower(raw)
	}

	var b strings.Builder
	for i, r := range raw {
		switch {
		case r == '-' || r == ' ':
			b.WriteByte('_')
		case r >= 'A' && r <= 'Z':
			if i > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}

	t := EntityType(b.String())
	if !t.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEntityType, s)
	}
	return t, nil
}

func workflowRank(t EntityType) int {
	for i, w := range WorkflowOrder {
		if w == t {
			return i
		}
	}
	return len(WorkflowOrder)
}

// EntityRef addresses a business record without fetching it. It is
// comparable and safe to use as a map key.
type EntityRef struct {
	EntityType EntityType `json:"entity_type"`
	EntityID   int64      `json:"entity_id"`
}

func NewRef(t EntityType, id int64) EntityRef {
	return EntityRef{EntityType: t, EntityID: id}
}

// Valid reports whether the ref names a known type with a positive id.
func (r EntityRef) Valid() bool {
	return r.EntityType.Known() && r.EntityID > 0
}

func (r EntityRef) String() string {
	return fmt.Sprintf("%s#%d", r.EntityType, r.EntityID)
}

// SortByWorkflow orders refs by workflow position, then id. The input slice
// is not modified.
func SortByWorkflow(refs []EntityRef) []EntityRef {
	out := make([]EntityRef, len(refs))
	copy(out, refs)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := workflowRank(out[i].EntityType), workflowRank(out[j].EntityType)
		if ri != rj {
			return ri < rj
		}
		return out[i].EntityID < out[j].EntityID
	})
	return out
}

func GroupByWorkflow(refs []EntityRef) map[EntityType][]EntityRef {
	grouped := make(map[EntityType][]EntityRef)
	for _, r := range SortByWorkflow(refs) {
		grouped[r.EntityType] = append(grouped[r.EntityType], r)
	}
	return grouped
}
