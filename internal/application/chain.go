package application

import (
	"context"
	"log"
	"time"

	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/linskybing/workflow-go/internal/repository"
)

// ChainResolver discovers the records linked to a source record by walking
// the saleId and offerId foreign keys. The chain is rebuilt on every call.
type ChainResolver struct {
	serviceOrders repository.ServiceOrderRepo
	sales         repository.SaleRepo
	timeout       time.Duration
}

func NewChainResolver(repos *repository.Repos, timeout time.Duration) *ChainResolver {
	return &ChainResolver{
		serviceOrders: repos.ServiceOrder,
		sales:         repos.Sale,
		timeout:       timeout,
	}
}

// chain is the dedup-preserving result of one Resolve call.
type chain struct {
	refs []entity.EntityRef
	seen map[entity.EntityRef]struct{}
}

func (c *chain) add(ref entity.EntityRef) {
	if !ref.Valid() {
		return
	}
	if _, dup := c.seen[ref]; dup {
		return
	}
	c.seen[ref] = struct{}{}
	c.refs = append(c.refs, ref)
}

// Resolve returns the records other than source that should hear about an
// event on source, in discovery order: the direct link first, then the
// ancestors found through it. Lookup failures end the branch they occur in
// and never fail the call.
func (r *ChainResolver) Resolve(ctx context.Context, source entity.EntityRef, directLink *entity.EntityRef) []entity.EntityRef {
	c := &chain{seen: make(map[entity.EntityRef]struct{})}

	hasLink := directLink != nil && directLink.Valid()
	if hasLink {
		c.add(*directLink)
	}

	var serviceOrderID int64
	switch {
	case source.EntityType == entity.TypeDispatch || (hasLink && directLink.EntityType == entity.TypeServiceOrder):
		if hasLink && directLink.EntityType == entity.TypeServiceOrder {
			serviceOrderID = directLink.EntityID
		}
	case source.EntityType == entity.TypeServiceOrder:
		if source.Valid() {
			serviceOrderID = source.EntityID
		}
	}

	if serviceOrderID > 0 {
		r.followServiceOrder(ctx, serviceOrderID, c)
	}

	return c.refs
}

func (r *ChainResolver) followServiceOrder(ctx context.Context, id int64, c *chain) {
	lookupCtx, cancel := r.lookupContext(ctx)
	so, err := r.serviceOrders.GetServiceOrderByID(lookupCtx, id)
	cancel()
	if err != nil {
		log.Printf("[ChainResolver] WARN lookup %s failed: %v", entity.NewRef(entity.TypeServiceOrder, id), err)
		return
	}
	if so.SaleID == nil || *so.SaleID <= 0 {
		return
	}
	c.add(entity.NewRef(entity.TypeSale, *so.SaleID))

	lookupCtx, cancel = r.lookupContext(ctx)
	sale, err := r.sales.GetSaleByID(lookupCtx, *so.SaleID)
	cancel()
	if err != nil {
		log.Printf("[ChainResolver] WARN lookup %s failed: %v", entity.NewRef(entity.TypeSale, *so.SaleID), err)
		return
	}
	if sale.OfferID == nil || *sale.OfferID <= 0 {
		return
	}
	c.add(entity.NewRef(entity.TypeOffer, *sale.OfferID))
}

func (r *ChainResolver) lookupContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout > 0 {
		return context.WithTimeout(ctx, r.timeout)
	}
	return context.WithCancel(ctx)
}
