package application

import (
	"context"
	"log"
	"time"

	"github.com/linskybing/workflow-go/internal/domain/entity"
	"golang.org/x/sync/errgroup"
)

type PropagationRequest struct {
	Subject    string
	Source     entity.EntityRef
	DirectLink *entity.EntityRef
	Action     Action
	Locale     string
}

type TargetOutcome struct {
	Target  entity.EntityRef `json:"target"`
	Derived bool             `json:"derived"`
	Err     error            `json:"-"`
	Error   string           `json:"error,omitempty"`
}

func (o TargetOutcome) OK() bool {
	return o.Err == nil
}

// PropagationReport records the outcome of every notification attempted by
// one Propagate call.
type PropagationReport struct {
	Source  TargetOutcome   `json:"source"`
	Targets []TargetOutcome `json:"targets"`
}

func (r PropagationReport) Delivered() int {
	n := 0
	if r.Source.OK() {
		n++
	}
	for _, t := range r.Targets {
		if t.OK() {
			n++
		}
	}
	return n
}

func (r PropagationReport) Failures() []TargetOutcome {
	var failed []TargetOutcome
	if !r.Source.OK() {
		failed = append(failed, r.Source)
	}
	for _, t := range r.Targets {
		if !t.OK() {
			failed = append(failed, t)
		}
	}
	return failed
}

// Propagator broadcasts checklist events to a record and its workflow chain.
type Propagator struct {
	resolver      *ChainResolver
	notifiers     NotifierRegistry
	concurrency   int
	timeout       time.Duration
	defaultLocale string
}

func NewPropagator(resolver *ChainResolver, notifiers NotifierRegistry, concurrency int, timeout time.Duration, defaultLocale string) *Propagator {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Propagator{
		resolver:      resolver,
		notifiers:     notifiers,
		concurrency:   concurrency,
		timeout:       timeout,
		defaultLocale: defaultLocale,
	}
}

// Propagate notifies the source with the self message, then every other
// record in its chain with the derived message. Each target is attempted
// once; failures are logged and reported, never returned.
func (p *Propagator) Propagate(ctx context.Context, req PropagationRequest) PropagationReport {
	kind := req.Action.NoteKind()
	self, derived := BuildMessages(req.Locale, p.defaultLocale, req.Action, req.Subject, req.Source)

	report := PropagationReport{
		Source: p.deliver(ctx, req.Source, kind, self, false),
	}

	var targets []entity.EntityRef
	for _, ref := range p.resolver.Resolve(ctx, req.Source, req.DirectLink) {
		if ref == req.Source {
			continue
		}
		targets = append(targets, ref)
	}
	if len(targets) == 0 {
		return report
	}

	outcomes := make([]TargetOutcome, len(targets))
	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			outcomes[i] = p.deliver(ctx, target, kind, derived, true)
			return nil
		})
	}
	_ = g.Wait()

	report.Targets = outcomes
	return report
}

// PropagateAsync runs Propagate detached from the caller's cancellation.
func (p *Propagator) PropagateAsync(ctx context.Context, req PropagationRequest) {
	detached := context.WithoutCancel(ctx)
	go func() {
		report := p.Propagate(detached, req)
		log.Printf("[Propagate] %s %s on %s: %d delivered, %d failed",
			req.Action, req.Subject, req.Source, report.Delivered(), len(report.Failures()))
	}()
}

func (p *Propagator) deliver(ctx context.Context, target entity.EntityRef, kind NoteKind, msg MessagePair, derived bool) TargetOutcome {
	out := TargetOutcome{Target: target, Derived: derived}
	if err := p.notifiers.Notify(ctx, target, kind, msg, p.timeout); err != nil {
		log.Printf("[Propagate] WARN notify %s (%s) failed: %v", target, kind, err)
		out.Err = err
		out.Error = err.Error()
	}
	return out
}
