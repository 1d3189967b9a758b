package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sit722-devops/week09/internal/config"
	"github.com/sit722-devops/week09/internal/domain/models"
	client "github.com/sit722-devops/week09/pkg/clients/catalog"
)

// View receives every rendering side effect the browser produces. It stands
// in for the DOM of the original web client; the browser only ever calls it
// from its owner goroutine, so implementations need no locking.
type View interface {
	RenderLoading()
	// RenderProducts replaces the list with one entry per product. An empty
	// slice must render the fixed "no products" placeholder, never an empty
	// container.
	RenderProducts(products []models.Product)
	// RenderLoadFailed replaces the list with the fixed error placeholder.
	RenderLoadFailed()
	ShowNotification(n models.Notification)
	ClearNotification()
}

// ConfirmFunc asks the user to approve a destructive action. Returning false
// aborts the operation before any network call is made.
type ConfirmFunc func(prompt string) bool

// Phase tracks where the product list is in its lifecycle.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

// Browser is the catalog client. It owns the last-fetched product snapshot,
// the visible notification and the create-form draft, and mutates them only
// on the owner goroutine started by New. Each operation runs as an
// independent asynchronous task whose completion is funneled back into that
// goroutine, so operations triggered in close succession are not serialized
// against one another: the last response to land determines the rendered
// list. In-flight requests are never cancelled; Close simply abandons their
// completions.
type Browser struct {
	api     client.Client
	view    View
	confirm ConfirmFunc
	logger  *zap.Logger

	ttl time.Duration
	now func() time.Time

	tasks chan task
	done  chan struct{}
	stop  sync.Once
	ops   sync.WaitGroup

	// Owner-goroutine state; never touched from anywhere else.
	phase    Phase
	products []models.Product
	note     *models.Notification
	noteSeq  uint64
	draft    models.ProductDraft
}

type task struct {
	fn  func()
	ack chan struct{}
}

// New wires a Browser around the given API client and view and starts its
// owner goroutine. The view must not be nil; a nil confirm declines every
// delete. Close releases the browser.
func New(cfg config.ConsoleConfig, api client.Client, view View, confirm ConfirmFunc, logger *zap.Logger) *Browser {
	if logger == nil {
		logger = zap.NewNop()
	}

	b := &Browser{
		api:     api,
		view:    view,
		confirm: confirm,
		logger:  logger,
		ttl:     cfg.NotificationTTL,
		now:     time.Now,
		tasks:   make(chan task),
		done:    make(chan struct{}),
	}
	if b.ttl <= 0 {
		b.ttl = 5 * time.Second
	}

	go b.loop()
	return b
}

func (b *Browser) loop() {
	for {
		select {
		case t := <-b.tasks:
			t.fn()
			close(t.ack)
		case <-b.done:
			return
		}
	}
}

// apply runs fn on the owner goroutine and waits until it has executed.
// After Close it becomes a no-op, so abandoned completions never reach the
// view.
func (b *Browser) apply(fn func()) {
	t := task{fn: fn, ack: make(chan struct{})}
	select {
	case b.tasks <- t:
		<-t.ack
	case <-b.done:
	}
}

// Close disposes the browser. The owner goroutine stops and in-flight
// operations are abandoned: their requests run to completion but their
// outcomes are dropped.
func (b *Browser) Close() {
	b.stop.Do(func() { close(b.done) })
}

// Wait blocks until every operation dispatched so far has run to completion,
// including the list re-fetch a successful mutation triggers.
func (b *Browser) Wait() {
	b.ops.Wait()
}

// Refresh reloads the product list asynchronously: loading placeholder,
// fetch, then either the rendered collection or the error placeholder plus an
// error notification carrying the failure reason. No retry is attempted.
func (b *Browser) Refresh() {
	b.ops.Add(1)
	go func() {
		defer b.ops.Done()
		b.refreshCycle(context.Background())
	}()
}

// Submit creates a product from the raw form draft asynchronously. Price and
// stock quantity must parse as numbers; an empty name is submitted as-is and
// left for the server to reject. The draft is retained for correction on any
// failure and cleared only once the server accepts the record, after which
// the list is re-fetched exactly once.
func (b *Browser) Submit(draft models.ProductDraft) {
	b.ops.Add(1)
	go func() {
		defer b.ops.Done()
		b.submitCycle(context.Background(), draft)
	}()
}

// Delete asks for confirmation and, when granted, deletes the product
// asynchronously. Declining aborts with no network call, no render and no
// notification. The prompt runs on the caller's goroutine so interactive
// confirmers may block. On success the list is re-fetched exactly once; on
// failure it stays in its last-rendered state.
func (b *Browser) Delete(id int64) {
	prompt := fmt.Sprintf("Are you sure you want to delete product ID: %d?", id)
	if b.confirm == nil || !b.confirm(prompt) {
		b.logger.Info("delete not confirmed", zap.Int64("product_id", id))
		return
	}

	b.ops.Add(1)
	go func() {
		defer b.ops.Done()
		b.deleteCycle(context.Background(), id)
	}()
}

// Draft returns the retained create-form values: empty after a successful
// create, the user's previous input after a failed one.
func (b *Browser) Draft() models.ProductDraft {
	var d models.ProductDraft
	b.apply(func() { d = b.draft })
	return d
}

// State reports where the product list is in its lifecycle.
func (b *Browser) State() Phase {
	var p Phase
	b.apply(func() { p = b.phase })
	return p
}

// Products returns a copy of the most recently fetched snapshot.
func (b *Browser) Products() []models.Product {
	var snapshot []models.Product
	b.apply(func() {
		snapshot = make([]models.Product, len(b.products))
		copy(snapshot, b.products)
	})
	return snapshot
}

func (b *Browser) refreshCycle(ctx context.Context) {
	b.apply(func() {
		b.phase = PhaseLoading
		b.view.RenderLoading()
	})

	products, err := b.api.ListProducts(ctx)
	if err != nil {
		b.logger.Error("list products failed", zap.Error(err))
		b.apply(func() {
			b.phase = PhaseFailed
			b.view.RenderLoadFailed()
			b.showNotification(models.NotificationError, fmt.Sprintf("Failed to load products: %v", err))
		})
		return
	}

	b.apply(func() {
		b.phase = PhaseLoaded
		b.products = products
		b.view.RenderProducts(products)
	})
}

func (b *Browser) submitCycle(ctx context.Context, draft models.ProductDraft) {
	req, err := draft.Parse()
	if err != nil {
		b.apply(func() {
			b.draft = draft
			b.showNotification(models.NotificationError, fmt.Sprintf("Failed to add product: %v", err))
		})
		return
	}

	created, err := b.api.CreateProduct(ctx, req)
	if err != nil {
		b.logger.Error("create product failed", zap.Error(err))
		b.apply(func() {
			b.draft = draft
			b.showNotification(models.NotificationError, fmt.Sprintf("Failed to add product: %v", err))
		})
		return
	}

	b.logger.Info("product created", zap.Int64("product_id", created.ID), zap.String("name", created.Name))
	b.apply(func() {
		b.draft = models.ProductDraft{}
		b.showNotification(models.NotificationSuccess, fmt.Sprintf("Product %q added successfully (ID: %d).", created.Name, created.ID))
	})

	b.refreshCycle(ctx)
}

func (b *Browser) deleteCycle(ctx context.Context, id int64) {
	if err := b.api.DeleteProduct(ctx, id); err != nil {
		b.logger.Error("delete product failed", zap.Int64("product_id", id), zap.Error(err))
		b.apply(func() {
			b.showNotification(models.NotificationError, fmt.Sprintf("Failed to delete product ID %d: %v", id, err))
		})
		return
	}

	b.logger.Info("product deleted", zap.Int64("product_id", id))
	b.apply(func() {
		b.showNotification(models.NotificationSuccess, fmt.Sprintf("Product ID: %d deleted successfully.", id))
	})

	b.refreshCycle(ctx)
}

// showNotification replaces the visible notification and schedules its
// expiry. Runs on the owner goroutine. A timer left over from an older
// notification never clears a newer one.
func (b *Browser) showNotification(kind models.NotificationKind, message string) {
	b.noteSeq++
	seq := b.noteSeq

	n := models.Notification{
		Message:      message,
		Kind:         kind,
		VisibleUntil: b.now().Add(b.ttl),
	}
	b.note = &n
	b.view.ShowNotification(n)

	time.AfterFunc(b.ttl, func() {
		b.apply(func() {
			if b.noteSeq != seq || b.note == nil {
				return
			}
			b.note = nil
			b.view.ClearNotification()
		})
	})
}
