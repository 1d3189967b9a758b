package integration

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sit722-devops/week09/internal/config"
	"github.com/sit722-devops/week09/internal/domain/models"
	"github.com/sit722-devops/week09/internal/repository/memory"
	"github.com/sit722-devops/week09/internal/server/handlers"
	"github.com/sit722-devops/week09/internal/server/router"
	catalogsvc "github.com/sit722-devops/week09/internal/service/catalog"
	"github.com/sit722-devops/week09/internal/term"
	catalogclient "github.com/sit722-devops/week09/pkg/clients/catalog"
)

type recordingView struct {
	mu    sync.Mutex
	last  []models.Product
	notes []models.Notification
}

func (v *recordingView) RenderLoading() {}

func (v *recordingView) RenderLoadFailed() {}

func (v *recordingView) RenderProducts(products []models.Product) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.last = products
}

func (v *recordingView) ShowNotification(n models.Notification) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notes = append(v.notes, n)
}

func (v *recordingView) ClearNotification() {}

func (v *recordingView) products() []models.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.last
}

func (v *recordingView) allNotes() []models.Notification {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.Notification, len(v.notes))
	copy(out, v.notes)
	return out
}

func newBrowserAgainstLiveServer(t *testing.T, confirm catalogsvc.ConfirmFunc) (*catalogsvc.Browser, *recordingView) {
	t.Helper()

	engine := router.New(handlers.NewProductHandler(memory.NewStore(), zap.NewNop()), zap.NewNop())
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	api := catalogclient.NewClient(config.APIConfig{BaseURL: srv.URL})
	view := &recordingView{}

	b := catalogsvc.New(config.ConsoleConfig{NotificationTTL: time.Minute}, api, view, confirm, zap.NewNop())
	t.Cleanup(b.Close)
	return b, view
}

func TestBrowserLifecycleAgainstLiveServer(t *testing.T) {
	var prompts []string
	confirm := func(prompt string) bool {
		prompts = append(prompts, prompt)
		return true
	}
	b, view := newBrowserAgainstLiveServer(t, confirm)

	// Initial load of an empty catalog.
	b.Refresh()
	b.Wait()
	assert.Empty(t, view.products())

	// Create through the full stack and observe the automatic re-fetch.
	b.Submit(models.ProductDraft{Name: "Integration Widget", Price: "9.50", Stock: "3", Description: "wired"})
	b.Wait()

	products := view.products()
	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Integration Widget", products[0].Name)
	assert.False(t, products[0].CreatedAt.IsZero())
	assert.True(t, b.Draft().IsZero())

	notes := view.allNotes()
	require.Len(t, notes, 1)
	assert.Equal(t, models.NotificationSuccess, notes[0].Kind)
	assert.Equal(t, `Product "Integration Widget" added successfully (ID: 1).`, notes[0].Message)

	// Server-side rejection surfaces its detail and keeps the draft.
	rejected := models.ProductDraft{Name: "Bad", Price: "-1", Stock: "3"}
	b.Submit(rejected)
	b.Wait()

	notes = view.allNotes()
	require.Len(t, notes, 2)
	assert.Equal(t, models.NotificationError, notes[1].Kind)
	assert.Contains(t, notes[1].Message, "price must be positive")
	assert.Equal(t, rejected, b.Draft())

	// Confirmed delete removes the product and re-fetches.
	b.Delete(1)
	b.Wait()

	require.Equal(t, []string{"Are you sure you want to delete product ID: 1?"}, prompts)
	assert.Empty(t, view.products())

	notes = view.allNotes()
	require.Len(t, notes, 3)
	assert.Equal(t, "Product ID: 1 deleted successfully.", notes[2].Message)

	// Deleting again reports the server's not-found detail.
	b.Delete(1)
	b.Wait()

	notes = view.allNotes()
	require.Len(t, notes, 4)
	assert.Equal(t, models.NotificationError, notes[3].Kind)
	assert.Equal(t, "Failed to delete product ID 1: Product not found", notes[3].Message)
}

// TestWireToRenderedCard walks one product from wire JSON through the resty
// client, the browser and the terminal renderer.
func TestWireToRenderedCard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"product_id":1,"name":"Widget","price":9.5,"stock_quantity":3,"description":null,"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z"}]`)
	}))
	t.Cleanup(srv.Close)

	api := catalogclient.NewClient(config.APIConfig{BaseURL: srv.URL})
	var out bytes.Buffer
	b := catalogsvc.New(config.ConsoleConfig{NotificationTTL: time.Minute}, api, term.NewRenderer(&out), nil, zap.NewNop())
	t.Cleanup(b.Close)

	b.Refresh()
	b.Wait()

	rendered := out.String()
	assert.Contains(t, rendered, "Widget (ID: 1)")
	assert.Contains(t, rendered, "Price: $9.50")
	assert.Contains(t, rendered, "Stock: 3")
	assert.Contains(t, rendered, "No description available")
}

func TestDeclinedDeleteLeavesCatalogUntouched(t *testing.T) {
	b, view := newBrowserAgainstLiveServer(t, func(string) bool { return false })

	b.Submit(models.ProductDraft{Name: "Keeper", Price: "1.00", Stock: "1"})
	b.Wait()
	require.Len(t, view.products(), 1)
	before := len(view.allNotes())

	b.Delete(1)
	b.Wait()

	// No network call happened: a fresh list still holds the product and no
	// new notification appeared.
	assert.Equal(t, before, len(view.allNotes()))

	b.Refresh()
	b.Wait()
	assert.Len(t, view.products(), 1)
}
