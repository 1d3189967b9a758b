package session

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sit722-devops/week09/internal/domain/models"
	"github.com/sit722-devops/week09/internal/term"
)

// fakeCatalog records calls. The session drives it from one goroutine, so no
// locking is needed.
type fakeCatalog struct {
	refreshes int
	submits   []models.ProductDraft
	deletes   []int64
	draft     models.ProductDraft
}

func (f *fakeCatalog) Refresh() { f.refreshes++ }

func (f *fakeCatalog) Submit(d models.ProductDraft) { f.submits = append(f.submits, d) }

func (f *fakeCatalog) Delete(id int64) { f.deletes = append(f.deletes, id) }

func (f *fakeCatalog) Draft() models.ProductDraft { return f.draft }

func (f *fakeCatalog) Wait() {}

type fakeReporter struct{}

func (fakeReporter) CatalogSummary() string { return "summary-line" }
func (fakeReporter) PricingSummary() string { return "pricing-line" }
func (fakeReporter) StockAlerts() string    { return "alerts-line" }

func runSession(t *testing.T, catalog *fakeCatalog, input string) string {
	t.Helper()

	var out bytes.Buffer
	prompt := term.NewPrompt(strings.NewReader(input), &out)
	sess := NewSession(catalog, prompt, fakeReporter{}, &out, zap.NewNop())

	require.NoError(t, sess.Run(context.Background()))
	return out.String()
}

func TestSessionInitialLoadAndList(t *testing.T) {
	catalog := &fakeCatalog{}
	runSession(t, catalog, "list\nquit\n")

	// One initial load plus one explicit list command.
	assert.Equal(t, 2, catalog.refreshes)
}

func TestSessionAddWalksFormAndSubmits(t *testing.T) {
	catalog := &fakeCatalog{}
	out := runSession(t, catalog, "add\nWidget\n9.50\n3\nhandy\nquit\n")

	require.Len(t, catalog.submits, 1)
	assert.Equal(t, models.ProductDraft{
		Name:        "Widget",
		Price:       "9.50",
		Stock:       "3",
		Description: "handy",
	}, catalog.submits[0])

	assert.Contains(t, out, "Name: ")
	assert.Contains(t, out, "Price: ")
	assert.Contains(t, out, "Stock quantity: ")
	assert.Contains(t, out, "Description (optional): ")
}

func TestSessionAddPrefillsRetainedDraft(t *testing.T) {
	catalog := &fakeCatalog{draft: models.ProductDraft{
		Name:        "Widget",
		Price:       "oops",
		Stock:       "3",
		Description: "handy",
	}}

	// Empty answers keep the retained values; only the price is corrected.
	out := runSession(t, catalog, "add\n\n9.50\n\n\nquit\n")

	require.Len(t, catalog.submits, 1)
	assert.Equal(t, models.ProductDraft{
		Name:        "Widget",
		Price:       "9.50",
		Stock:       "3",
		Description: "handy",
	}, catalog.submits[0])

	assert.Contains(t, out, "Name [Widget]: ")
	assert.Contains(t, out, "Price [oops]: ")
}

func TestSessionAddStopsOnEOF(t *testing.T) {
	catalog := &fakeCatalog{}
	runSession(t, catalog, "add\nWidget\n")

	assert.Empty(t, catalog.submits, "an aborted form must not submit")
}

func TestSessionDeleteWithArgument(t *testing.T) {
	catalog := &fakeCatalog{}
	runSession(t, catalog, "delete 4\nquit\n")

	assert.Equal(t, []int64{4}, catalog.deletes)
}

func TestSessionDeletePromptsWhenNoArgument(t *testing.T) {
	catalog := &fakeCatalog{}
	out := runSession(t, catalog, "delete\n12\nquit\n")

	assert.Equal(t, []int64{12}, catalog.deletes)
	assert.Contains(t, out, "Product ID: ")
}

func TestSessionDeleteRejectsNonNumericID(t *testing.T) {
	catalog := &fakeCatalog{}
	out := runSession(t, catalog, "delete abc\nquit\n")

	assert.Empty(t, catalog.deletes, "a non-numeric ID must never reach the catalog")
	assert.Contains(t, out, `Product ID must be a whole number, got "abc".`)
}

func TestSessionStats(t *testing.T) {
	catalog := &fakeCatalog{}
	out := runSession(t, catalog, "stats\nquit\n")

	assert.Contains(t, out, "summary-line")
	assert.Contains(t, out, "pricing-line")
	assert.Contains(t, out, "alerts-line")
}

func TestSessionHelpAndUnknown(t *testing.T) {
	catalog := &fakeCatalog{}
	out := runSession(t, catalog, "help\nbogus\nquit\n")

	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, `Unknown command "bogus".`)
}

func TestSessionStopsWhenContextCancelled(t *testing.T) {
	catalog := &fakeCatalog{}
	prompt := term.NewPrompt(strings.NewReader("list\n"), &bytes.Buffer{})
	sess := NewSession(catalog, prompt, nil, &bytes.Buffer{}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, sess.Run(ctx))
	assert.Equal(t, 1, catalog.refreshes, "only the initial load runs before cancellation is noticed")
}
