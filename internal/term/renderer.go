// Package term implements the terminal front end: a renderer that plays the
// role of the page for the catalog browser, and a line-based prompt for user
// input.
package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/sit722-devops/week09/internal/domain/models"
)

const (
	loadingText    = "Loading products..."
	loadFailedText = "Failed to load products."
	noProductsText = "No products found."
	noDescription  = "No description available"
	timeLayout     = "2006-01-02 15:04"
)

// Renderer writes the product list and notification banners to out. The
// browser drives it from a single goroutine, so it keeps no locks.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) RenderLoading() {
	fmt.Fprintln(r.out, loadingText)
}

func (r *Renderer) RenderLoadFailed() {
	fmt.Fprintln(r.out, loadFailedText)
}

// RenderProducts prints one card per product in server order. An empty list
// prints the placeholder text instead of nothing.
func (r *Renderer) RenderProducts(products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(r.out, noProductsText)
		return
	}

	for _, p := range products {
		desc := strings.TrimSpace(p.Description)
		if desc == "" {
			desc = noDescription
		}
		fmt.Fprintf(r.out, "%s (ID: %d)\n", p.Name, p.ID)
		fmt.Fprintf(r.out, "  Price: $%.2f\n", p.Price)
		fmt.Fprintf(r.out, "  Stock: %d\n", p.Stock)
		fmt.Fprintf(r.out, "  %s\n", desc)
		if !p.CreatedAt.IsZero() {
			fmt.Fprintf(r.out, "  Added: %s, updated: %s\n",
				p.CreatedAt.Local().Format(timeLayout),
				p.UpdatedAt.Local().Format(timeLayout))
		}
	}
}

func (r *Renderer) ShowNotification(n models.Notification) {
	tag := "OK"
	if n.Kind == models.NotificationError {
		tag = "ERROR"
	}
	fmt.Fprintf(r.out, "[%s] %s\n", tag, n.Message)
}

// ClearNotification is a no-op: terminal output is append-only, so an expired
// banner simply scrolls away instead of being erased.
func (r *Renderer) ClearNotification() {}
