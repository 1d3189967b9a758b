package session

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/sit722-devops/week09/internal/domain/models"
)

// Catalog is the browser surface the session drives. Operations are
// asynchronous; Wait blocks until the ones dispatched so far have settled so
// their output lands before the next prompt.
type Catalog interface {
	Refresh()
	Submit(draft models.ProductDraft)
	Delete(id int64)
	Draft() models.ProductDraft
	Wait()
}

// Prompter gathers interactive input for commands and form fields.
type Prompter interface {
	ReadLine(label string) (line string, ok bool)
	ReadLineDefault(label, def string) (line string, ok bool)
}

// Reporter produces the analytics lines for the stats command.
type Reporter interface {
	CatalogSummary() string
	PricingSummary() string
	StockAlerts() string
}

const helpText = `Commands:
  list          Re-fetch and render the product list
  add           Add a product (prompts for each field)
  delete <id>   Delete a product after confirmation
  stats         Show catalog analytics
  help          Show this message
  quit          Exit`

// Session runs the interactive command loop against the catalog browser.
type Session struct {
	catalog Catalog
	prompt  Prompter
	report  Reporter
	out     io.Writer
	logger  *zap.Logger
}

// NewSession constructs a session. The reporter may be nil, which disables
// the stats command.
func NewSession(catalog Catalog, prompt Prompter, report Reporter, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		catalog: catalog,
		prompt:  prompt,
		report:  report,
		out:     out,
		logger:  logger,
	}
}

// Run triggers the initial catalog load and then reads commands until the
// user quits, the input stream ends or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	s.catalog.Refresh()
	s.catalog.Wait()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session cancelled")
			return nil
		default:
		}

		line, ok := s.prompt.ReadLine("catalog")
		if !ok {
			s.logger.Info("input exhausted, leaving session")
			return nil
		}
		if line == "" {
			continue
		}

		cmd := models.ParseCommand(line)
		s.logger.Debug("dispatching command", zap.String("command", string(cmd.Type)), zap.Any("args", cmd.Args))

		switch cmd.Type {
		case models.CommandList:
			s.catalog.Refresh()
			s.catalog.Wait()
		case models.CommandAdd:
			if !s.handleAdd() {
				return nil
			}
		case models.CommandDelete:
			s.handleDelete(cmd)
		case models.CommandStats:
			s.handleStats()
		case models.CommandHelp:
			fmt.Fprintln(s.out, helpText)
		case models.CommandQuit:
			return nil
		default:
			fmt.Fprintf(s.out, "Unknown command %q. Type 'help' for the list.\n", cmd.Raw)
		}
	}
}

// handleAdd walks the create form. Fields are pre-filled with the retained
// draft so a rejected submission can be corrected instead of retyped. Returns
// false when the input stream ends mid-form.
func (s *Session) handleAdd() bool {
	draft := s.catalog.Draft()

	name, ok := s.prompt.ReadLineDefault("Name", draft.Name)
	if !ok {
		return false
	}
	price, ok := s.prompt.ReadLineDefault("Price", draft.Price)
	if !ok {
		return false
	}
	stock, ok := s.prompt.ReadLineDefault("Stock quantity", draft.Stock)
	if !ok {
		return false
	}
	description, ok := s.prompt.ReadLineDefault("Description (optional)", draft.Description)
	if !ok {
		return false
	}

	s.catalog.Submit(models.ProductDraft{
		Name:        name,
		Price:       price,
		Stock:       stock,
		Description: description,
	})
	s.catalog.Wait()
	return true
}

// handleDelete parses the target ID and hands it to the browser, which owns
// the confirmation step. A non-numeric ID never reaches the network.
func (s *Session) handleDelete(cmd models.Command) {
	raw := ""
	if len(cmd.Args) > 0 {
		raw = cmd.Args[0]
	} else {
		line, ok := s.prompt.ReadLine("Product ID")
		if !ok {
			return
		}
		raw = line
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Product ID must be a whole number, got %q.\n", raw)
		return
	}

	s.catalog.Delete(id)
	s.catalog.Wait()
}

func (s *Session) handleStats() {
	if s.report == nil {
		fmt.Fprintln(s.out, "Stats are not available.")
		return
	}
	fmt.Fprintln(s.out, s.report.CatalogSummary())
	fmt.Fprintln(s.out, s.report.PricingSummary())
	fmt.Fprintln(s.out, s.report.StockAlerts())
}
