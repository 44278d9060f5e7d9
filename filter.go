package exposure

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/exposure/date"
)

// ErrEmptySelection is matched by every EmptySelectionError.
var ErrEmptySelection = errors.New("empty selection")

// ErrInvalidWindow reports a maturity window that ends before it starts.
var ErrInvalidWindow = errors.New("maturity window ends before it starts")

// EmptySelectionError halts a run when a choice resolves to nothing. The user
// is expected to widen the selection.
type EmptySelectionError struct {
	What string // "clients", "stocks" or "maturities"
}

func (e *EmptySelectionError) Error() string {
	return fmt.Sprintf("empty selection: no %s selected", e.What)
}

func (e *EmptySelectionError) Is(target error) bool { return target == ErrEmptySelection }

// Prompt is the message asking the user to widen the selection.
func (e *EmptySelectionError) Prompt() string {
	singular := map[string]string{"clients": "client", "stocks": "stock", "maturities": "maturity"}[e.What]
	if singular == "" {
		singular = e.What
	}
	return fmt.Sprintf("Please select at least one %s.", singular)
}

// Filtered is the outcome of Filter.
type Filtered struct {
	Selection Selection
	// Clients and Stocks are the resolved choices.
	Clients []string
	Stocks  []string
	// AllClients is true when every client of the dataset is selected.
	AllClients bool
	// Maturing lists the products maturing in the window, over the whole dataset.
	Maturing []string
	// Included lists the maturing products assumed to roll off.
	Included []string
	// Records are the rows of the selected clients and stocks, whatever their maturity.
	Records []Record

	included map[string]bool
}

// IsIncluded reports whether product was opted in as an upcoming maturity.
func (f *Filtered) IsIncluded(product string) bool { return f.included[product] }

// Title names the selected clients: "All Clients" or their names joined by "; ".
func (f *Filtered) Title() string {
	if f.AllClients {
		return "All Clients"
	}
	return strings.Join(f.Clients, "; ")
}

// MaturingProducts returns the distinct products maturing in window, in order
// of first appearance.
func MaturingProducts(records []Record, window date.Range) []string {
	var maturing []Record
	for _, r := range records {
		if window.Contains(r.Maturity) {
			maturing = append(maturing, r)
		}
	}
	return Products(maturing)
}

// Filter applies a selection to the full dataset.
//
// It fails with an EmptySelectionError when no client, no stock or no maturing
// product is selected, in that order, and with ErrInvalidWindow for an inverted
// window.
func Filter(records []Record, sel Selection) (*Filtered, error) {
	allClients := Clients(records)
	clients := sel.Clients.Resolve(allClients)
	if len(clients) == 0 {
		return nil, &EmptySelectionError{What: "clients"}
	}
	stocks := sel.Stocks.Resolve(Stocks(records))
	if len(stocks) == 0 {
		return nil, &EmptySelectionError{What: "stocks"}
	}
	if !sel.Window.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWindow, sel.Window)
	}
	maturing := MaturingProducts(records, sel.Window)
	included := sel.Products.Resolve(maturing)
	if len(included) == 0 {
		return nil, &EmptySelectionError{What: "maturities"}
	}

	f := &Filtered{
		Selection:  sel,
		Clients:    clients,
		Stocks:     stocks,
		AllClients: len(clients) == len(allClients),
		Maturing:   maturing,
		Included:   included,
		included:   set(included),
	}
	isClient, isStock := set(clients), set(stocks)
	for _, r := range records {
		if isClient[r.Client] && isStock[r.Stock] {
			f.Records = append(f.Records, r)
		}
	}
	return f, nil
}

func set(values []string) map[string]bool {
	s := make(map[string]bool, len(values))
	for _, v := range values {
		s[v] = true
	}
	return s
}
