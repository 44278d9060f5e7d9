package exposure

import (
	"fmt"

	"github.com/etnz/exposure/date"
)

// DefaultWindowDays is the length of the default maturity window.
const DefaultWindowDays = 14

// Selection is the user input of one dashboard run.
type Selection struct {
	Clients Choice
	Stocks  Choice
	// Window is the maturity window; products maturing in it are candidates to
	// roll off the future portfolio.
	Window date.Range
	// Products picks among the products maturing in Window the ones assumed to
	// roll off.
	Products Choice
}

// DefaultSelection selects every client, stock and maturing product, in a
// window from today to DefaultWindowDays days later.
func DefaultSelection(today date.Date) Selection {
	return Selection{
		Clients:  All(),
		Stocks:   All(),
		Window:   date.Days(today, DefaultWindowDays),
		Products: All(),
	}
}

// SelectionQuery is the textual form of a Selection, as typed on the command
// line or in a URL query. Empty fields take their default.
type SelectionQuery struct {
	Clients  string // "all", "none" or a comma separated list
	Stocks   string
	Products string
	From     string // window start, today by default
	To       string // window end, WindowDays after From by default
	Today    string // reference day of relative dates
	// WindowDays is the default window length, DefaultWindowDays when 0.
	WindowDays int
}

// Parse parses q. Dates may be relative ("-1w", "+14d") to today, or to
// q.Today when set.
func (q SelectionQuery) Parse(today date.Date) (Selection, error) {
	if q.Today != "" {
		d, err := date.ParseAt(today, q.Today)
		if err != nil {
			return Selection{}, fmt.Errorf("invalid today date: %w", err)
		}
		today = d
	}
	days := q.WindowDays
	if days == 0 {
		days = DefaultWindowDays
	}

	sel := DefaultSelection(today)
	sel.Clients = ParseChoice(q.Clients)
	sel.Stocks = ParseChoice(q.Stocks)
	sel.Products = ParseChoice(q.Products)
	if q.From != "" {
		d, err := date.ParseAt(today, q.From)
		if err != nil {
			return Selection{}, fmt.Errorf("invalid from date: %w", err)
		}
		sel.Window.From = d
	}
	sel.Window.To = sel.Window.From.Add(days)
	if q.To != "" {
		d, err := date.ParseAt(today, q.To)
		if err != nil {
			return Selection{}, fmt.Errorf("invalid to date: %w", err)
		}
		sel.Window.To = d
	}
	return sel, nil
}
