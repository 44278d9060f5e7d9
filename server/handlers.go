package server

import (
	"bytes"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/etnz/exposure"
	"github.com/etnz/exposure/chart"
	"github.com/etnz/exposure/date"
	"github.com/etnz/exposure/renderer"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CSVFilename is the name of the exposure table download.
const CSVFilename = "exposure_data.csv"

var charts = []string{"current", "future", "timeline", "scatter"}

func (s *Server) healthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// selection parses the filter query parameters, the same as the command
// line flags.
func (s *Server) selection(c *gin.Context) (exposure.Selection, error) {
	q := exposure.SelectionQuery{
		Clients:    c.Query("clients"),
		Stocks:     c.Query("stocks"),
		Products:   c.Query("products"),
		From:       c.Query("from"),
		To:         c.Query("to"),
		Today:      c.Query("today"),
		WindowDays: s.cfg.WindowDays,
	}
	return q.Parse(s.Today())
}

// run computes the report of the request, or answers with an error.
func (s *Server) run(c *gin.Context) (*exposure.Report, bool) {
	sel, err := s.selection(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_date", err)
		return nil, false
	}
	r, err := s.dash.Report(c.Request.Context(), sel)
	var empty *exposure.EmptySelectionError
	switch {
	case errors.As(err, &empty):
		RespondError(c, http.StatusUnprocessableEntity, "empty_selection", errors.New(empty.Prompt()))
		return nil, false
	case errors.Is(err, exposure.ErrInvalidWindow):
		RespondError(c, http.StatusBadRequest, "invalid_window", err)
		return nil, false
	case err != nil:
		s.log.Error("report failed", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "report_failed", err)
		return nil, false
	}
	return r, true
}

func (s *Server) renderOptions(query string) renderer.Options {
	opts := renderer.Options{
		Adviser:  s.cfg.Adviser,
		Currency: s.cfg.Currency,
		Charts:   make(map[string]string),
	}
	for _, name := range charts {
		url := "/charts/" + name + ".png"
		if query != "" {
			url += "?" + query
		}
		opts.Charts[name] = url
	}
	return opts
}

func (s *Server) dashboard(c *gin.Context) {
	opts := s.renderOptions(c.Request.URL.RawQuery)
	sel, err := s.selection(c)
	if err != nil {
		s.page(c, http.StatusBadRequest, err.Error())
		return
	}
	r, err := s.dash.Report(c.Request.Context(), sel)
	var empty *exposure.EmptySelectionError
	switch {
	case errors.As(err, &empty):
		s.page(c, http.StatusUnprocessableEntity, empty.Prompt())
		return
	case err != nil:
		s.page(c, http.StatusBadRequest, err.Error())
		return
	}
	html, err := renderer.DashboardHTML(r, opts)
	if err != nil {
		s.log.Error("dashboard rendering failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "cannot render the dashboard")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// page answers a HTML page holding a single message.
func (s *Server) page(c *gin.Context, status int, message string) {
	title := s.cfg.Adviser
	if title == "" {
		title = renderer.DefaultAdviser
	}
	html, err := renderer.HTML(title, "# "+title+"\n\n**"+message+"**\n")
	if err != nil {
		c.String(status, message)
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) report(c *gin.Context) {
	r, ok := s.run(c)
	if !ok {
		return
	}
	RespondOK(c, r)
}

func (s *Server) exposureCSV(c *gin.Context) {
	r, ok := s.run(c)
	if !ok {
		return
	}
	b, err := s.cache.Encode(r.Exposures)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "csv_failed", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+CSVFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", b)
}

// optionsResponse lists what can be selected.
type optionsResponse struct {
	Clients    []string   `json:"clients"`
	Stocks     []string   `json:"stocks"`
	Maturities date.Range `json:"maturities"`
}

func (s *Server) options(c *gin.Context) {
	RespondOK(c, optionsResponse{
		Clients:    s.dash.Clients(),
		Stocks:     s.dash.Stocks(),
		Maturities: s.dash.MaturityRange(),
	})
}

type maturitiesResponse struct {
	Window   date.Range `json:"window"`
	Products []string   `json:"products"`
}

func (s *Server) maturities(c *gin.Context) {
	sel, err := s.selection(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_date", err)
		return
	}
	if !sel.Window.IsValid() {
		RespondError(c, http.StatusBadRequest, "invalid_window", exposure.ErrInvalidWindow)
		return
	}
	products := s.dash.Maturities(sel.Window)
	if products == nil {
		products = []string{}
	}
	RespondOK(c, maturitiesResponse{Window: sel.Window, Products: products})
}

func (s *Server) chart(c *gin.Context) {
	name, ok := strings.CutSuffix(c.Param("chart"), ".png")
	if !ok || !slices.Contains(charts, name) {
		RespondError(c, http.StatusNotFound, "unknown_chart", errors.New("unknown chart "+c.Param("chart")))
		return
	}
	r, ok := s.run(c)
	if !ok {
		return
	}
	var b bytes.Buffer
	var err error
	switch name {
	case "current":
		err = chart.Heatmap(&b, "Current Exposure", r.Current)
	case "future":
		err = chart.Heatmap(&b, "Future Exposure", r.Future)
	case "timeline":
		err = chart.Timeline(&b, r.Timeline, s.cfg.Currency)
	case "scatter":
		err = chart.Scatter(&b, r.Scatter)
	}
	if err != nil {
		s.log.Error("chart failed", zap.String("chart", name), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "chart_failed", err)
		return
	}
	c.Data(http.StatusOK, "image/png", b.Bytes())
}
