package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-faster/errors"
	"github.com/rogerio-castellano/product-catalog/internal/app"
	"github.com/rogerio-castellano/product-catalog/internal/client"
	mw "github.com/rogerio-castellano/product-catalog/internal/http/middleware"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"price": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"date":  func(t time.Time) string { return t.Format("2006-01-02") },
}

// Server renders the catalog pages from data fetched through the API.
type Server struct {
	client client.CatalogClient
	log    logrus.FieldLogger
	pages  map[string]*template.Template
}

func NewServer(c client.CatalogClient, logger logrus.FieldLogger) (*Server, error) {
	pages := map[string]*template.Template{}
	for _, name := range []string{"products", "categories"} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s template", name)
		}
		pages[name] = t
	}
	return &Server{client: c, log: logger, pages: pages}, nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(s.log, 0))
	r.Use(mw.Recover(s.log))

	r.Get("/", s.productsPage)
	r.Get("/categories", s.categoriesPage)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

type filterForm struct {
	MinPrice      string
	MaxPrice      string
	StartDate     string
	EndDate       string
	CategoryID    string
	SortColumn    string
	SortDirection string
}

type productsView struct {
	Title          string
	Error          string
	Form           filterForm
	Categories     []app.CategoryResult
	Products       []app.ProductResult
	SortColumns    []string
	SortDirections []string
	Page           int
	PageSize       int
	PrevURL        string
	NextURL        string
}

type categoriesView struct {
	Title      string
	Error      string
	Categories []app.CategoryResult
}

func (s *Server) productsPage(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	view := productsView{
		Title: "Products",
		Form: filterForm{
			MinPrice:      values.Get("minPrice"),
			MaxPrice:      values.Get("maxPrice"),
			StartDate:     values.Get("startDate"),
			EndDate:       values.Get("endDate"),
			CategoryID:    values.Get("categoryId"),
			SortColumn:    values.Get("sortColumn"),
			SortDirection: values.Get("sortDirection"),
		},
		SortColumns:    sortColumnNames(),
		SortDirections: []string{repo.Ascending.String(), repo.Descending.String()},
		Page:           repo.DefaultPageNumber,
		PageSize:       repo.DefaultPageSize,
	}

	categories, err := s.client.GetCategories(r.Context())
	if err != nil {
		s.log.WithError(err).Warn("could not load categories")
		view.Error = "Categories are unavailable: " + err.Error()
	}
	view.Categories = categories

	q, err := app.ParseProductsQuery(values)
	if err != nil {
		view.Error = err.Error()
		s.render(w, "products", view)
		return
	}
	if q.PageNumber != nil {
		view.Page = *q.PageNumber
	}
	if q.PageSize != nil {
		view.PageSize = *q.PageSize
	}
	// end of day, so the upper date bound is inclusive for date-only input
	if q.EndDate != nil && len(view.Form.EndDate) == len("2006-01-02") {
		end := q.EndDate.Add(24*time.Hour - time.Nanosecond)
		q.EndDate = &end
	}

	products, err := s.client.GetProducts(r.Context(), q)
	if err != nil {
		s.log.WithError(err).Warn("could not load products")
		view.Error = bannerMessage(err)
		s.render(w, "products", view)
		return
	}
	view.Products = products

	if view.Page > 1 {
		view.PrevURL = pageURL(values, view.Page-1)
	}
	if len(products) == view.PageSize {
		view.NextURL = pageURL(values, view.Page+1)
	}
	s.render(w, "products", view)
}

func (s *Server) categoriesPage(w http.ResponseWriter, r *http.Request) {
	view := categoriesView{Title: "Categories"}
	categories, err := s.client.GetCategories(r.Context())
	if err != nil {
		s.log.WithError(err).Warn("could not load categories")
		view.Error = bannerMessage(err)
	}
	view.Categories = categories
	s.render(w, "categories", view)
}

func (s *Server) render(w http.ResponseWriter, page string, data any) {
	var buf bytes.Buffer
	if err := s.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		s.log.WithError(err).WithField("page", page).Error("render failed")
		http.Error(w, mw.GenericErrorMessage, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func bannerMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
		msg := "Invalid filter:"
		for _, f := range apiErr.Fields {
			msg += " " + f.Description + "."
		}
		return msg
	}
	return "The catalog is unavailable right now. Please try again later."
}

func pageURL(values url.Values, page int) string {
	next := url.Values{}
	for k, v := range values {
		next[k] = v
	}
	next.Set("pageNumber", strconv.Itoa(page))
	return "/?" + next.Encode()
}

func sortColumnNames() []string {
	var names []string
	for c := repo.SortByID; c.Valid(); c++ {
		names = append(names, c.String())
	}
	return names
}
