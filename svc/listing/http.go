package listing

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/studyshelf/handler"
	"github.com/dmitrymomot/studyshelf/pkg/binder"
	"github.com/dmitrymomot/studyshelf/pkg/file"
	"github.com/dmitrymomot/studyshelf/svc/forms"
)

// DefaultMaxUploadBody caps the whole upload request when Config.MaxUploadBody
// is unset. It leaves room for a 50MB document, a 5MB cover and the fields;
// anything larger is refused with 413 before file validation runs.
const DefaultMaxUploadBody = 56 * file.MB

// Handle returns the listing routes:
//
//	GET  /            search (q, category, min_price, max_price)
//	GET  /featured    top-rated listings (limit)
//	GET  /categories  upload categories with catalog counts
//	GET  /{id}        listing detail
//	POST /            multipart upload
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.search,
		handler.WithBinders[handler.Context, searchRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, searchRequest](s.errorHandler),
	))
	r.Get("/featured", handler.Wrap(s.featured,
		handler.WithBinders[handler.Context, featuredRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, featuredRequest](s.errorHandler),
	))
	r.Get("/categories", handler.Wrap(s.categories,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Get("/{id}", handler.Wrap(s.get,
		handler.WithBinders[handler.Context, getRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, getRequest](s.errorHandler),
	))
	maxBody := s.cfg.MaxUploadBody
	if maxBody <= 0 {
		maxBody = DefaultMaxUploadBody
	}
	r.With(middleware.RequestSize(maxBody)).Post("/", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, submitRequest](binder.Form(s.cfg.MaxMemory)),
		handler.WithErrorHandler[handler.Context, submitRequest](s.errorHandler),
	))

	return r
}

// searchRequest leaves prices nil when absent so the default range applies.
type searchRequest struct {
	Query    string `query:"q"`
	Category string `query:"category"`
	MinPrice *int   `query:"min_price"`
	MaxPrice *int   `query:"max_price"`
}

func (req searchRequest) filter() Filter {
	f := DefaultFilter()
	f.Query = req.Query
	if req.Category != "" {
		f.Category = req.Category
	}
	if req.MinPrice != nil {
		f.MinPrice = *req.MinPrice
	}
	if req.MaxPrice != nil {
		f.MaxPrice = *req.MaxPrice
	}
	return f
}

func (s *Service) search(ctx handler.Context, req searchRequest) handler.Response {
	listings, err := s.Search(ctx, req.filter())
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(listings, handler.WithJSONMeta(map[string]any{
		"total": len(listings),
	}))
}

type featuredRequest struct {
	Limit *int `query:"limit"`
}

func (s *Service) featured(ctx handler.Context, req featuredRequest) handler.Response {
	limit := DefaultFeaturedLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	listings, err := s.Featured(ctx, limit)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(listings)
}

func (s *Service) categories(ctx handler.Context, _ struct{}) handler.Response {
	summary, err := s.Categories(ctx)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(summary)
}

type getRequest struct {
	ID string `path:"id"`
}

func (s *Service) get(ctx handler.Context, req getRequest) handler.Response {
	l, err := s.Get(ctx, req.ID)
	if errors.Is(err, ErrListingNotFound) {
		return handler.Error(errors.Join(handler.ErrNotFound, err))
	}
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(l)
}

type submitRequest struct {
	Title       string                `form:"title"`
	Author      string                `form:"author"`
	Category    string                `form:"category"`
	Price       string                `form:"price"`
	Description string                `form:"description"`
	Pages       string                `form:"pages"`
	Document    *multipart.FileHeader `file:"pdf"`
	Cover       *multipart.FileHeader `file:"cover"`
}

func (req submitRequest) input() forms.ListingInput {
	return forms.ListingInput{
		Title:       req.Title,
		Author:      req.Author,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Pages:       req.Pages,
	}
}

func (s *Service) submit(ctx handler.Context, req submitRequest) handler.Response {
	if mf := ctx.Request().MultipartForm; mf != nil {
		defer func() { _ = mf.RemoveAll() }()
	}

	document, err := file.FromHeader(req.Document)
	if err != nil {
		return handler.Error(err)
	}
	cover, err := file.FromHeader(req.Cover)
	if err != nil {
		return handler.Error(err)
	}

	receipt, err := s.Submit(ctx, req.input(), document, cover)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(receipt, handler.WithJSONStatus(http.StatusAccepted))
}
