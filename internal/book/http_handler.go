package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"libraryapp/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type bookReq struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"image_url" validate:"required,image_url"`
	CategoryIDs []int  `json:"category_ids" validate:"dive,gt=0"`
	Precision   string `json:"precision" validate:"required,precision"`
	Date        string `json:"date" validate:"required"`
}

// dateLayouts are accepted for the published date, most specific first.
var dateLayouts = []string{time.RFC3339, "2006-01-02", "2006-01", "2006"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func decodeBook(w http.ResponseWriter, r *http.Request) (Book, bool) {
	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return Book{}, false
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)
	req.ImageURL = strings.TrimSpace(req.ImageURL)

	details := httpx.ValidateStruct(req)
	date, ok := parseDate(strings.TrimSpace(req.Date))
	if req.Date != "" && !ok {
		details = append(details, httpx.ErrorDetail{Field: "date", Message: "Date must be formatted as YYYY-MM-DD"})
	}
	if len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return Book{}, false
	}

	ids := req.CategoryIDs
	if ids == nil {
		ids = []int{}
	}
	return Book{
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		CategoryIDs:   ids,
		PublishedDate: NewPublishedDate(Precision(req.Precision), date),
	}, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return 0, false
	}
	return id, true
}

// parsePageQuery reads the list query string. Unknown sort keys and
// directions are validation errors; page_size wins over width.
func parsePageQuery(r *http.Request) (PageQuery, []httpx.ErrorDetail) {
	query := r.URL.Query()
	var (
		q       PageQuery
		details []httpx.ErrorDetail
	)

	if raw := query.Get("categories"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				details = append(details, httpx.ErrorDetail{Field: "categories", Message: fmt.Sprintf("Category id %q is not a number", part)})
				continue
			}
			q.Categories = append(q.Categories, id)
		}
	}

	switch s := SortKey(query.Get("sort")); s {
	case SortNone, SortName, SortDate:
		q.Sort = s
	default:
		details = append(details, httpx.ErrorDetail{Field: "sort", Message: "Sort must be one of: name date"})
	}

	switch d := Direction(strings.ToLower(query.Get("direction"))); d {
	case "", Asc:
		q.Direction = Asc
	case Desc:
		q.Direction = Desc
	default:
		details = append(details, httpx.ErrorDetail{Field: "direction", Message: "Direction must be one of: asc desc"})
	}

	if raw := query.Get("page_index"); raw != "" {
		idx, err := strconv.Atoi(raw)
		if err != nil {
			details = append(details, httpx.ErrorDetail{Field: "page_index", Message: "Page index must be a number"})
		}
		q.PageIndex = idx
	}

	q.PageSize = DefaultPageSize
	if raw := query.Get("width"); raw != "" {
		width, err := strconv.Atoi(raw)
		if err != nil || width < 0 {
			details = append(details, httpx.ErrorDetail{Field: "width", Message: "Width must be a positive number"})
		} else {
			q.PageSize = PageSizeForWidth(width)
		}
	}
	if raw := query.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 || size > 100 {
			details = append(details, httpx.ErrorDetail{Field: "page_size", Message: "Page size must be between 1 and 100"})
		} else {
			q.PageSize = size
		}
	}
	return q, details
}

// List handles GET /v1/books
// @Summary List books
// @Description Filter by categories, sort and paginate the catalog
// @Tags books
// @Produce json
// @Security Bearer
// @Param categories query string false "Comma separated category ids"
// @Param sort query string false "name or date"
// @Param direction query string false "asc or desc"
// @Param page_index query int false "Zero based page index"
// @Param page_size query int false "Books per page"
// @Param width query int false "Viewport width used to derive the page size"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /v1/books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	q, details := parsePageQuery(r)
	if len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query", details)
		return
	}

	page, err := h.service.Page(r.Context(), q)
	if err != nil {
		httpx.JSONInternalError(w, r)
		return
	}

	httpx.JSONSuccess(w, r, page.Items, map[string]any{
		"page_index":  page.PageIndex,
		"page_size":   page.PageSize,
		"total":       page.TotalItems,
		"total_pages": page.TotalPages,
	})
}

// Get handles GET /v1/books/{id}
// @Summary Get book
// @Tags books
// @Produce json
// @Security Bearer
// @Param id path int true "Book id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONInternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// Create handles POST /v1/books
// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body bookReq true "Book"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /v1/books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	b, ok := decodeBook(w, r)
	if !ok {
		return
	}

	created, err := h.service.Create(r.Context(), b)
	if err != nil {
		httpx.JSONInternalError(w, r)
		return
	}

	cats, err := h.service.Categories(r.Context())
	if err != nil {
		httpx.JSONInternalError(w, r)
		return
	}
	httpx.JSONSuccessCreated(w, r, Decorate(created, cats))
}

// Update handles PUT /v1/books/{id}
// @Summary Edit book
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Book id"
// @Param request body bookReq true "Book"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	b, ok := decodeBook(w, r)
	if !ok {
		return
	}
	b.ID = id

	if err := h.service.Update(r.Context(), b); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONInternalError(w, r)
		return
	}

	updated, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.JSONInternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, updated, nil)
}

// Delete handles DELETE /v1/books/{id}
// @Summary Delete book
// @Tags books
// @Security Bearer
// @Param id path int true "Book id"
// @Success 204
// @Router /v1/books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.JSONInternalError(w, r)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// Categories handles GET /v1/categories
func (h *HTTPHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.service.Categories(r.Context())
	if err != nil {
		httpx.JSONInternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, cats, nil)
}

// Featured handles GET /v1/carousel
func (h *HTTPHandler) Featured(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.Featured(r.Context())
	if err != nil {
		httpx.JSONInternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, books, nil)
}

// IsFeatured handles GET /v1/carousel/{id}
func (h *HTTPHandler) IsFeatured(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	featured, err := h.service.IsFeatured(r.Context(), id)
	if err != nil {
		httpx.JSONInternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, map[string]bool{"featured": featured}, nil)
}

// AddToCarousel handles PUT /v1/carousel/{id}
func (h *HTTPHandler) AddToCarousel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.AddToCarousel(r.Context(), id); err != nil {
		httpx.JSONInternalError(w, r)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// RemoveFromCarousel handles DELETE /v1/carousel/{id}
func (h *HTTPHandler) RemoveFromCarousel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.RemoveFromCarousel(r.Context(), id); err != nil {
		httpx.JSONInternalError(w, r)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
