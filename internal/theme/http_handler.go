package theme

import (
	"encoding/json"
	"errors"
	"net/http"

	"libraryapp/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type themeResp struct {
	Theme  Theme `json:"theme"`
	IsDark bool  `json:"is_dark"`
}

func respond(w http.ResponseWriter, r *http.Request, t Theme) {
	httpx.JSONSuccess(w, r, themeResp{Theme: t, IsDark: t.IsDark()}, nil)
}

// Get handles GET /v1/theme
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.Current(r.Context())
	if err != nil {
		httpx.JSONInternalError(w, r)
		return
	}
	respond(w, r, t)
}

type setReq struct {
	Theme string `json:"theme" validate:"required,oneof=dark light"`
}

// Set handles PUT /v1/theme
func (h *HTTPHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req setReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	t := Theme(req.Theme)
	if err := h.service.Set(r.Context(), t); err != nil {
		if errors.Is(err, ErrInvalidTheme) {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid theme", nil)
			return
		}
		httpx.JSONInternalError(w, r)
		return
	}
	respond(w, r, t)
}

// Toggle handles POST /v1/theme/toggle
func (h *HTTPHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.Toggle(r.Context())
	if err != nil {
		httpx.JSONInternalError(w, r)
		return
	}
	respond(w, r, t)
}
