package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"libraryapp/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type registerReq struct {
	Fullname string `json:"fullname" validate:"required,min=4,max=32"`
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,account_email"`
	Password string `json:"password" validate:"required"`
}

// RegisterUser handles POST /v1/users/register
// @Summary Register a new user
// @Description Create a new account in the mock registry
// @Tags users
// @Accept json
// @Produce json
// @Param request body registerReq true "Registration request"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/users/register [post]
func (h *HTTPHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	req.Fullname = strings.TrimSpace(req.Fullname)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	newUser, res, err := h.service.Register(r.Context(), Registration{
		Fullname: req.Fullname,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "Account already exists", collisionDetails(res.Errors))
			return
		}
		httpx.JSONInternalError(w, r)
		return
	}

	httpx.JSONSuccessCreated(w, r, newUser.Profile())
}

func collisionDetails(c Collisions) []httpx.ErrorDetail {
	var details []httpx.ErrorDetail
	if c.Email != "" {
		details = append(details, httpx.ErrorDetail{Field: "email", Message: c.Email})
	}
	if c.Username != "" {
		details = append(details, httpx.ErrorDetail{Field: "username", Message: c.Username})
	}
	return details
}

// GetCurrentUser handles GET /v1/me
// @Summary Get current user
// @Description Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /v1/me [get]
func (h *HTTPHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	username := httpx.UserIDFrom(r)
	if username == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	u, err := h.service.GetByUsername(r.Context(), username)
	if err != nil {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	httpx.JSONSuccess(w, r, u.Profile(), nil)
}
