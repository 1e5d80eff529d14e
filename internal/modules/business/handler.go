package business

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"homeserve/internal/pkg/response"
	"homeserve/internal/pkg/storage"
	"homeserve/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public directory surface.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/businesses", h.List)
	rg.GET("/businesses/:id", h.Get)
}

// RegisterProtectedRoutes mounts the registration endpoint.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/businesses", h.Register)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterBusinessRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid business form")
		return
	}
	if fieldErrs := validator.Validate(&req); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
			"VALIDATION_ERROR", "Invalid business form", fieldErrs)
		return
	}

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	b, svcErr := h.service.Register(c.Request.Context(), req, image)
	if svcErr != nil {
		h.writeError(c, svcErr)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) List(c *gin.Context) {
	businesses, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, businesses)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return
	}

	b, svcErr := h.service.Get(c.Request.Context(), id)
	if svcErr != nil {
		h.writeError(c, svcErr)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Business not found")
	case errors.Is(err, storage.ErrInvalidFile):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Request failed")
	}
}
