package contact

import (
	"errors"
	"net/http"

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Submit)
}

// Submit accepts multipart form data so an image can ride along with
// the message fields.
func (h *Handler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid contact form")
		return
	}
	if fieldErrs := validator.Validate(&req); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
			"VALIDATION_ERROR", "Invalid contact form", fieldErrs)
		return
	}

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	msg, svcErr := h.service.Submit(c.Request.Context(), req, image)
	if svcErr != nil {
		if errors.Is(svcErr, storage.ErrInvalidFile) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", svcErr.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Request failed")
		return
	}
	response.Success(c, http.StatusCreated, msg)
}
