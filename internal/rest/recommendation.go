package rest

import (
	"context"
	"errors"
	"net/http"
	"shopperSpectrum/domain"
	"shopperSpectrum/pkg/logger"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate              *validator.Validate
		recommendationService RecommendationService
		timeout               time.Duration
	}

	RecommendationService interface {
		Recommend(ctx context.Context, productCode string, k int) ([]domain.Recommendation, error)
	}

	RecommendQuery struct {
		Product string `query:"product" validate:"required"`
		K       int    `query:"k" validate:"omitempty,min=1,max=100"`
	}
)

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:              validator.New(),
		recommendationService: svc,
		timeout:               5 * time.Second,
	}
}

// GET /api/v1/recommendations?product=84029E&k=5
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.recommendationService.Recommend(ctx, q.Product, q.K)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: productNotFoundMessage})
		}
		logger.Error("Failed to compute recommendations", "product", q.Product, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}
