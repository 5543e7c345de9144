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
	SegmentHandler struct {
		validate       *validator.Validate
		segmentService SegmentService
		timeout        time.Duration
	}

	SegmentService interface {
		Classify(ctx context.Context, rfm domain.RFMInput) (domain.Segment, error)
		Labels() domain.ClusterLabelMap
	}

	// Pointers distinguish a missing field from an explicit zero.
	PredictSegmentRequest struct {
		Recency   *int     `json:"recency" validate:"required,min=0"`
		Frequency *int     `json:"frequency" validate:"required,min=0"`
		Monetary  *float64 `json:"monetary" validate:"required,min=0"`
	}
)

func NewSegmentHandler(svc SegmentService) *SegmentHandler {
	return &SegmentHandler{
		validate:       validator.New(),
		segmentService: svc,
		timeout:        5 * time.Second,
	}
}

// POST /api/v1/segments/predict
// body: { "recency": 30, "frequency": 4, "monetary": 250.0 }
func (h *SegmentHandler) Predict(c echo.Context) error {
	var req PredictSegmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	seg, err := h.segmentService.Classify(ctx, domain.RFMInput{
		Recency:   *req.Recency,
		Frequency: *req.Frequency,
		Monetary:  *req.Monetary,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRFM) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		var mie *domain.ModelInvocationError
		if errors.As(err, &mie) {
			logger.Error("Segment model invocation failed", "stage", mie.Stage, "error", mie.Err)
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: "segment model failed: " + mie.Stage})
		}
		logger.Error("Failed to classify segment", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(seg))
}

// GET /api/v1/segments/labels
func (h *SegmentHandler) Labels(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.segmentService.Labels()))
}
