package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logistics/internal/domain"
	"logistics/internal/service"
)

// TariffHandler handles tariff listing and cost calculation.
type TariffHandler struct {
	tariffService service.TariffService
	log           *zap.Logger
}

// NewTariffHandler creates a new TariffHandler.
func NewTariffHandler(tariffService service.TariffService, log *zap.Logger) *TariffHandler {
	return &TariffHandler{tariffService: tariffService, log: log}
}

type listTariffsResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Total   int                   `json:"total"`
	Data    []domain.TariffRecord `json:"data"`
}

type calculateResponse struct {
	Success bool `json:"success"`
	*domain.CalculationResult
}

// List handles GET /tariffs
func (h *TariffHandler) List(c *gin.Context) {
	records := h.tariffService.List()
	if records == nil {
		records = []domain.TariffRecord{}
	}

	RespondJSON(c, http.StatusOK, listTariffsResponse{
		Success: true,
		Message: "Daftar semua tarif pengiriman",
		Total:   len(records),
		Data:    records,
	})
	h.log.Debug("returned tariffs", zap.Int("count", len(records)))
}

// Calculate handles POST /calculate
func (h *TariffHandler) Calculate(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		h.log.Warn("failed to read calculate body", zap.Error(err))
		HandleError(c, err)
		return
	}

	req, err := domain.ParseCalculationRequest(body)
	if err != nil {
		h.log.Warn("rejected calculate request", zap.Error(err))
		HandleError(c, err)
		return
	}

	result, err := h.tariffService.Calculate(req)
	if errors.Is(err, domain.ErrDestinationNotFound) {
		h.log.Warn("destination not found", zap.String("destination", req.Destination))
		destinations := h.tariffService.Destinations()
		if destinations == nil {
			destinations = []string{}
		}
		RespondJSON(c, http.StatusNotFound, DestinationNotFoundResponse{
			Success:               false,
			Error:                 fmt.Sprintf("Destination %q not found", req.Destination),
			AvailableDestinations: destinations,
		})
		return
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	h.log.Info("calculated shipping cost",
		zap.String("destination", result.Destination),
		zap.Float64("weight_kg", result.WeightKg),
		zap.Float64("total_cost", result.TotalCost),
	)
	RespondJSON(c, http.StatusOK, calculateResponse{Success: true, CalculationResult: result})
}

// readBody buffers the whole request body, mapping an exceeded limit to ErrBodyTooLarge.
func readBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: limit %d bytes", domain.ErrBodyTooLarge, maxErr.Limit)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedBody, err)
	}
	return body, nil
}
