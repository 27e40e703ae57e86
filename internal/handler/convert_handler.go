package handler

import (
	"context"
	"net/http"
	"time"

	"pdf-toolkit/internal/domain"
)

// ConvertHandler handles office-format conversion requests through the
// external conversion bridge
type ConvertHandler struct {
	converter domain.Converter
	timeout   time.Duration
	logger    domain.Logger
}

// NewConvertHandler creates a new conversion handler
func NewConvertHandler(converter domain.Converter, timeoutSec int, logger domain.Logger) *ConvertHandler {
	if timeoutSec <= 0 {
		timeoutSec = 120
	}
	return &ConvertHandler{
		converter: converter,
		timeout:   time.Duration(timeoutSec) * time.Second,
		logger:    logger,
	}
}

// Convert runs the external converter with a deadline
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path       string `json:"path"`
		OutputPath string `json:"output_path"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.converter.Convert(ctx, req.Path, req.OutputPath); err != nil {
		h.logger.Error("conversion failed", err, "input", req.Path, "output", req.OutputPath)
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opResult{OK: true, OutputPath: req.OutputPath})
}
