package handler

import (
	"net/http"

	"pdf-toolkit/internal/domain"
)

// RecentHandler serves the recent-files list consumed by the UI
type RecentHandler struct {
	store  domain.RecentStore
	logger domain.Logger
}

// NewRecentHandler creates a new recent-files handler
func NewRecentHandler(store domain.RecentStore, logger domain.Logger) *RecentHandler {
	return &RecentHandler{
		store:  store,
		logger: logger,
	}
}

// List returns the recent files, most recent first, existing paths only
func (h *RecentHandler) List(w http.ResponseWriter, r *http.Request) {
	files, err := h.store.List()
	if err != nil {
		h.logger.Error("listing recent files failed", err)
		writeError(w, http.StatusInternalServerError, "cannot read recent files")
		return
	}
	if files == nil {
		files = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"files": files})
}

// Add records a path as most recently used
func (h *RecentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path string `json:"path"`
	}
	if err := decodeBody(r, &req); err != nil || req.Path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}

	if err := h.store.Add(req.Path); err != nil {
		h.logger.Error("recording recent file failed", err, "path", req.Path)
		writeError(w, http.StatusInternalServerError, "cannot update recent files")
		return
	}
	writeJSON(w, http.StatusOK, opResult{OK: true})
}
