// Package handler provides HTTP handlers for the API.
package handler

import (
	"image/png"
	"net/http"
	"strconv"

	"pdf-toolkit/internal/domain"
)

// PDFHandler handles HTTP requests for PDF engine operations
type PDFHandler struct {
	engine  domain.PDFEngine
	maxZoom float64
	logger  domain.Logger
}

// NewPDFHandler creates a new PDF handler. maxZoom caps interactive render
// requests so a single call cannot exhaust memory.
func NewPDFHandler(engine domain.PDFEngine, maxZoom float64, logger domain.Logger) *PDFHandler {
	if maxZoom <= 0 {
		maxZoom = 8.0
	}
	return &PDFHandler{
		engine:  engine,
		maxZoom: maxZoom,
		logger:  logger,
	}
}

type opResult struct {
	OK         bool   `json:"ok"`
	OutputPath string `json:"output_path,omitempty"`
	Count      int    `json:"count,omitempty"`
}

// Merge concatenates the listed source files into one document
func (h *PDFHandler) Merge(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Paths      []string `json:"paths"`
		OutputPath string   `json:"output_path"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OutputPath == "" {
		writeError(w, http.StatusBadRequest, "output_path is required")
		return
	}

	if err := h.engine.Merge(req.Paths, req.OutputPath); err != nil {
		h.logger.Error("merge failed", err, "count", len(req.Paths))
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opResult{OK: true, OutputPath: req.OutputPath})
}

// Split writes one single-page document per source page
func (h *PDFHandler) Split(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path      string `json:"path"`
		OutputDir string `json:"output_dir"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	count, err := h.engine.Split(req.Path, req.OutputDir)
	if err != nil {
		h.logger.Error("split failed", err, "path", req.Path)
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opResult{OK: true, OutputPath: req.OutputDir, Count: count})
}

type selectionRequest struct {
	Path       string `json:"path"`
	Pages      string `json:"pages"`
	OutputPath string `json:"output_path"`
}

func (req *selectionRequest) indices() ([]int, error) {
	return domain.ParsePageSelection(req.Pages)
}

// Extract builds a new document from the selected pages
func (h *PDFHandler) Extract(w http.ResponseWriter, r *http.Request) {
	h.selectionOp(w, r, h.engine.ExtractPages)
}

// Remove writes a copy of the document without the selected pages
func (h *PDFHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.selectionOp(w, r, h.engine.RemovePages)
}

func (h *PDFHandler) selectionOp(w http.ResponseWriter, r *http.Request, op func(string, []int, string) error) {
	var req selectionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	indices, err := req.indices()
	if err != nil {
		writeEngineError(w, err)
		return
	}

	if err := op(req.Path, indices, req.OutputPath); err != nil {
		h.logger.Error("page selection operation failed", err, "path", req.Path)
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opResult{OK: true, OutputPath: req.OutputPath})
}

// Rotate sets the absolute rotation of the selected pages (all by default)
func (h *PDFHandler) Rotate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path       string `json:"path"`
		OutputPath string `json:"output_path"`
		Angle      int    `json:"angle"`
		Pages      string `json:"pages"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var indices []int
	if req.Pages != "" {
		var err error
		if indices, err = domain.ParsePageSelection(req.Pages); err != nil {
			writeEngineError(w, err)
			return
		}
	}

	if err := h.engine.RotatePages(req.Path, req.OutputPath, req.Angle, indices); err != nil {
		h.logger.Error("rotate failed", err, "path", req.Path, "angle", req.Angle)
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opResult{OK: true, OutputPath: req.OutputPath})
}

// Watermark draws centered diagonal text on every page
func (h *PDFHandler) Watermark(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path       string  `json:"path"`
		Text       string  `json:"text"`
		OutputPath string  `json:"output_path"`
		Opacity    float64 `json:"opacity"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Opacity == 0 {
		req.Opacity = domain.DefaultWatermarkOpacity
	}

	if err := h.engine.AddWatermark(req.Path, req.Text, req.OutputPath, req.Opacity); err != nil {
		h.logger.Error("watermark failed", err, "path", req.Path)
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opResult{OK: true, OutputPath: req.OutputPath})
}

// Annotate burns a text draw into one page at PDF point coordinates
func (h *PDFHandler) Annotate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path       string  `json:"path"`
		Page       int     `json:"page"`
		Text       string  `json:"text"`
		X          float64 `json:"x"`
		Y          float64 `json:"y"`
		OutputPath string  `json:"output_path"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.engine.AddTextAnnotation(req.Path, req.Page, req.Text, req.X, req.Y, req.OutputPath); err != nil {
		h.logger.Error("annotate failed", err, "path", req.Path, "page", req.Page)
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opResult{OK: true, OutputPath: req.OutputPath})
}

// Encrypt writes an AES-256 encrypted copy of the document
func (h *PDFHandler) Encrypt(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path          string `json:"path"`
		OutputPath    string `json:"output_path"`
		UserPassword  string `json:"user_password"`
		OwnerPassword string `json:"owner_password"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.engine.Encrypt(req.Path, req.OutputPath, req.UserPassword, req.OwnerPassword); err != nil {
		h.logger.Error("encrypt failed", err, "path", req.Path)
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opResult{OK: true, OutputPath: req.OutputPath})
}

// Decrypt attempts to write a decrypted copy; wrong passwords are reported
// as ok=false with status 200, not as an error
func (h *PDFHandler) Decrypt(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path       string `json:"path"`
		OutputPath string `json:"output_path"`
		Password   string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok := h.engine.Decrypt(req.Path, req.OutputPath, req.Password)
	res := opResult{OK: ok}
	if ok {
		res.OutputPath = req.OutputPath
	}
	writeJSON(w, http.StatusOK, res)
}

// Compress re-serializes the document with garbage collection and deflation
func (h *PDFHandler) Compress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path       string `json:"path"`
		OutputPath string `json:"output_path"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.engine.Compress(req.Path, req.OutputPath); err != nil {
		h.logger.Error("compress failed", err, "path", req.Path)
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opResult{OK: true, OutputPath: req.OutputPath})
}

// ExportImages renders every page to an image file at export quality
func (h *PDFHandler) ExportImages(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path      string `json:"path"`
		OutputDir string `json:"output_dir"`
		Format    string `json:"format"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Format == "" {
		req.Format = "png"
	}

	count, err := h.engine.ExportImages(req.Path, req.OutputDir, req.Format)
	if err != nil {
		h.logger.Error("image export failed", err, "path", req.Path)
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opResult{OK: true, OutputPath: req.OutputDir, Count: count})
}

// Info returns page count, metadata fields and the encrypted flag
func (h *PDFHandler) Info(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "path query parameter is required")
		return
	}

	info, err := h.engine.Info(path)
	if err != nil {
		h.logger.Error("info failed", err, "path", path)
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// Text returns extracted text for the whole document or a single page
func (h *PDFHandler) Text(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "path query parameter is required")
		return
	}

	var text string
	var err error
	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		page, convErr := strconv.Atoi(pageParam)
		if convErr != nil {
			writeError(w, http.StatusBadRequest, "page must be a zero-based integer")
			return
		}
		text, err = h.engine.ExtractPageText(path, page)
	} else {
		text, err = h.engine.ExtractText(path)
	}
	if err != nil {
		h.logger.Error("text extraction failed", err, "path", path)
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// Render rasterizes one page at the requested zoom and responds with PNG
func (h *PDFHandler) Render(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "path query parameter is required")
		return
	}

	page := 0
	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		var err error
		if page, err = strconv.Atoi(pageParam); err != nil {
			writeError(w, http.StatusBadRequest, "page must be a zero-based integer")
			return
		}
	}

	zoom := 1.0
	if zoomParam := r.URL.Query().Get("zoom"); zoomParam != "" {
		var err error
		if zoom, err = strconv.ParseFloat(zoomParam, 64); err != nil || zoom <= 0 {
			writeError(w, http.StatusBadRequest, "zoom must be a positive number")
			return
		}
	}
	if zoom > h.maxZoom {
		zoom = h.maxZoom
	}

	img, err := h.engine.RenderPage(path, page, zoom)
	if err != nil {
		h.logger.Error("render failed", err, "path", path, "page", page)
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		h.logger.Error("png encode failed", err, "path", path, "page", page)
	}
}
