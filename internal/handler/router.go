package handler

import (
	"net/http"

	"pdf-toolkit/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"pdf-toolkit"}`))
	}).Methods("GET")

	// Initialize handlers
	pdfHandler := NewPDFHandler(container.Engine, container.Config.GetMaxZoom(), container.Logger)
	convertHandler := NewConvertHandler(container.Converter, container.Config.GetConvertTimeout(), container.Logger)
	recentHandler := NewRecentHandler(container.RecentStore, container.Logger)

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(RequestLogger(container.Logger))

	// Document transformation routes
	docs := api.PathPrefix("/documents").Subrouter()
	docs.HandleFunc("/merge", pdfHandler.Merge).Methods("POST")
	docs.HandleFunc("/split", pdfHandler.Split).Methods("POST")
	docs.HandleFunc("/extract", pdfHandler.Extract).Methods("POST")
	docs.HandleFunc("/remove", pdfHandler.Remove).Methods("POST")
	docs.HandleFunc("/rotate", pdfHandler.Rotate).Methods("POST")
	docs.HandleFunc("/watermark", pdfHandler.Watermark).Methods("POST")
	docs.HandleFunc("/annotate", pdfHandler.Annotate).Methods("POST")
	docs.HandleFunc("/encrypt", pdfHandler.Encrypt).Methods("POST")
	docs.HandleFunc("/decrypt", pdfHandler.Decrypt).Methods("POST")
	docs.HandleFunc("/compress", pdfHandler.Compress).Methods("POST")
	docs.HandleFunc("/export-images", pdfHandler.ExportImages).Methods("POST")
	docs.HandleFunc("/convert", convertHandler.Convert).Methods("POST")

	// Read-only inspection routes
	docs.HandleFunc("/info", pdfHandler.Info).Methods("GET")
	docs.HandleFunc("/text", pdfHandler.Text).Methods("GET")
	docs.HandleFunc("/render", pdfHandler.Render).Methods("GET")

	// Recent files consumed by the UI shell
	api.HandleFunc("/recent", recentHandler.List).Methods("GET")
	api.HandleFunc("/recent", recentHandler.Add).Methods("POST")

	// Configure CORS for local UI frontends
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:3000",
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300,
	})

	return c.Handler(router)
}
