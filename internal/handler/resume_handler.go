package handler

import (
	"errors"
	"net/http"

	"elevate-cv/internal/domain"
	"elevate-cv/internal/service"
)

const (
	// room for multipart boundaries and headers on top of the file itself
	multipartOverhead = 1 << 20
	multipartMemory   = 10 << 20
)

// ResumeHandler handles HTTP requests for resume reviews
type ResumeHandler struct {
	service domain.ResumeService
	logger  domain.Logger
}

// NewResumeHandler creates a new resume handler instance
func NewResumeHandler(service domain.ResumeService, logger domain.Logger) *ResumeHandler {
	return &ResumeHandler{
		service: service,
		logger:  logger,
	}
}

// Index describes the available endpoints
func (h *ResumeHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Resume Review AI API",
		"endpoints": map[string]string{
			"POST /analyze": "Upload and analyze a resume (PDF only)",
			"GET /health":   "Health check endpoint",
		},
	})
}

// Health reports liveness and whether the analysis API key is set
func (h *ResumeHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "healthy",
		"api_configured": h.service.AnalyzerConfigured(),
	})
}

// Analyze handles a multipart PDF upload in the "file" field
func (h *ResumeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	maxFileSize := h.service.MaxFileSize()
	r.Body = http.MaxBytesReader(w, r.Body, maxFileSize+multipartOverhead)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusBadRequest, service.FileTooLargeMessage(maxFileSize))
			return
		}
		writeError(w, http.StatusBadRequest, "Request must be multipart/form-data with a PDF in the \"file\" field")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	result, err := h.service.Review(r.Context(), header.Filename, file)
	if err != nil {
		requestID, _ := domain.RequestIDFromContext(r.Context())
		h.logger.Warn("Resume review rejected", "request_id", requestID, "filename", header.Filename, "error", err)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
