package imports

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/extract"
	"resume-builder-backend/internal/resume"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/internal/shared/telemetry"
)

const maxImportBytes = 10 << 20

// Handler wires HTTP handlers to the import service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches import routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/import", h.importFile)
	rg.POST("/resumes/import/text", h.importText)
	rg.POST("/resumes/analyze", h.analyzeResume)
}

func (h *Handler) importFile(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)

	header, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if header.Size > maxImportBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds the 10MB limit", nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file could not be read", nil)
		return
	}
	defer file.Close()

	c.Set("importFileName", header.Filename)

	result, err := h.Svc.ImportFile(c.Request.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_media_type", "only PDF and DOCX files are supported", nil)
		case errors.Is(err, ErrNoText):
			respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", "no text could be extracted from the file", nil)
		default:
			telemetry.Error("imports.file.failed", map[string]any{
				"err":        err.Error(),
				"file_name":  header.Filename,
				"request_id": c.GetString("requestId"),
			})
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to import resume", nil)
		}
		return
	}

	c.Set("atsScore", result.ATSScore)
	respond.JSON(c, http.StatusCreated, result)
}

type importTextRequest struct {
	Text *string `json:"text"`
}

func (h *Handler) importText(c *gin.Context) {
	var req importTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid input shape", nil)
		return
	}
	if req.Text == nil || strings.TrimSpace(*req.Text) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		return
	}

	result, err := h.Svc.ImportText(c.Request.Context(), *req.Text)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to import resume text", nil)
		return
	}

	c.Set("atsScore", result.ATSScore)
	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) analyzeResume(c *gin.Context) {
	var rec resume.Resume
	if err := c.ShouldBindJSON(&rec); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume body", nil)
		return
	}

	analysis := h.Svc.AnalyzeResume(rec)

	c.Set("atsScore", analysis.ATSScore)
	respond.JSON(c, http.StatusOK, analysis)
}
