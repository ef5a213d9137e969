package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/recruiting-system/internal/core/domain"
	"github.com/crewbase/recruiting-system/internal/core/ports"
)

// maxResumeBytes bounds uploads; resumes past a few MB are almost always a
// scan instead of a text document.
const maxResumeBytes = 10 << 20

// ResumeHandler handles resume upload, parsing, and signed downloads.
type ResumeHandler struct {
	resumes ports.ResumeService
}

func NewResumeHandler(resumes ports.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumes: resumes}
}

type uploadResumeResponse struct {
	Bucket    string    `json:"bucket"`
	Path      string    `json:"path"`
	SignedURL string    `json:"signed_url"`
	PublicURL string    `json:"public_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type parseResumeRequest struct {
	Text   string `json:"text,omitempty"`
	Bucket string `json:"bucket,omitempty"`
	Path   string `json:"path,omitempty"`
}

type parseResumeResponse struct {
	Parsed *domain.ParsedResume `json:"parsed,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// Upload handles POST /v1/resumes. The file arrives as multipart form field
// "file"; storage keys never reuse the client filename.
//
// @Summary      Upload a resume document
// @Tags         resumes
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Resume file (.pdf, .docx, or .txt)"
// @Success      201   {object}  uploadResumeResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/resumes [post]
func (h *ResumeHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file field")
	}
	if fileHeader.Size > maxResumeBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, maxResumeBytes+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	if len(content) > maxResumeBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	result, err := h.resumes.Upload(c.Request().Context(), ports.UploadResumeInput{
		Filename: fileHeader.Filename,
		Content:  content,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, uploadResumeResponse{
		Bucket:    result.Bucket,
		Path:      result.Path,
		SignedURL: result.SignedURL,
		PublicURL: result.PublicURL,
		ExpiresAt: result.ExpiresAt,
	})
}

// Parse handles POST /v1/resumes/parse. The body carries either pre-extracted
// text or a stored-file reference. A document the extractor cannot use
// returns 200 with an error message rather than failing, so the UI falls back
// to manual entry.
//
// @Summary      Parse a resume into contractor fields and keywords
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      parseResumeRequest  true  "Resume text or stored-file reference"
// @Success      200   {object}  parseResumeResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/resumes/parse [post]
func (h *ResumeHandler) Parse(c echo.Context) error {
	var req parseResumeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Text == "" && req.Path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "either text or path is required")
	}

	parsed, err := h.resumes.Parse(c.Request().Context(), ports.ParseResumeInput{
		Text:   req.Text,
		Bucket: req.Bucket,
		Path:   req.Path,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyDocument) {
			return c.JSON(http.StatusOK, parseResumeResponse{
				Error: "no usable information could be extracted from the document",
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, parseResumeResponse{Parsed: parsed})
}

// Download handles GET /v1/resumes/signed/:token. The token alone authorizes
// access, so no bearer auth is required; expiry lives inside the token.
//
// @Summary      Download a stored resume via signed token
// @Tags         resumes
// @Produce      application/octet-stream
// @Param        token  path  string  true  "Signed access token"
// @Success      200
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/resumes/signed/{token} [get]
func (h *ResumeHandler) Download(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}

	filename, data, err := h.resumes.Open(c.Request().Context(), token)
	if err != nil {
		return err
	}

	contentType := "application/octet-stream"
	switch filepath.Ext(filename) {
	case ".pdf":
		contentType = "application/pdf"
	case ".txt":
		contentType = "text/plain; charset=utf-8"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+filepath.Base(filename)+`"`)
	return c.Blob(http.StatusOK, contentType, data)
}
