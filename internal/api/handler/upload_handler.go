package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
	"github.com/yu-shop/storefront-api/internal/api/metrics"
)

const maxUploadBytes = 5 * 1024 * 1024

// UploadHandler stores product images on local disk and hands back the
// public URL they will be served from.
type UploadHandler struct {
	uploadDir string
	log       zerolog.Logger
}

func NewUploadHandler(uploadDir string, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir, log: log}
}

type uploadResult struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
}

// Upload accepts a multipart image under the "file" field. Files over 5MB
// and non-image content types are rejected before anything touches disk.
//
// @Summary      Upload product image
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("rejected_missing").Inc()
		return fail(c, http.StatusBadRequest, msgNoFileSelected)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		metrics.UploadsTotal.WithLabelValues("rejected_type").Inc()
		return fail(c, http.StatusBadRequest, msgImageOnly)
	}

	if fileHeader.Size > maxUploadBytes {
		metrics.UploadsTotal.WithLabelValues("rejected_size").Inc()
		return fail(c, http.StatusBadRequest, msgFileTooLarge)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return err
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fileHeader.Filename))
	dst, err := os.Create(filepath.Join(h.uploadDir, filename))
	if err != nil {
		return err
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		return err
	}

	metrics.UploadsTotal.WithLabelValues("accepted").Inc()
	metrics.UploadSizeBytes.Observe(float64(written))
	h.log.Info().Str("filename", filename).Int64("size", written).Msg("image uploaded")

	return send(c, envelope.OK(uploadResult{
		URL:          "/uploads/" + filename,
		Filename:     filename,
		OriginalName: fileHeader.Filename,
		Size:         written,
	}, msgUploadSuccess))
}
