package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func multipartImage(t *testing.T, fieldName, fileName, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func newUploadContext(t *testing.T, body *bytes.Buffer, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUploadHandler_Success(t *testing.T) {
	dir := t.TempDir()
	handler := NewUploadHandler(dir, zerolog.Nop())

	body, contentType := multipartImage(t, "file", "photo.png", "image/png", []byte("fake-png-bytes"))
	c, rec := newUploadContext(t, body, contentType)

	if err := handler.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if env.Message != "圖片上傳成功" {
		t.Fatalf("unexpected message: %s", env.Message)
	}
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %T", env.Data)
	}
	url, _ := data["url"].(string)
	if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, "-photo.png") {
		t.Fatalf("unexpected url: %s", url)
	}
	if data["originalName"] != "photo.png" {
		t.Fatalf("unexpected originalName: %v", data["originalName"])
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one stored file, got %v (%v)", entries, err)
	}
	stored, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil || string(stored) != "fake-png-bytes" {
		t.Fatalf("stored content mismatch: %q (%v)", stored, err)
	}
}

func TestUploadHandler_MissingFile(t *testing.T) {
	handler := NewUploadHandler(t.TempDir(), zerolog.Nop())

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("other", "value")
	_ = w.Close()

	c, rec := newUploadContext(t, &buf, w.FormDataContentType())
	_ = handler.Upload(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "未選擇檔案" {
		t.Fatalf("unexpected message: %s", env.Message)
	}
}

func TestUploadHandler_NonImageRejected(t *testing.T) {
	dir := t.TempDir()
	handler := NewUploadHandler(dir, zerolog.Nop())

	body, contentType := multipartImage(t, "file", "notes.pdf", "application/pdf", []byte("%PDF-1.4"))
	c, rec := newUploadContext(t, body, contentType)
	_ = handler.Upload(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "只能上傳圖片檔案" {
		t.Fatalf("unexpected message: %s", env.Message)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("nothing should be written, found %v", entries)
	}
}

func TestUploadHandler_OversizeRejected(t *testing.T) {
	dir := t.TempDir()
	handler := NewUploadHandler(dir, zerolog.Nop())

	oversized := bytes.Repeat([]byte("a"), 6*1024*1024)
	body, contentType := multipartImage(t, "file", "big.jpg", "image/jpeg", oversized)
	c, rec := newUploadContext(t, body, contentType)
	_ = handler.Upload(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "檔案大小不能超過 5MB" {
		t.Fatalf("unexpected message: %s", env.Message)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("nothing should be written, found %v", entries)
	}
}
