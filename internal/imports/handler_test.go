package imports_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/bootstrap"
	"resume-builder-backend/internal/shared/config"
)

const sampleResumeText = `Jane Doe
jane@example.com
555-123-4567

EXPERIENCE
Software Engineer at Acme Corp
Jan 2020 - Present
Increased throughput by 30%

EDUCATION
B.S. Computer Science, State University
2016 - 2020`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

type importResponse struct {
	ParsedResume struct {
		Personal struct {
			FullName string `json:"fullName"`
			Email    string `json:"email"`
		} `json:"personal"`
		Experience []struct {
			Position string `json:"position"`
			Company  string `json:"company"`
			Current  bool   `json:"current"`
		} `json:"experience"`
	} `json:"parsedResume"`
	Suggestions []struct {
		ID       string `json:"id"`
		Priority string `json:"priority"`
	} `json:"suggestions"`
	ATSScore   int    `json:"atsScore"`
	StorageKey string `json:"storageKey"`
}

func TestImportText(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{"text": sampleResumeText})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/import/text", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out importResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.ParsedResume.Personal.FullName != "Jane Doe" {
		t.Errorf("fullName = %q, want %q", out.ParsedResume.Personal.FullName, "Jane Doe")
	}
	if out.ParsedResume.Personal.Email != "jane@example.com" {
		t.Errorf("email = %q, want %q", out.ParsedResume.Personal.Email, "jane@example.com")
	}
	if len(out.ParsedResume.Experience) != 1 {
		t.Fatalf("expected 1 experience entry, got %d", len(out.ParsedResume.Experience))
	}
	if !out.ParsedResume.Experience[0].Current {
		t.Errorf("expected current experience entry")
	}
	if out.ATSScore < 20 || out.ATSScore > 95 {
		t.Errorf("atsScore = %d, want within [20,95]", out.ATSScore)
	}
}

func TestImportTextInvalidShape(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"non-string text", `{"text": 123}`},
		{"missing text", `{}`},
		{"not json", `not json at all`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/import/text", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
			}
			var out struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if out.Error.Code != "validation_error" {
				t.Errorf("error code = %q, want validation_error", out.Error.Code)
			}
		})
	}
}

func buildDocxUpload(t *testing.T, text string) []byte {
	t.Helper()
	var doc strings.Builder
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, line := range strings.Split(text, "\n") {
		doc.WriteString(`<w:p><w:r><w:t>` + line + `</w:t></w:r></w:p>`)
	}
	doc.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/></Types>`,
		"word/document.xml":   doc.String(),
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func multipartUpload(t *testing.T, fileName, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestImportFileDocx(t *testing.T) {
	router := newTestRouter(t)

	data := buildDocxUpload(t, sampleResumeText)
	body, contentType := multipartUpload(t, "resume.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document", data)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/import", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var out importResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.ParsedResume.Personal.FullName != "Jane Doe" {
		t.Errorf("fullName = %q, want %q", out.ParsedResume.Personal.FullName, "Jane Doe")
	}
	if out.StorageKey == "" {
		t.Errorf("expected a storageKey in the response")
	}
}

func TestImportFileUnsupportedType(t *testing.T) {
	router := newTestRouter(t)

	body, contentType := multipartUpload(t, "resume.txt", "text/plain", []byte("plain text resume"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/import", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected status 415, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestImportFileMissing(t *testing.T) {
	router := newTestRouter(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("name", "no file here"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/import", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAnalyzeResume(t *testing.T) {
	router := newTestRouter(t)

	rec := map[string]any{
		"personal": map[string]any{
			"fullName": "Jane Doe",
			"email":    "jane@example.com",
		},
		"experience":     []any{},
		"education":      []any{},
		"skills":         []any{},
		"projects":       []any{},
		"certifications": []any{},
		"sections":       []any{},
	}
	body, _ := json.Marshal(rec)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Suggestions []struct {
			ID string `json:"id"`
		} `json:"suggestions"`
		ATSScore int `json:"atsScore"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.ATSScore < 20 || out.ATSScore > 95 {
		t.Errorf("atsScore = %d, want within [20,95]", out.ATSScore)
	}
	ids := make(map[string]bool)
	for _, s := range out.Suggestions {
		ids[s.ID] = true
	}
	for _, want := range []string{"s1", "e1", "ed1", "sum1"} {
		if !ids[want] {
			t.Errorf("expected suggestion %q for an empty resume, got ids %v", want, ids)
		}
	}
}
