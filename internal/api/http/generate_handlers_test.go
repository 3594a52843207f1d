package http

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/papergen/internal/pipeline"
	"github.com/mind-engage/papergen/internal/runs"
	"github.com/mind-engage/papergen/internal/storage"
)

type testServer struct {
	router  http.Handler
	uploads *storage.FSStore
	outputs *storage.FSStore
	runs    runs.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	dir := t.TempDir()
	uploads, err := storage.NewFSStore(filepath.Join(dir, "uploads"))
	if err != nil {
		t.Fatal(err)
	}
	outputs, err := storage.NewFSStore(filepath.Join(dir, "outputs"))
	if err != nil {
		t.Fatal(err)
	}
	rs := runs.NewInMemoryStore()
	gen := pipeline.New(outputs, rs)
	gen.NewRand = func() *rand.Rand { return rand.New(rand.NewSource(4)) }

	r := chi.NewRouter()
	r.Get("/", IndexHandler())
	r.Post("/generate", GenerateHandler(gen, uploads, 1<<20))
	r.Route("/papers", func(pr chi.Router) { MountPapers(pr, rs, outputs) })
	return &testServer{router: r, uploads: uploads, outputs: outputs, runs: rs}
}

func multipartBody(t *testing.T, filename, content, paperType string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if filename != "" {
		fw, err := mw.CreateFormFile("syllabus", filename)
		if err != nil {
			t.Fatal(err)
		}
		fw.Write([]byte(content))
	}
	if paperType != "" {
		mw.WriteField("paper_type", paperType)
	}
	mw.Close()
	return body, mw.FormDataContentType()
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestGenerate_ReturnsDocxAttachment(t *testing.T) {
	s := newTestServer(t)
	body, ct := multipartBody(t, "syllabus.txt", "1. Data Structures\n2. Algorithms\n", "50")
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", ct)

	rec := s.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != docxContentType {
		t.Errorf("content type = %q", got)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, `attachment; filename="question_paper_50_`) {
		t.Errorf("content disposition = %q", cd)
	}
	data := rec.Body.Bytes()
	if _, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
		t.Fatalf("body is not a docx package: %v", err)
	}

	runID := rec.Header().Get("X-Run-ID")
	run, err := s.runs.GetRun(context.Background(), runID)
	if err != nil {
		t.Fatalf("run not recorded: %v", err)
	}
	if run.SourceName != "syllabus.txt" || run.TopicCount != 2 {
		t.Errorf("unexpected run %+v", run)
	}
}

func TestGenerate_SameFileNameDoesNotCollide(t *testing.T) {
	s := newTestServer(t)
	for i := 0; i < 2; i++ {
		body, ct := multipartBody(t, "syllabus.txt", "Sets", "75")
		req := httptest.NewRequest(http.MethodPost, "/generate", body)
		req.Header.Set("Content-Type", ct)
		if rec := s.do(req); rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
	}
	entries, err := os.ReadDir(s.uploads.Base())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 upload directories, got %d", len(entries))
	}
}

func TestGenerate_MissingFileRedirectsToForm(t *testing.T) {
	s := newTestServer(t)
	body, ct := multipartBody(t, "", "", "50")
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", ct)

	rec := s.do(req)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("status = %d, location = %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestGenerate_NotMultipart(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader("paper_type=50"))
	req.Header.Set("Content-Type", "text/plain")

	if rec := s.do(req); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGenerate_UnknownTypeAndFormatStillSucceed(t *testing.T) {
	s := newTestServer(t)
	body, ct := multipartBody(t, "notes.bin", "\xff\xfe\x00", "")
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", ct)

	rec := s.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "question_paper_paper_") {
		t.Errorf("content disposition = %q", cd)
	}
}

func TestGenerate_UploadTooLarge(t *testing.T) {
	s := newTestServer(t)
	body, ct := multipartBody(t, "big.txt", strings.Repeat("Topic line\n", 200000), "50")
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", ct)

	if rec := s.do(req); rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestPapers_ListAndDownload(t *testing.T) {
	s := newTestServer(t)
	body, ct := multipartBody(t, "syllabus.txt", "Graphs\nTrees", "50")
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", ct)
	gen := s.do(req)
	runID := gen.Header().Get("X-Run-ID")

	rec := s.do(httptest.NewRequest(http.MethodGet, "/papers/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var list []runs.Run
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].ID != runID {
		t.Fatalf("unexpected list %+v", list)
	}

	rec = s.do(httptest.NewRequest(http.MethodGet, "/papers/"+runID+"/download", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("download status = %d", rec.Code)
	}
	if !bytes.Equal(rec.Body.Bytes(), gen.Body.Bytes()) {
		t.Error("downloaded paper differs from the generated one")
	}

	rec = s.do(httptest.NewRequest(http.MethodGet, "/papers/nope/download", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing run status = %d", rec.Code)
	}
}

func TestIndexServesForm(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	for _, want := range []string{`name="syllabus"`, `name="paper_type"`, `action="/generate"`} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("form is missing %s", want)
		}
	}
}

func TestUploadName(t *testing.T) {
	cases := map[string]string{
		"syllabus.pdf":            "syllabus.pdf",
		"../../etc/passwd":        "passwd",
		`C:\Users\me\unit 1.docx`: "unit 1.docx",
		"..":                      "",
		"/":                       "",
	}
	for in, want := range cases {
		if got := uploadName(in); got != want {
			t.Errorf("uploadName(%q) = %q, want %q", in, got, want)
		}
	}
}
