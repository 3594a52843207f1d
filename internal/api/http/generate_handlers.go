package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mind-engage/papergen/internal/pipeline"
	"github.com/mind-engage/papergen/internal/runs"
	"github.com/mind-engage/papergen/internal/storage"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// POST /generate (multipart: syllabus=<file>, paper_type=50|75)
//
// The upload is saved under its own directory so concurrent uploads with
// the same file name do not overwrite each other. The generated paper is
// streamed back as an attachment.
func GenerateHandler(gen *pipeline.Generator, uploads storage.BlobStore, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if maxBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}
		f, hdr, err := r.FormFile("syllabus")
		if errors.Is(err, http.ErrMissingFile) {
			// no file chosen in the form
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		if err != nil {
			http.Error(w, "syllabus file required: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer f.Close()

		name := uploadName(hdr.Filename)
		if name == "" {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		paperType := r.FormValue("paper_type")

		key, err := uploads.Put(uuid.NewString()+"/"+name, f)
		if err != nil {
			http.Error(w, "store upload: "+err.Error(), http.StatusInternalServerError)
			return
		}
		src, err := uploads.Path(key)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		res, err := gen.Process(r.Context(), src, name, paperType)
		if err != nil {
			http.Error(w, "generate paper: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("X-Run-ID", res.RunID)
		sendPaper(w, r, gen.Outputs, res.OutputKey)
	}
}

// MountPapers exposes the run log: GET / lists runs, GET /{id}/download
// re-downloads a generated paper.
func MountPapers(r chi.Router, rs runs.Store, outputs storage.BlobStore) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		list, err := rs.ListRuns(r.Context(), intQuery(q.Get("limit"), 50), intQuery(q.Get("offset"), 0))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(list)
	})

	r.Get("/{id}/download", func(w http.ResponseWriter, r *http.Request) {
		run, err := rs.GetRun(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, runs.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		sendPaper(w, r, outputs, run.OutputKey)
	})
}

func sendPaper(w http.ResponseWriter, r *http.Request, outputs storage.BlobStore, key string) {
	rc, err := outputs.Get(key)
	if err != nil {
		http.Error(w, "paper not found", http.StatusNotFound)
		return
	}
	defer rc.Close()

	name := path.Base(key)
	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	if rs, ok := rc.(io.ReadSeeker); ok {
		http.ServeContent(w, r, name, time.Time{}, rs)
		return
	}
	if _, err := io.Copy(w, rc); err != nil {
		log.Printf("send paper %s: %v", key, err)
	}
}

// uploadName reduces a client-supplied file name to its base name.
func uploadName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	switch name {
	case ".", "..", "/":
		return ""
	}
	return name
}

func intQuery(v string, def int) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
