package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bjaus/fmter"
	"github.com/dgallion1/dxform/internal/extract"
	"github.com/dgallion1/dxform/internal/parser"
	"github.com/dgallion1/dxform/internal/tabular"
	"github.com/dgallion1/dxform/internal/transform"
)

// handleTransform runs one conversion per request: multipart file upload
// plus form values field (repeated), index_field, root_path, format.
// The whole transform runs to completion before any output is written;
// a failed request never produces partial rows.
func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	fieldSpecs := r.MultipartForm.Value["field"]
	if len(fieldSpecs) == 0 {
		jsonError(w, "at least one field spec is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)

	var p parser.Parser
	if name := r.FormValue("input_format"); name != "" {
		p, err = parser.ForFormat(name)
	} else {
		if !parser.IsSupportedExtension(filename) {
			jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
			return
		}
		p, err = parser.ForFile(filename)
	}
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	indexField := r.FormValue("index_field")
	if indexField == "" {
		indexField = s.cfg.DefaultIndexField
	}
	formatName := r.FormValue("format")
	if formatName == "" {
		formatName = s.cfg.DefaultFormat
	}
	outFormat, err := tabular.ParseFormat(formatName)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := transform.New(indexField, fieldSpecs, r.FormValue("root_path"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := p.Parse(bytes.NewReader(data))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := t.Transform(doc)
	if err != nil {
		jsonError(w, err.Error(), statusFor(err))
		return
	}

	var buf bytes.Buffer
	if err := tabular.Write(&buf, outFormat, t.FieldNames(), records, ','); err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(outFormat))
	w.Write(buf.Bytes())
}

// statusFor maps extraction failures to 422: the request was well
// formed, the document just doesn't satisfy the field specs.
func statusFor(err error) int {
	var nf *extract.FieldNotFoundError
	var rnf *transform.RootNotFoundError
	if errors.As(err, &nf) || errors.As(err, &rnf) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func contentTypeFor(f fmter.Format) string {
	switch f {
	case fmter.CSV:
		return "text/csv; charset=utf-8"
	case fmter.TSV:
		return "text/tab-separated-values; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
