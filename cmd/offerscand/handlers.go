package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/federicolanz/offerscan"
	"github.com/federicolanz/offerscan/report"
)

const maxUploadBytes = 50 << 20 // 50MB across the batch

type handler struct {
	analyzer offerscan.Analyzer
	maxDocs  int
}

func newHandler(a offerscan.Analyzer, maxDocs int) *handler {
	return &handler{analyzer: a, maxDocs: maxDocs}
}

// analyzeRequest reads the multipart form (uploaded files under "files" plus
// an optional pasted-text field "text"), stages uploads in a temp directory,
// and runs the analysis. The temp directory lives only for the request.
func (h *handler) analyzeRequest(w http.ResponseWriter, r *http.Request) (*offerscan.Result, string, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart form with 'files' and/or 'text'")
		return nil, "", false
	}

	batchID := uuid.NewString()

	tmpDir, err := os.MkdirTemp("", "offerscan-")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to stage uploads")
		slog.Error("creating temp dir", "batch_id", batchID, "error", err)
		return nil, "", false
	}
	defer os.RemoveAll(tmpDir)

	var inputs []offerscan.Input
	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["files"] {
			// Sanitise filename to prevent path traversal.
			safeName := filepath.Base(fh.Filename)

			src, err := fh.Open()
			if err != nil {
				writeError(w, http.StatusBadRequest, "unreadable upload: "+safeName)
				return nil, "", false
			}
			tmpPath := filepath.Join(tmpDir, safeName)
			dst, err := os.Create(tmpPath)
			if err != nil {
				src.Close()
				writeError(w, http.StatusInternalServerError, "failed to stage upload")
				slog.Error("staging upload", "batch_id", batchID, "file", safeName, "error", err)
				return nil, "", false
			}
			if _, err := io.Copy(dst, src); err != nil {
				dst.Close()
				src.Close()
				writeError(w, http.StatusInternalServerError, "failed to stage upload")
				slog.Error("staging upload", "batch_id", batchID, "file", safeName, "error", err)
				return nil, "", false
			}
			dst.Close()
			src.Close()

			inputs = append(inputs, offerscan.Input{Path: tmpPath, Label: safeName})
		}
	}

	if text := strings.TrimSpace(r.FormValue("text")); text != "" {
		inputs = append(inputs, offerscan.Input{Text: text, Label: "pasted-text"})
	}

	res, err := h.analyzer.Analyze(r.Context(), inputs)
	if err != nil {
		switch {
		case errors.Is(err, offerscan.ErrNoInput):
			writeError(w, http.StatusBadRequest, "no files or text supplied")
		case errors.Is(err, offerscan.ErrTooManyDocuments):
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("batch exceeds the %d document limit", h.maxDocs))
		case errors.Is(err, offerscan.ErrNoData):
			writeError(w, http.StatusUnprocessableEntity,
				"no structured data found in the supplied documents")
		default:
			writeError(w, http.StatusInternalServerError, "analysis failed")
			slog.Error("analyze error", "batch_id", batchID, "error", err)
		}
		return nil, "", false
	}

	return res, batchID, true
}

// POST /analyze
func (h *handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	res, batchID, ok := h.analyzeRequest(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"batch_id": batchID,
		"result":   res,
	})
}

// POST /export
// Same inputs as /analyze; responds with an XLSX workbook, one sheet per
// derived table.
func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	res, batchID, ok := h.analyzeRequest(w, r)
	if !ok {
		return
	}

	data, err := report.Workbook(res)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "export failed")
		slog.Error("export error", "batch_id", batchID, "error", err)
		return
	}

	filename := fmt.Sprintf("offer-comparison-%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("X-Batch-ID", batchID)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("writing export response", "batch_id", batchID, "error", err)
	}
}

// GET /health
func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
