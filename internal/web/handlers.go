package web

import (
	"fmt"
	"io"
	"net/http"

	"github.com/JonMunkholm/GradeSync/internal/core"
	"github.com/JonMunkholm/GradeSync/internal/logging"
	"github.com/JonMunkholm/GradeSync/internal/web/templates"
	"github.com/go-chi/chi/v5"
)

// handleIndex serves the upload form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	templates.IndexPage().Render(r.Context(), w)
}

// handleMerge accepts the two export files as a multipart form, runs the
// merge, and stores the result for download. Browsers get the report
// page; API clients get the report as JSON with the merge ID.
func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	// Two files plus form overhead.
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, 2*maxSize+1024)

	if err := r.ParseMultipartForm(2 * maxSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "files too large or invalid form")
		return
	}

	gradebookData, err := readFormFile(r, "gradebook", maxSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	providerData, err := readFormFile(r, "provider", maxSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	output, report, err := core.Merge(gradebookData, providerData)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsFatal(err) {
			status = http.StatusUnprocessableEntity
		}
		s.respondError(w, r, err, status)
		return
	}

	mergeID := s.store.Put(output, report)

	logger.Info("merge completed",
		"merge_id", mergeID,
		"matched", report.Matched,
		"scores_updated", report.ScoresUpdated,
		"unmatched_gradebook", len(report.UnmatchedGradebook),
		"unmatched_provider", len(report.UnmatchedProvider),
		"invalid_values", len(report.InvalidValues),
		"ambiguities", report.Ambiguities,
	)

	if wantsJSON(r) && !isHTMX(r) {
		writeJSON(w, map[string]any{
			"mergeId": mergeID,
			"report":  report,
		})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	templates.ReportPage(mergeID, report).Render(r.Context(), w)
}

// handleReport returns the stored report for a completed merge.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	mergeID := chi.URLParam(r, "mergeID")

	res := s.store.Get(mergeID)
	if res == nil {
		writeError(w, http.StatusNotFound, "merge result not found or expired")
		return
	}

	writeJSON(w, res.Report)
}

// handleDownload streams the updated gradebook CSV as an attachment.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	mergeID := chi.URLParam(r, "mergeID")

	res := s.store.Get(mergeID)
	if res == nil {
		writeError(w, http.StatusNotFound, "merge result not found or expired")
		return
	}

	filename := "gradebook_updated_" + res.Created.Format("20060102_150405") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(res.Output)
}

// readFormFile reads one uploaded file into memory, enforcing the
// per-file size limit.
func readFormFile(r *http.Request, field string, maxSize int64) ([]byte, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("missing %s file", field)
	}
	defer file.Close()

	if header.Size > maxSize {
		return nil, fmt.Errorf("%s file exceeds the %d byte limit", field, maxSize)
	}

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s file: %w", field, err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%s file exceeds the %d byte limit", field, maxSize)
	}
	return data, nil
}
