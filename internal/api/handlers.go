package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-chi/chi/v5/middleware"

	sterrors "github.com/matzehuels/testspec/pkg/errors"
	"github.com/matzehuels/testspec/pkg/observability"
	"github.com/matzehuels/testspec/pkg/pipeline"
)

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts := s.defaults
	if f := r.URL.Query().Get("format"); f != "" {
		opts.Format = f
	}
	if v := r.URL.Query().Get("refresh"); v != "" {
		refresh, err := strconv.ParseBool(v)
		if err != nil {
			jsonError(w, sterrors.New(sterrors.ErrCodeInvalidInput, "refresh must be a boolean, got %q", v), http.StatusBadRequest)
			return
		}
		opts.Refresh = refresh
	}
	opts.Logger = s.log.With("request_id", middleware.GetReqID(r.Context()))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, sterrors.New(sterrors.ErrCodeInvalidInput, "body exceeds %d bytes", s.maxBody), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, sterrors.Wrap(sterrors.ErrCodeIO, err, "read body"), http.StatusBadRequest)
		return
	}

	result, err := s.runner.Execute(r.Context(), body, opts)
	if err != nil {
		status := http.StatusInternalServerError
		if sterrors.IsInputError(err) {
			status = http.StatusBadRequest
		} else {
			observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
			s.log.Error("render failed", "error", err)
		}
		jsonError(w, err, status)
		return
	}

	cacheStatus := "MISS"
	if result.CacheHit {
		cacheStatus = "HIT"
	}
	w.Header().Set("Content-Type", pipeline.ContentType(result.Format))
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", artifactName(result.Spec.Title)+pipeline.Extension(result.Format)))
	w.Header().Set("X-Cache", cacheStatus)
	w.Header().Set("X-Spec-Hash", result.SpecHash)
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Artifact)))
	w.Write(result.Artifact)
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func jsonError(w http.ResponseWriter, err error, status int) {
	code := sterrors.GetCode(err)
	if code == "" {
		code = sterrors.ErrCodeInternal
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: sterrors.UserMessage(err), Code: string(code)})
}

// artifactName turns a spec title into a download file name. Letters and
// digits are kept, runs of anything else become a single '-'.
func artifactName(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	name := strings.TrimSuffix(b.String(), "-")
	if name == "" {
		return "spec"
	}
	return name
}
