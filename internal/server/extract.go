package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"go.uber.org/zap"

	"github.com/thywilljoshua/pdflayout/internal/extract"
	"github.com/thywilljoshua/pdflayout/internal/render"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Page  int    `json:"page,omitempty"`
}

// handleExtract accepts the PDF as the raw request body or as the "file"
// field of a multipart form.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = render.FormatJSON
	}
	if format != render.FormatJSON && format != render.FormatText && format != render.FormatMarkdown {
		writeError(w, http.StatusBadRequest, errorResponse{Error: "unknown format " + format, Kind: "request"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
	data, err := s.readUpload(r)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "pdf exceeds upload limit", Kind: "request"})
			return
		}
		writeError(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "request"})
		return
	}

	res, err := s.ex.Extract(r.Context(), data)
	if err != nil {
		s.writeExtractError(w, err)
		return
	}

	switch format {
	case render.FormatText:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	case render.FormatMarkdown:
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	default:
		w.Header().Set("Content-Type", "application/json")
	}
	if err := render.Write(w, res, format); err != nil {
		s.log.Warn("write response", zap.Error(err))
	}
}

func (s *Server) readUpload(r *http.Request) ([]byte, error) {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt != "multipart/form-data" {
		return io.ReadAll(r.Body)
	}
	f, _, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (s *Server) writeExtractError(w http.ResponseWriter, err error) {
	var (
		de *extract.DecodeError
		pe *extract.PageAccessError
	)
	switch {
	case errors.Is(err, extract.ErrEmptyInput):
		writeError(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "request"})
	case errors.As(err, &de):
		writeError(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: "decode"})
	case errors.As(err, &pe):
		writeError(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: "page", Page: pe.Page})
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, errorResponse{Error: err.Error(), Kind: "timeout"})
	default:
		s.log.Error("extract failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Kind: "internal"})
	}
}

func writeError(w http.ResponseWriter, status int, body errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
