package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/wordgrid/pkg/buildinfo"
	apperr "github.com/matzehuels/wordgrid/pkg/errors"
	"github.com/matzehuels/wordgrid/pkg/grid"
	"github.com/matzehuels/wordgrid/pkg/search"
	"github.com/matzehuels/wordgrid/pkg/solve"
)

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

type neighborsResponse struct {
	Cell      int   `json:"cell"`
	Width     int   `json:"width"`
	Height    int   `json:"height"`
	Neighbors []int `json:"neighbors"`
}

func (s *Server) handleNeighbors(w http.ResponseWriter, r *http.Request) {
	cell, err := strconv.Atoi(chi.URLParam(r, "cell"))
	if err != nil {
		writeError(w, apperr.New(apperr.ErrCodeInvalidCell, "cell must be an integer"))
		return
	}
	width, err := queryInt(r, "width", grid.StandardWidth)
	if err != nil {
		writeError(w, err)
		return
	}
	height, err := queryInt(r, "height", grid.StandardHeight)
	if err != nil {
		writeError(w, err)
		return
	}

	t := grid.Topology{Width: width, Height: height}
	if err := t.Validate(); err != nil {
		writeError(w, err)
		return
	}
	if err := t.ValidateCell(cell); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, neighborsResponse{
		Cell:      cell,
		Width:     width,
		Height:    height,
		Neighbors: t.Neighbors(cell),
	})
}

type solveResponse struct {
	Words   []string       `json:"words"`
	Count   int            `json:"count"`
	Cached  bool           `json:"cached"`
	Stats   search.Stats   `json:"stats"`
	Matches []search.Match `json:"matches,omitempty"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var opts solve.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, apperr.New(apperr.ErrCodeInvalidInput, "decode request: %v", err))
		return
	}

	trace, err := queryBool(r, "trace")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeError(w, err)
		return
	}
	if opts.Builtin == solve.BuiltinAll {
		b, err := opts.Board()
		if err != nil {
			writeError(w, err)
			return
		}
		if b.Cells() > MaxAcceptAllCells {
			writeError(w, apperr.New(apperr.ErrCodeInvalidInput,
				"the %q dictionary is limited to boards of at most %d cells", solve.BuiltinAll, MaxAcceptAllCells))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), solveTimeout)
	defer cancel()

	opts.Logger = s.logger.With("request_id", RequestIDFromContext(r.Context()))
	res, err := s.runner.Solve(ctx, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := solveResponse{
		Words:  res.Words,
		Count:  len(res.Words),
		Cached: res.CacheHit,
		Stats:  res.Stats,
	}
	if resp.Words == nil {
		resp.Words = []string{}
	}
	if trace {
		resp.Matches = res.Matches
	}
	writeJSON(w, http.StatusOK, resp)
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperr.New(apperr.ErrCodeInvalidInput, "%s must be an integer, got %q", name, v)
	}
	return n, nil
}

func queryBool(r *http.Request, name string) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, apperr.New(apperr.ErrCodeInvalidInput, "%s must be a boolean, got %q", name, v)
	}
	return b, nil
}
