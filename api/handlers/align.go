// Package handlers implements the HTTP handlers for the codon-aware
// alignment REST service.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aria-lang/codonalign/pkg/codonalign"
)

// Service binds the HTTP handlers to a single preloaded annotated
// reference -- the server loads its reference/CDS files once at startup
// and every request aligns against it.
type Service struct {
	Aligner *codonalign.Aligner
}

// AlignRequest is the JSON body /api/align expects: an identifier to
// attach to the reported statistics and the raw query nucleotide string.
type AlignRequest struct {
	ID    string `json:"id"`
	Query string `json:"query"`
}

// AlignResponse carries the raw edit-script alongside the per-CDS
// Statistics JSON objects spec.md describes.
type AlignResponse struct {
	Score int                     `json:"score"`
	Cigar string                  `json:"cigar"`
	Stats []codonalign.Statistics `json:"stats"`
}

// AlignHandler handles POST /api/align: codon-aware global alignment of
// the request's query sequence against the service's bound reference.
func (s *Service) AlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	query, err := codonalign.ParseNucleotideSequence(req.Query)
	if err != nil {
		http.Error(w, `{"error": "query: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	stats, solution, err := s.Aligner.AlignAndReport(req.ID, query)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AlignResponse{
		Score: solution.Score,
		Cigar: solution.Cigar.String(),
		Stats: stats,
	})
}
