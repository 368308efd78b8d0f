// Package server provides the GoCaptcha HTTP API: challenge generation
// and single-use answer verification backed by an in-memory store.
package server

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/xob0t/GoCaptcha/pkg/captcha"
)

// challengeTTL is how long an unanswered captcha stays verifiable.
const challengeTTL = 5 * time.Minute

// seedSize is the number of random bytes drawn per challenge. The
// library is deterministic per seed; the service is the one place where
// fresh entropy enters.
const seedSize = 16

type srv struct {
	store Store
}

// RunServe starts the captcha API server on the given port.
func RunServe(args []string) error {
	port := "8080"
	for i, a := range args {
		if (a == "--port" || a == "-p") && i+1 < len(args) {
			port = args[i+1]
		}
	}

	s := &srv{store: NewMemoryStore(challengeTTL)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/captcha", s.handleGenerate)
	mux.HandleFunc("POST /api/verify", s.handleVerify)

	log.Printf("GoCaptcha server listening on http://localhost:%s", port)
	return http.ListenAndServe(":"+port, mux)
}

// challengeResponse is the public shape of a generated captcha. The
// answer never leaves the store.
type challengeResponse struct {
	ID    string `json:"id"`
	Image string `json:"image"` // JPEG data URI
}

// handleGenerate issues a fresh challenge. Query parameters length,
// width, height, mode, complexity and quality tune the image; invalid
// values are corrected by the builder's own clamping.
func (s *srv) handleGenerate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	builder := captcha.NewBuilder().
		Length(intParam(q.Get("length"), 4)).
		Width(intParam(q.Get("width"), 140)).
		Height(intParam(q.Get("height"), 40)).
		Mode(captcha.ColorMode(intParam(q.Get("mode"), 1))).
		Complexity(intParam(q.Get("complexity"), 4))

	seed := make([]byte, seedSize)
	if _, err := rand.Read(seed); err != nil {
		httpError(w, http.StatusInternalServerError, fmt.Errorf("draw seed: %w", err))
		return
	}

	c := builder.Generate(seed)
	id := randomID()
	s.store.Set(id, c.Text())

	writeJSON(w, challengeResponse{
		ID:    id,
		Image: c.ToBase64(intParam(q.Get("quality"), 30)),
	})
}

type verifyRequest struct {
	ID     string `json:"id"`
	Answer string `json:"answer"`
}

type verifyResponse struct {
	OK bool `json:"ok"`
}

// handleVerify checks an answer and consumes the challenge on success.
func (s *srv) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.ID == "" || req.Answer == "" {
		httpError(w, http.StatusBadRequest, fmt.Errorf("id and answer are required"))
		return
	}

	writeJSON(w, verifyResponse{OK: s.store.Verify(req.ID, req.Answer, true)})
}

// intParam parses a query parameter, falling back on empty or bad input.
// Out-of-range values are left to the builder's clamping.
func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func httpError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func randomID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
