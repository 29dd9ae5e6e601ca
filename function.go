package wordsearch

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

// FunctionName is the entry point name the function is registered under.
const FunctionName = "GenerateWordSearch"

const maxRequestBytes = 1 << 20

func init() {
	functions.HTTP(FunctionName, GenerateWordSearch)
}

// Service answers puzzle generation requests over HTTP.
type Service struct {
	config *Config
	logger *slog.Logger
	words  WordSource
	now    func() time.Time
}

// NewService creates a service. words may be nil, in which case themed requests without words are
// rejected.
func NewService(cfg *Config, logger *slog.Logger, words WordSource) *Service {
	return &Service{config: cfg, logger: logger, words: words, now: time.Now}
}

type errorResp struct {
	Error string `json:"error"`
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResp{Error: "method not allowed"})
		return
	}

	var req Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}

	if len(req.Words) == 0 && req.Theme != "" {
		words, err := s.themeWords(r.Context(), req)
		if err != nil {
			s.logger.Error("load theme words", slog.String("theme", req.Theme), slog.String("error", err.Error()))
			writeJSON(w, http.StatusBadGateway, errorResp{Error: err.Error()})
			return
		}
		req.Words = words
	}

	p, err := BuildPuzzle(s.config, req, s.now())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidRequest) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorResp{Error: err.Error()})
		return
	}

	s.logger.Info("generated puzzle",
		slog.String("id", p.ID),
		slog.Uint64("seed", p.Seed),
		slog.String("difficulty", p.Difficulty),
		slog.Int("size", p.Grid.Size()),
		slog.Int("placed", len(p.Placed)),
		slog.Int("discarded", len(p.Discarded)),
		slog.Int("rejected", len(p.Rejected)),
		slog.Int("attempts", p.Attempts),
	)
	writeJSON(w, http.StatusOK, p)
}

func (s *Service) themeWords(ctx context.Context, req Request) ([]string, error) {
	if s.words == nil {
		return nil, errors.New("no word source configured for themed requests")
	}
	maxLen := req.GridSize
	if maxLen == 0 {
		maxLen = s.config.DefaultGridSize
	}
	return s.words.LoadWords(ctx, req.Theme, maxLen, s.config.ThemeWordLimit)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var (
	defaultOnce    sync.Once
	defaultService *Service
	defaultErr     error
)

// GenerateWordSearch is the HTTP Cloud Function. Configuration comes from the environment, or from
// the YAML file named by WORDSEARCH_CONFIG. A BigQuery word source is attached when both a project
// and a words table are configured.
func GenerateWordSearch(w http.ResponseWriter, r *http.Request) {
	defaultOnce.Do(func() {
		defaultService, defaultErr = newDefaultService(context.Background())
	})
	if defaultErr != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		writeJSON(w, http.StatusInternalServerError, errorResp{Error: defaultErr.Error()})
		return
	}
	defaultService.ServeHTTP(w, r)
}

func newDefaultService(ctx context.Context) (*Service, error) {
	cfg, err := LoadConfig(os.Getenv("WORDSEARCH_CONFIG"))
	if err != nil {
		return nil, err
	}
	logger := NewLogger(os.Stderr, cfg.Log)

	var words WordSource
	if cfg.ProjectID != "" && cfg.WordsTable != "" {
		src, err := NewBigQueryWords(ctx, cfg)
		if err != nil {
			return nil, err
		}
		words = src
	}
	return NewService(cfg, logger, words), nil
}
