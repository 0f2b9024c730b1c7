package cli

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/matzehuels/piechart/pkg/buildinfo"
	"github.com/matzehuels/piechart/pkg/cache"
	"github.com/matzehuels/piechart/pkg/chartfile"
	"github.com/matzehuels/piechart/pkg/errors"
	"github.com/matzehuels/piechart/pkg/observability"
	"github.com/matzehuels/piechart/pkg/pipeline"
	"github.com/matzehuels/piechart/pkg/render/chart"
	"github.com/matzehuels/piechart/pkg/render/pie"
)

const (
	// defaultRequestTimeout bounds a single layout or render request.
	defaultRequestTimeout = 30 * time.Second

	// maxChartBytes limits the size of an uploaded chart file.
	maxChartBytes = 1 << 20

	headerRequestID = "X-Request-ID"
	headerCache     = "X-Cache"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
}

type serverConfig struct {
	timeout  time.Duration
	origins  []string
	cache    cache.Cache
	cacheTTL time.Duration
}

// server is the HTTP API around the pipeline.
type server struct {
	logger *log.Logger
	cfg    serverConfig
	keyer  cache.Keyer
}

func newServer(logger *log.Logger, cfg serverConfig) *server {
	if cfg.timeout <= 0 {
		cfg.timeout = defaultRequestTimeout
	}
	if cfg.cache == nil {
		cfg.cache = cache.NewNullCache()
	}
	if cfg.cacheTTL <= 0 {
		cfg.cacheTTL = cache.DefaultTTL
	}
	return &server{
		logger: logger,
		cfg:    cfg,
		keyer:  cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Get().Version+":"),
	}
}

// Router configures all routes and middleware.
func (s *server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(s.requestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	if len(s.cfg.origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.origins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", headerRequestID},
			ExposedHeaders: []string{headerRequestID, headerCache},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/palettes", s.handlePalettes)
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)
	})

	return r
}

// =============================================================================
// Middleware
// =============================================================================

type requestIDKey struct{}

// requestID assigns every request a UUID, keeping a valid incoming one, and
// attaches a request-scoped logger to the context.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)

		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		ctx = withLogger(ctx, s.logger.With("request_id", id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// observe logs every request and emits HTTP hooks.
func (s *server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := requestIDFrom(ctx)
		hooks := observability.HTTP()
		hooks.OnRequest(ctx, id, r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		duration := time.Since(start)
		hooks.OnResponse(ctx, id, r.Method, r.URL.Path, status, duration)
		loggerFromContext(ctx).Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", duration)
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// =============================================================================
// Handlers
// =============================================================================

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

type paletteInfo struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

func (s *server) handlePalettes(w http.ResponseWriter, r *http.Request) {
	names := chart.PaletteNames()
	palettes := make([]paletteInfo, len(names))
	for i, name := range names {
		palettes[i] = paletteInfo{Name: name, Colors: chart.GetColorScale(name)}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"palettes": palettes,
		"themes":   pie.ThemeNames(),
	})
}

func (s *server) handleLayout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.timeout)
	defer cancel()

	body, err := readChart(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	key := s.keyer.LayoutKey(body.data, body.format)
	if s.serveCached(ctx, w, key, pipeline.FormatJSON) {
		return
	}

	props, err := body.parse()
	if err != nil {
		writeError(w, r, err)
		return
	}
	runner := pipeline.NewRunner(loggerFromContext(ctx))
	cp, err := runner.Layout(ctx, props)
	if err != nil {
		writeError(w, r, err)
		return
	}
	artifacts, err := runner.Render(ctx, cp, pipeline.Options{
		Formats: []string{pipeline.FormatJSON},
		Paths:   true,
		Logger:  runner.Logger,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.store(ctx, key, artifacts[pipeline.FormatJSON])
	w.Header().Set(headerCache, "miss")
	writeArtifact(w, pipeline.FormatJSON, artifacts[pipeline.FormatJSON])
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.timeout)
	defer cancel()

	opts, err := renderOptionsFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	body, err := readChart(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	format := opts.Formats[0]
	key := s.keyer.ArtifactKey(body.data, body.format, cache.ArtifactKeyOpts{
		Format:      format,
		Title:       opts.Title,
		Interactive: opts.Interactive,
		Background:  opts.Background,
		Scale:       opts.Scale,
		Paths:       opts.Paths,
	})
	if s.serveCached(ctx, w, key, format) {
		return
	}

	props, err := body.parse()
	if err != nil {
		writeError(w, r, err)
		return
	}
	runner := pipeline.NewRunner(loggerFromContext(ctx))
	opts.Logger = runner.Logger
	result, err := runner.Execute(ctx, props, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.store(ctx, key, result.Artifacts[format])
	w.Header().Set(headerCache, "miss")
	writeArtifact(w, format, result.Artifacts[format])
}

// serveCached writes a cached artifact and reports whether there was one.
// Cache failures are logged and treated as misses.
func (s *server) serveCached(ctx context.Context, w http.ResponseWriter, key, format string) bool {
	data, hit, err := s.cfg.cache.Get(ctx, key)
	if err != nil {
		loggerFromContext(ctx).Warn("cache read failed", "err", err)
		return false
	}
	if !hit {
		return false
	}
	w.Header().Set(headerCache, "hit")
	writeArtifact(w, format, data)
	return true
}

func (s *server) store(ctx context.Context, key string, data []byte) {
	if err := s.cfg.cache.Set(ctx, key, data, s.cfg.cacheTTL); err != nil {
		loggerFromContext(ctx).Warn("cache write failed", "err", err)
	}
}

// =============================================================================
// Request Decoding
// =============================================================================

// chartBody is an uploaded chart file and its format name.
type chartBody struct {
	data   []byte
	format string
}

func (b chartBody) parse() (pie.Props, error) {
	return pipeline.Parse(b.data, b.format)
}

// readChart reads the request body as a chart file. The format comes from
// the chart query parameter, then the Content-Type.
func readChart(w http.ResponseWriter, r *http.Request) (chartBody, error) {
	format := r.URL.Query().Get("chart")
	if format == "" {
		format = chartFormatFromContentType(r.Header.Get("Content-Type"))
	}
	if _, err := chartfile.ParseFormat(format); err != nil {
		return chartBody{}, err
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxChartBytes))
	if err != nil {
		return chartBody{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read chart body")
	}
	if len(data) == 0 {
		return chartBody{}, errors.New(errors.ErrCodeInvalidInput, "empty chart body")
	}
	return chartBody{data: data, format: format}, nil
}

// chartFormatFromContentType maps a media type to a chart format name.
func chartFormatFromContentType(ct string) string {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return pipeline.FormatJSON
	}
	switch mt {
	case "application/toml":
		return "toml"
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return "yaml"
	default:
		return pipeline.FormatJSON
	}
}

// renderOptionsFromQuery reads render options from query parameters.
func renderOptionsFromQuery(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Title:      q.Get("title"),
		Background: q.Get("background"),
	}
	if f := q.Get("format"); f != "" {
		opts.Formats = []string{f}
	}

	var err error
	if opts.Interactive, err = queryBool(q.Get("interactive")); err != nil {
		return opts, err
	}
	if opts.Paths, err = queryBool(q.Get("paths")); err != nil {
		return opts, err
	}
	if v := q.Get("scale"); v != "" {
		if opts.Scale, err = strconv.ParseFloat(v, 64); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "scale %q is not a number", v)
		}
	}
	return opts, opts.Validate()
}

func queryBool(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "%q is not a boolean", v)
	}
	return b, nil
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	Fields    []string    `json:"fields,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// writeError writes a structured error with a status derived from its code.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		loggerFromContext(r.Context()).Error("request failed", "err", err)
	}
	writeJSON(w, status, map[string]errorBody{
		"error": {
			Code:      code,
			Message:   errors.UserMessage(err),
			Fields:    errors.Fields(err),
			RequestID: requestIDFrom(r.Context()),
		},
	})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidChart,
		errors.ErrCodeInvalidTheme, errors.ErrCodeInvalidPalette, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeUnsupported:
		return http.StatusUnsupportedMediaType
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeArtifact(w http.ResponseWriter, format string, data []byte) {
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
