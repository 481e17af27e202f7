package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"checkinmonitor/internal/checkin"
	"checkinmonitor/internal/config"
	"checkinmonitor/internal/history"
	"checkinmonitor/internal/locale"
	"checkinmonitor/internal/metrics"
	"checkinmonitor/internal/models"
	"checkinmonitor/internal/query"
	"checkinmonitor/internal/schedule"
	"checkinmonitor/internal/storage"
	"checkinmonitor/internal/theme"
	"checkinmonitor/internal/tickstyle"
)

const maxCheckInBody = 64 << 10

// Server wraps HTTP serving of the check-in API.
type Server struct {
	httpServer     *http.Server
	storage        *storage.CheckInStorage
	themes         *theme.Registry
	locales        *locale.Registry
	log            *zap.Logger
	timelinePoints int
	timelineWindow time.Duration
	pushInterval   time.Duration
	now            func() time.Time
}

// New creates a configured HTTP server.
func New(cfg config.Config, store *storage.CheckInStorage, themes *theme.Registry, locales *locale.Registry, log *zap.Logger) *Server {
	mux := http.NewServeMux()
	s := &Server{
		httpServer:     &http.Server{Addr: cfg.Addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second},
		storage:        store,
		themes:         themes,
		locales:        locales,
		log:            log,
		timelinePoints: cfg.TimelinePoints,
		timelineWindow: time.Duration(cfg.TimelineHours) * time.Hour,
		pushInterval:   time.Duration(cfg.PushIntervalSeconds) * time.Second,
		now:            time.Now,
	}
	if s.pushInterval <= 0 {
		s.pushInterval = time.Minute
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.registerRoutes(mux)
	return s
}

// Handler exposes the routing handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run blocks and serves HTTP traffic.
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts the server down.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/statuses", s.handleStatuses)
	mux.HandleFunc("GET /api/intervals", s.handleIntervals)
	mux.HandleFunc("GET /api/organizations/{org}/monitors/query", s.handleListQuery)
	mux.HandleFunc("GET /api/projects/{org}/{project}/monitors/{monitor}/query", s.handleDetailQuery)
	mux.HandleFunc("POST /api/checkins", s.handleCheckIn)
	mux.HandleFunc("GET /api/monitors", s.handleMonitors)
	mux.HandleFunc("GET /api/monitors/{monitor}/timeline", s.handleTimeline)
	mux.HandleFunc("GET /ws/timeline", s.handleTimelineWS)
}

type legendEntry struct {
	Status checkin.Status       `json:"status"`
	Label  string               `json:"label"`
	Style  tickstyle.TickStyle  `json:"style"`
	Render tickstyle.RenderSpec `json:"render"`
	CSS    string               `json:"css"`
}

func (s *Server) handleStatuses(w http.ResponseWriter, r *http.Request) {
	th, ok := s.resolveTheme(w, r)
	if !ok {
		return
	}
	loc := s.localizer(r)

	entries := make([]legendEntry, 0, checkin.NumStatuses)
	for _, status := range checkin.Statuses() {
		spec := tickstyle.Resolve(status, th)
		entries = append(entries, legendEntry{
			Status: status,
			Label:  checkin.LabelFor(status, loc),
			Style:  tickstyle.StyleFor(status),
			Render: spec,
			CSS:    spec.CSS(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"theme":    th.Name,
		"statuses": entries,
	})
}

func (s *Server) handleIntervals(w http.ResponseWriter, r *http.Request) {
	n := 1
	if raw := r.URL.Query().Get("n"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "n must be an integer")
			return
		}
		n = value
	}
	writeJSON(w, http.StatusOK, schedule.IntervalsFor(n, s.localizer(r)))
}

type descriptorResponse struct {
	Path   string       `json:"path"`
	Params query.Params `json:"params"`
	Key    string       `json:"key"`
}

func describe(d query.Descriptor) descriptorResponse {
	return descriptorResponse{Path: d.Path, Params: d.Params, Key: d.Key()}
}

func (s *Server) handleListQuery(w http.ResponseWriter, r *http.Request) {
	d := query.ListKey(r.PathValue("org"), query.FiltersFromValues(r.URL.Query()))
	writeJSON(w, http.StatusOK, describe(d))
}

func (s *Server) handleDetailQuery(w http.ResponseWriter, r *http.Request) {
	q := query.QueryFromValues(r.URL.Query())
	d := query.DetailKey(r.PathValue("org"), r.PathValue("project"), r.PathValue("monitor"), q)
	writeJSON(w, http.StatusOK, describe(d))
}

func (s *Server) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	var report models.CheckInReport
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCheckInBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&report); err != nil {
		writeError(w, http.StatusBadRequest, "invalid check-in: "+err.Error())
		return
	}
	entry, err := report.CheckIn()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid check-in: "+err.Error())
		return
	}
	stored, err := s.storage.Append(entry)
	if errors.Is(err, storage.ErrOutsideRetention) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.log.Debug("check-in recorded",
		zap.String("monitor", stored.Monitor),
		zap.Stringer("status", stored.Status),
		zap.Time("timestamp", stored.Timestamp),
	)
	writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) handleMonitors(w http.ResponseWriter, r *http.Request) {
	loc := s.localizer(r)
	names := s.storage.Monitors()
	summaries := make([]metrics.MonitorSummary, 0, len(names))
	for _, name := range names {
		summaries = append(summaries, metrics.ComputeMonitorSummary(name, s.storage.History(name), loc))
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	monitor := r.PathValue("monitor")
	if _, ok := s.storage.Latest(monitor); !ok {
		writeError(w, http.StatusNotFound, "unknown monitor "+monitor)
		return
	}
	th, ok := s.resolveTheme(w, r)
	if !ok {
		return
	}
	req, err := s.parseTimelineRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.buildTimeline(monitor, req, th, s.localizer(r)))
}

type timelineRequest struct {
	points int
	window time.Duration
}

func (s *Server) parseTimelineRequest(r *http.Request) (timelineRequest, error) {
	req := timelineRequest{points: s.timelinePoints, window: s.timelineWindow}
	values := r.URL.Query()
	if raw := values.Get("points"); raw != "" {
		points, err := strconv.Atoi(raw)
		if err != nil || points <= 0 || points > 1440 {
			return req, errors.New("points must be between 1 and 1440")
		}
		req.points = points
	}
	if raw := values.Get("hours"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 || hours > 24*90 {
			return req, errors.New("hours must be between 1 and 2160")
		}
		req.window = time.Duration(hours) * time.Hour
	}
	return req, nil
}

func (s *Server) buildTimeline(monitor string, req timelineRequest, th theme.Theme, loc locale.Localizer) models.MonitorTimeline {
	end := s.now().UTC()
	start := end.Add(-req.window)
	entries := s.storage.HistoryBetween(monitor, start, end)
	return history.BuildMonitorTimeline(monitor, entries, start, end, history.Options{
		Points:    req.points,
		Lookup:    th,
		Localizer: loc,
	})
}

func (s *Server) resolveTheme(w http.ResponseWriter, r *http.Request) (theme.Theme, bool) {
	th, err := s.themes.Get(r.URL.Query().Get("theme"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return theme.Theme{}, false
	}
	return th, true
}

func (s *Server) localizer(r *http.Request) locale.Localizer {
	return s.locales.Match(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
