package server

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"checkinmonitor/internal/locale"
	"checkinmonitor/internal/models"
	"checkinmonitor/internal/theme"
)

const liveWriteTimeout = 5 * time.Second

var liveUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		host := strings.ToLower(strings.TrimSpace(r.Host))
		originHost := strings.ToLower(strings.TrimSpace(u.Host))
		return host == originHost
	},
}

type liveTimeline struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Theme       string                 `json:"theme"`
	Timeline    models.MonitorTimeline `json:"timeline"`
}

// handleTimelineWS pushes a monitor's timeline on connect and then every push interval
// until the client goes away.
func (s *Server) handleTimelineWS(w http.ResponseWriter, r *http.Request) {
	monitor := r.URL.Query().Get("monitor")
	if monitor == "" {
		writeError(w, http.StatusBadRequest, "monitor is required")
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
	loc := s.localizer(r)

	conn, err := liveUpgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	s.serveLiveConnection(conn, monitor, req, th, loc)
}

func (s *Server) serveLiveConnection(conn *websocket.Conn, monitor string, req timelineRequest, th theme.Theme, loc locale.Localizer) {
	defer conn.Close()

	push := func() error {
		_ = conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
		return conn.WriteJSON(liveTimeline{
			GeneratedAt: s.now().UTC(),
			Theme:       th.Name,
			Timeline:    s.buildTimeline(monitor, req, th, loc),
		})
	}

	if err := push(); err != nil {
		return
	}

	ticker := time.NewTicker(s.pushInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ticker.C:
			if err := push(); err != nil {
				s.log.Debug("live timeline push failed", zap.String("monitor", monitor), zap.Error(err))
				return
			}
		case <-done:
			return
		}
	}
}
