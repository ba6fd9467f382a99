package api

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/pitchlab/shotmap/internal/filter"
	"github.com/pitchlab/shotmap/internal/httputil"
	"github.com/pitchlab/shotmap/internal/monitoring"
	"github.com/pitchlab/shotmap/internal/pitch"
	"github.com/pitchlab/shotmap/internal/security"
)

// renderPNG runs the full pipeline for the given selections and returns
// the PNG bytes, consulting the render cache first. Returns
// pitch.ErrNoShots when the filtered set is empty.
func (s *Server) renderPNG(sel filter.Selections) ([]byte, error) {
	key := cacheKey("png", sel)
	if cached, ok := s.renders.Get(key); ok {
		return cached.([]byte), nil
	}

	filtered := filter.ApplyPlottable(s.dataset, sel)

	var buf bytes.Buffer
	if err := pitch.WritePNG(&buf, filtered, pitch.Title(sel)); err != nil {
		return nil, err
	}

	img := buf.Bytes()
	s.renders.SetDefault(key, img)
	monitoring.Logf("rendered shot map (%d shots, %d bytes)", len(filtered), len(img))
	return img, nil
}

func (s *Server) handleShotMapPNG(w http.ResponseWriter, r *http.Request) {
	sel := s.parseSelections(r.URL.Query())
	if !s.validLeague(sel.League) {
		httputil.BadRequest(w, "unknown league "+sel.League)
		return
	}

	img, err := s.renderPNG(sel)
	if errors.Is(err, pitch.ErrNoShots) {
		httputil.WriteMessage(w, NoShotsMessage)
		return
	}
	if err != nil {
		httputil.InternalServerError(w, "failed to render shot map: "+err.Error())
		return
	}
	httputil.WritePNG(w, img)
}

// handleExport renders the current selection to a PNG file in the
// export directory and returns its name. File names are uuid-based so
// concurrent exports never collide.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if s.exportDir == "" {
		httputil.NotFound(w, "no export directory configured")
		return
	}

	sel := s.parseSelections(r.URL.Query())
	if !s.validLeague(sel.League) {
		httputil.BadRequest(w, "unknown league "+sel.League)
		return
	}

	img, err := s.renderPNG(sel)
	if errors.Is(err, pitch.ErrNoShots) {
		httputil.WriteMessage(w, NoShotsMessage)
		return
	}
	if err != nil {
		httputil.InternalServerError(w, "failed to render shot map: "+err.Error())
		return
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		httputil.InternalServerError(w, "failed to create export directory: "+err.Error())
		return
	}

	name := "shotmap-" + uuid.NewString() + ".png"
	path := filepath.Join(s.exportDir, name)
	if err := security.ValidatePathWithinDirectory(path, s.exportDir); err != nil {
		httputil.InternalServerError(w, "invalid export path: "+err.Error())
		return
	}
	if err := os.WriteFile(path, img, 0o644); err != nil {
		httputil.InternalServerError(w, "failed to write export: "+err.Error())
		return
	}

	monitoring.Logf("exported shot map to %s", path)
	httputil.WriteJSON(w, http.StatusCreated, map[string]string{"file": name})
}
