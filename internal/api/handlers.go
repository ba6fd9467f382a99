package api

import (
	"net/http"
	"net/url"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pitchlab/shotmap/internal/filter"
	"github.com/pitchlab/shotmap/internal/httputil"
	"github.com/pitchlab/shotmap/internal/shots"
	"github.com/pitchlab/shotmap/internal/version"
)

// NoShotsMessage is the neutral response when the filtered set is
// empty. Matches the message shown by the UI.
const NoShotsMessage = "No shots match the selected filters."

// parseSelections reads filter selections from repeated query
// parameters. A missing league defaults to the dataset's default
// league so a bare request renders something sensible.
func (s *Server) parseSelections(q url.Values) filter.Selections {
	sel := filter.Selections{
		League:     q.Get("league"),
		Teams:      q["team"],
		Players:    q["player"],
		Games:      q["game"],
		Situations: q["situation"],
		BodyParts:  q["body_part"],
		Results:    q["result"],
	}
	if sel.League == "" {
		sel.League = filter.DefaultLeague(filter.Leagues(s.dataset))
	}
	return sel
}

// validLeague reports whether the league names a league present in the
// dataset.
func (s *Server) validLeague(league string) bool {
	for _, l := range filter.Leagues(s.dataset) {
		if l == league {
			return true
		}
	}
	return false
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONOK(w, map[string]interface{}{
		"status":     "ok",
		"shots":      len(s.dataset),
		"version":    version.Version,
		"git_sha":    version.GitSHA,
		"build_time": version.BuildTime,
	})
}

func (s *Server) handleLeagues(w http.ResponseWriter, r *http.Request) {
	leagues := filter.Leagues(s.dataset)
	httputil.WriteJSONOK(w, map[string]interface{}{
		"leagues": leagues,
		"default": filter.DefaultLeague(leagues),
	})
}

// handleOptions returns every stage's candidate choices for the given
// selections, plus the current filtered (plottable) shot count.
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	sel := s.parseSelections(r.URL.Query())
	if !s.validLeague(sel.League) {
		httputil.BadRequest(w, "unknown league "+sel.League)
		return
	}

	opts := filter.OptionsFor(s.dataset, sel)
	count := len(filter.ApplyPlottable(s.dataset, sel))
	httputil.WriteJSONOK(w, map[string]interface{}{
		"options":    opts,
		"selections": sel,
		"count":      count,
	})
}

// summaryResponse carries the aggregate view of the filtered set.
type summaryResponse struct {
	Count    int            `json:"count"`
	Goals    int            `json:"goals"`
	TotalXG  float64        `json:"total_xg"`
	MeanXG   float64        `json:"mean_xg"`
	ByResult map[string]int `json:"by_result"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sel := s.parseSelections(r.URL.Query())
	if !s.validLeague(sel.League) {
		httputil.BadRequest(w, "unknown league "+sel.League)
		return
	}

	filtered := filter.ApplyPlottable(s.dataset, sel)

	resp := summaryResponse{
		Count:    len(filtered),
		ByResult: make(map[string]int),
	}
	xgs := make([]float64, 0, len(filtered))
	for _, rec := range filtered {
		resp.ByResult[rec.Result]++
		xgs = append(xgs, *rec.XG)
	}
	resp.Goals = resp.ByResult["Goal"]
	if len(xgs) > 0 {
		resp.TotalXG = floats.Sum(xgs)
		resp.MeanXG = stat.Mean(xgs, nil)
	}
	httputil.WriteJSONOK(w, resp)
}

func (s *Server) handleDBStats(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		httputil.NotFound(w, "no snapshot database configured")
		return
	}
	counts, err := s.store.CountByLeague()
	if err != nil {
		httputil.InternalServerError(w, "failed to read snapshot stats: "+err.Error())
		return
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	httputil.WriteJSONOK(w, map[string]interface{}{
		"by_league": counts,
		"total":     total,
	})
}

// cacheKey derives a canonical, order-insensitive key for a selection
// set, used to cache rendered artifacts.
func cacheKey(kind string, sel filter.Selections) string {
	var b strings.Builder
	b.WriteString(kind)
	b.WriteString("|league=")
	b.WriteString(sel.League)
	for _, stage := range []struct {
		name   string
		values []string
	}{
		{"teams", sel.Teams},
		{"players", sel.Players},
		{"games", sel.Games},
		{"situations", sel.Situations},
		{"body_parts", sel.BodyParts},
		{"results", sel.Results},
	} {
		vals := append([]string(nil), stage.values...)
		sort.Strings(vals)
		b.WriteString("|")
		b.WriteString(stage.name)
		b.WriteString("=")
		b.WriteString(strings.Join(vals, ","))
	}
	return b.String()
}

// present returns the distinct result values in the filtered set.
func present(recs []shots.Shot) map[string]bool {
	out := make(map[string]bool)
	for _, rec := range recs {
		out[rec.Result] = true
	}
	return out
}
