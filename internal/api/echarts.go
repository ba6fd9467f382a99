package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pitchlab/shotmap/internal/filter"
	"github.com/pitchlab/shotmap/internal/httputil"
	"github.com/pitchlab/shotmap/internal/pitch"
	"github.com/pitchlab/shotmap/internal/shots"
)

// echartsResultColors mirrors the pitch palette as CSS colors for the
// interactive chart.
var echartsResultColors = map[string]string{
	"Goal":         "yellow",
	"Missed Shot":  "red",
	"Blocked Shot": "gray",
	"Saved Shot":   "blue",
	"Shot On Post": "orange",
	"Unknown":      "purple",
}

func echartsColorFor(result string) string {
	if c, ok := echartsResultColors[result]; ok {
		return c
	}
	return "black"
}

// handleShotMapChart renders the filtered set as an interactive
// go-echarts scatter (HTML). One series per outcome present keeps the
// chart legend aligned with the PNG legend: outcomes with zero shots
// never appear.
func (s *Server) handleShotMapChart(w http.ResponseWriter, r *http.Request) {
	sel := s.parseSelections(r.URL.Query())
	if !s.validLeague(sel.League) {
		httputil.BadRequest(w, "unknown league "+sel.League)
		return
	}

	filtered := filter.ApplyPlottable(s.dataset, sel)
	if len(filtered) == 0 {
		httputil.WriteMessage(w, NoShotsMessage)
		return
	}

	byResult := make(map[string][]shots.Shot)
	for _, rec := range filtered {
		byResult[rec.Result] = append(byResult[rec.Result], rec)
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Shot Map",
			Width:     "1200px",
			Height:    "800px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    pitch.Title(sel),
			Subtitle: fmt.Sprintf("%d shots, marker size scales with xG", len(filtered)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: pitch.Length, Name: "Pitch length"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: pitch.Width, Name: "Pitch width"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	for _, result := range pitch.LegendResults(present(filtered)) {
		recs := byResult[result]
		data := make([]opts.ScatterData, 0, len(recs))
		for _, rec := range recs {
			size := int(float64(pitch.MarkerRadius(*rec.XG)) * 2)
			data = append(data, opts.ScatterData{
				Value:      []interface{}{*rec.LocationX * pitch.Length, *rec.LocationY * pitch.Width, *rec.XG, rec.Player},
				SymbolSize: size,
			})
		}
		scatter.AddSeries(result, data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: echartsColorFor(result), Opacity: opts.Float(0.7)}),
		)
	}

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		httputil.InternalServerError(w, "failed to render chart: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
