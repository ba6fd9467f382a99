// Package shots holds the shot-event data model and the CSV loading,
// merging, and normalization pipeline that produces the unified dataset
// served by the rest of the application.
package shots

// Unknown is the sentinel substituted for absent categorical values so
// that downstream filtering never has to handle missing data.
const Unknown = "Unknown"

// Shot is one shot event. Categorical fields may be empty as loaded and
// are replaced with the Unknown sentinel by Normalize. Numeric fields
// are nil when the source row had no parseable value; rows with nil
// geometry or xG are excluded from rendering but still participate in
// filtering.
type Shot struct {
	League    string   `json:"league"`
	Team      string   `json:"team"`
	Player    string   `json:"player"`
	Game      string   `json:"game"`
	Situation string   `json:"situation"`
	BodyPart  string   `json:"body_part"`
	Result    string   `json:"result"`
	LocationX *float64 `json:"location_x"`
	LocationY *float64 `json:"location_y"`
	XG        *float64 `json:"xg"`
}

// Plottable reports whether the shot carries everything the renderer
// needs: both coordinates, an xG value, and an outcome.
func (s Shot) Plottable() bool {
	return s.LocationX != nil && s.LocationY != nil && s.XG != nil && s.Result != ""
}

// Normalize replaces empty values in the categorical filter columns with
// the Unknown sentinel, in place, and returns the same slice. Columns
// not used for filtering are left untouched. Running it twice is a
// no-op.
func Normalize(recs []Shot) []Shot {
	for i := range recs {
		if recs[i].Team == "" {
			recs[i].Team = Unknown
		}
		if recs[i].Player == "" {
			recs[i].Player = Unknown
		}
		if recs[i].Game == "" {
			recs[i].Game = Unknown
		}
		if recs[i].Situation == "" {
			recs[i].Situation = Unknown
		}
		if recs[i].BodyPart == "" {
			recs[i].BodyPart = Unknown
		}
		if recs[i].Result == "" {
			recs[i].Result = Unknown
		}
	}
	return recs
}
