package api

import (
	"time"

	"github.com/zapponejosh/vrata-api/internal/juldays"
	"github.com/zapponejosh/vrata-api/internal/paran"
	"github.com/zapponejosh/vrata-api/internal/vrata"
)

// vrataView is the JSON-facing rendering of a resolved Vrata, with every
// instant converted to the location's civil wall clock.
type vrataView struct {
	Type     string     `json:"type"`
	Date     string     `json:"date"`
	Location string     `json:"location"`
	Sunrise1 time.Time  `json:"sunrise1"`
	Sunrise2 time.Time  `json:"sunrise2"`
	Sunrise3 *time.Time `json:"sunrise3,omitempty"`
	Paran    paranView  `json:"paran"`
}

type paranView struct {
	Type  string     `json:"type"`
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

func renderVrata(v *vrata.Vrata) vrataView {
	loc := mustZone(v.Location)

	var sunrise3 *time.Time
	if v.Sunrise3 != nil {
		t := juldays.InLocation(*v.Sunrise3, loc)
		sunrise3 = &t
	}

	rounded := paran.Round(v.Paran, loc)

	return vrataView{
		Type:     v.Type.String(),
		Date:     v.Date.String(),
		Location: v.Location.Name,
		Sunrise1: juldays.InLocation(v.Sunrise1, loc),
		Sunrise2: juldays.InLocation(v.Sunrise2, loc),
		Sunrise3: sunrise3,
		Paran: paranView{
			Type:  rounded.Type.String(),
			Start: rounded.Start,
			End:   rounded.End,
		},
	}
}
