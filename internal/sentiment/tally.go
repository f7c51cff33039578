package sentiment

import "log/slog"

// Tally counts labels for one analysis. Unknown labels are kept out of the
// three sentiment counts and recorded in Discarded instead.
type Tally struct {
	Positive  int `json:"positive"`
	Negative  int `json:"negative"`
	Neutral   int `json:"neutral"`
	Discarded int `json:"discarded"`
}

func (t *Tally) Add(l Label) {
	switch l {
	case Positive:
		t.Positive++
	case Negative:
		t.Negative++
	case Neutral:
		t.Neutral++
	case Unknown:
		t.Discarded++
	default:
		slog.Warn("[Tally] Label out of range, discarding", slog.Int("label", int(l)))
		t.Discarded++
	}
}

// Counted is positive + negative + neutral.
func (t Tally) Counted() int {
	return t.Positive + t.Negative + t.Neutral
}

// Total is every label added, including discarded ones.
func (t Tally) Total() int {
	return t.Counted() + t.Discarded
}

func TallyLabels(labels []Label) Tally {
	var t Tally
	for _, l := range labels {
		t.Add(l)
	}
	return t
}
