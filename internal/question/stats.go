package question

// Stats is the grouped-count summary over a scoped question set.
type Stats struct {
	TotalQuestions int            `json:"totalQuestions"`
	Subjects       map[string]int `json:"subjects"`
	PYQTypes       map[string]int `json:"pyqTypes"`
	Difficulties   map[string]int `json:"difficulties"`
}

// StatsAccumulator builds Stats one question at a time. A question with an
// empty field is skipped for that dimension only.
type StatsAccumulator struct {
	stats Stats
}

func NewStatsAccumulator() *StatsAccumulator {
	return &StatsAccumulator{
		stats: Stats{
			Subjects:     make(map[string]int),
			PYQTypes:     make(map[string]int),
			Difficulties: make(map[string]int),
		},
	}
}

func (a *StatsAccumulator) Add(q *Question) {
	a.stats.TotalQuestions++
	if q.Subject != "" {
		a.stats.Subjects[q.Subject]++
	}
	if q.PYQType != "" {
		a.stats.PYQTypes[q.PYQType]++
	}
	if q.Difficulty != "" {
		a.stats.Difficulties[q.Difficulty]++
	}
}

func (a *StatsAccumulator) Result() *Stats {
	return &a.stats
}
