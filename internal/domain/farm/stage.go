package farm

// Stage is a plot's growth phase. Stages only move forward, one at a time.
type Stage int

const (
	StageTilled Stage = iota
	StageSeeded
	StageGrowing
	StageReady
)

var stageNames = [...]string{
	StageTilled:  "tilled",
	StageSeeded:  "seeded",
	StageGrowing: "growing",
	StageReady:   "ready",
}

func (s Stage) String() string {
	if s < StageTilled || s > StageReady {
		return "unknown"
	}
	return stageNames[s]
}

// Next returns the following stage; Ready has none.
func (s Stage) Next() (Stage, bool) {
	if s < StageTilled || s >= StageReady {
		return s, false
	}
	return s + 1, true
}

// Grows reports whether time in this stage can move the plot forward.
// Tilled waits for a seed and Ready waits for harvest.
func (s Stage) Grows() bool {
	return s == StageSeeded || s == StageGrowing
}

func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func ParseStage(raw string) (Stage, bool) {
	for i, name := range stageNames {
		if name == raw {
			return Stage(i), true
		}
	}
	return 0, false
}
