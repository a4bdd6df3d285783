package question

type PYQType string

const (
	PYQNone        PYQType = "Not PYQ"
	PYQJEEMain     PYQType = "JEE MAIN PYQ"
	PYQJEEAdvanced PYQType = "JEE ADVANCED PYQ"
	PYQNEET        PYQType = "NEET PYQ"
	PYQOther       PYQType = "Other"
)

var AllPYQTypes = []PYQType{
	PYQNone,
	PYQJEEMain,
	PYQJEEAdvanced,
	PYQNEET,
	PYQOther,
}

func (p PYQType) IsValid() bool {
	for _, v := range AllPYQTypes {
		if p == v {
			return true
		}
	}
	return false
}

type Shift string

const (
	ShiftSession1 Shift = "Session 1"
	ShiftSession2 Shift = "Session 2"
	ShiftNA       Shift = "N/A"
)

var AllShifts = []Shift{
	ShiftSession1,
	ShiftSession2,
	ShiftNA,
}

func (s Shift) IsValid() bool {
	for _, v := range AllShifts {
		if s == v {
			return true
		}
	}
	return false
}
