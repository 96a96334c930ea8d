package workouts

import (
	"regexp"
	"strconv"
	"strings"
)

// WorkoutSet is one logged set of an exercise. Weight 0 marks a
// bodyweight set (reps against body weight, not literally no load).
// The warmup set is always SetNumber 0, working sets count from 1.
type WorkoutSet struct {
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	IsWarmup  bool    `json:"isWarmup"`
	SetNumber int     `json:"setNumber"`
}

// Volume of a set; warmup sets never contribute to any aggregate.
func (s WorkoutSet) Volume() float64 {
	if s.IsWarmup {
		return 0
	}
	return s.Weight * float64(s.Reps)
}

// SetValue is the weight/reps fragment encoded in a single grid cell.
type SetValue struct {
	Weight float64
	Reps   int
}

var (
	// "70kg, 5" / "70kg 5" / "70.5KG,5"
	setValueKgRe = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*kg\s*(?:,\s*|\s+)(\d+)\s*$`)
	// "70, 5" (no unit, comma required)
	setValueBareRe = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*,\s*(\d+)\s*$`)
	// "12" - reps only, bodyweight
	repsOnlyRe = regexp.MustCompile(`^\s*(\d+)\s*$`)
)

// ParseSetValue decodes the textual set encoding of a single cell.
// Accepted, in priority order: "<weight>kg, <reps>", "<weight>kg <reps>",
// "<weight>, <reps>", and a bare integer meaning bodyweight reps.
// Anything else (empty cells, stray spreadsheet text, negative numbers)
// means "no set logged" and yields nil - never an error.
func ParseSetValue(cell string) *SetValue {
	if strings.TrimSpace(cell) == "" {
		return nil
	}

	if m := setValueKgRe.FindStringSubmatch(cell); m != nil {
		return newSetValue(m[1], m[2])
	}
	if m := setValueBareRe.FindStringSubmatch(cell); m != nil {
		return newSetValue(m[1], m[2])
	}
	if m := repsOnlyRe.FindStringSubmatch(cell); m != nil {
		reps, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		return &SetValue{Weight: 0, Reps: reps}
	}

	return nil
}

// FormatSetValue is the canonical inverse of ParseSetValue: weight 0
// round-trips as bare reps, everything else as "<weight>kg, <reps>".
func FormatSetValue(weight float64, reps int) string {
	if weight == 0 {
		return strconv.Itoa(reps)
	}
	return strconv.FormatFloat(weight, 'f', -1, 64) + "kg, " + strconv.Itoa(reps)
}

func newSetValue(weightStr, repsStr string) *SetValue {
	weight, err := strconv.ParseFloat(weightStr, 64)
	if err != nil {
		return nil
	}
	reps, err := strconv.Atoi(repsStr)
	if err != nil {
		return nil
	}
	return &SetValue{Weight: weight, Reps: reps}
}
