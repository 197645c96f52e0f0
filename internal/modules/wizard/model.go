// README: Wizard steps and the allowed step flow, including back navigation.
package wizard

type Step int

const (
	StepDistance Step = iota
	StepRideType
	StepPeakHour
	StepPromo
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepDistance:
		return "distance"
	case StepRideType:
		return "ride_type"
	case StepPeakHour:
		return "peak_hour"
	case StepPromo:
		return "promo"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

// previous maps each step to the step a back command returns to.
// StepDistance has no entry: it is the first step.
var previous = map[Step]Step{
	StepRideType: StepDistance,
	StepPeakHour: StepRideType,
	StepPromo:    StepPeakHour,
}

// AllowedTransitions represents the wizard flow (forward, back, retry) as code.
var AllowedTransitions = map[Step][]Step{
	StepDistance: {StepDistance, StepRideType},
	StepRideType: {StepRideType, StepPeakHour, StepDistance},
	StepPeakHour: {StepPeakHour, StepPromo, StepRideType},
	StepPromo:    {StepPromo, StepDone, StepPeakHour},
}

func CanTransition(from, to Step) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// PreviousStep returns the step a back command leads to from s.
func PreviousStep(s Step) (Step, bool) {
	p, ok := previous[s]
	return p, ok
}

func isBack(token string) bool {
	switch token {
	case "back", "b":
		return true
	}
	return false
}
