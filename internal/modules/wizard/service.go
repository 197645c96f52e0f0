// README: Wizard collects a ride request step by step with back navigation.
package wizard

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"ridepulse/internal/modules/pricing"
)

var ErrInvalidTransition = errors.New("invalid wizard transition")

type LineReader interface {
	ReadLine(prompt string) (string, error)
}

type Pricing interface {
	IsPromoRecognized(code string) bool
	DistanceInRange(km float64) bool
	Currency() string
}

type Wizard struct {
	reader  LineReader
	out     io.Writer
	pricing Pricing
}

func New(reader LineReader, out io.Writer, pricing Pricing) *Wizard {
	return &Wizard{reader: reader, out: out, pricing: pricing}
}

const (
	msgBadDistance = "❌ Invalid input. Please enter a positive number.\n"
	msgBadChoice   = "❌ Invalid choice. Please enter 1, 2, 3, or 'back'.\n"
	msgBadYesNo    = "❌ Please enter y/n (or 'back').\n"
	msgEmptyPromo  = "❌ Please enter a promo code, '-' to skip, or 'back'.\n"
)

// Run drives the steps until the request is complete. Any read error, including
// console.ErrEndOfInput, aborts the wizard and is returned wrapped.
func (w *Wizard) Run() (pricing.RideRequest, error) {
	var req pricing.RideRequest
	step := StepDistance
	for step != StepDone {
		line, err := w.reader.ReadLine(w.prompt(step))
		if err != nil {
			return pricing.RideRequest{}, fmt.Errorf("wizard %s: %w", step, err)
		}
		next := w.apply(step, strings.TrimSpace(line), &req)
		if !CanTransition(step, next) {
			return pricing.RideRequest{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, step, next)
		}
		step = next
	}
	return req, nil
}

// apply consumes one trimmed token for step and returns the next step.
// Unusable input prints a corrective message and keeps the step.
func (w *Wizard) apply(step Step, token string, req *pricing.RideRequest) Step {
	lower := strings.ToLower(token)
	if prev, ok := PreviousStep(step); ok && isBack(lower) {
		return prev
	}

	switch step {
	case StepDistance:
		d, ok := parseDistance(token)
		if !ok || !w.pricing.DistanceInRange(d) {
			w.say(msgBadDistance)
			return step
		}
		req.DistanceKm = d
		return StepRideType

	case StepRideType:
		n, err := strconv.Atoi(token)
		if err != nil {
			w.say(msgBadChoice)
			return step
		}
		rt := pricing.RideType(n)
		if _, ok := pricing.RateFor(rt); !ok {
			w.say(msgBadChoice)
			return step
		}
		req.RideType = rt
		return StepPeakHour

	case StepPeakHour:
		switch lower {
		case "y", "yes":
			req.IsPeakHour = true
		case "n", "no":
			req.IsPeakHour = false
		default:
			w.say(msgBadYesNo)
			return step
		}
		return StepPromo

	case StepPromo:
		if token == "" {
			w.say(msgEmptyPromo)
			return step
		}
		req.PromoCode = token
		if token != pricing.SkipPromo && !w.pricing.IsPromoRecognized(token) {
			w.say(fmt.Sprintf("⚠️  Promo code %q is not recognised; no discount will be applied.\n", token))
		}
		return StepDone
	}
	return step
}

func (w *Wizard) prompt(step Step) string {
	switch step {
	case StepDistance:
		return "Enter your trip distance (km): "
	case StepRideType:
		return w.rideTypeMenu()
	case StepPeakHour:
		return "Is it peak hours? (y/n, 'back' to go back): "
	case StepPromo:
		return "Enter promo code (- to skip, 'back' to go back): "
	}
	return ""
}

func (w *Wizard) rideTypeMenu() string {
	var b strings.Builder
	b.WriteString("\nChoose ride type:\n")
	cur := w.pricing.Currency()
	for _, rt := range pricing.RideTypes() {
		rate, _ := pricing.RateFor(rt)
		fmt.Fprintf(&b, "%d. %-11s (%s %.2f/km, min %s %.2f)\n", int(rt), rt, cur, rate.PerKm, cur, rate.MinimumFare)
	}
	b.WriteString("Enter choice (1-3) or 'back': ")
	return b.String()
}

func (w *Wizard) say(msg string) {
	_, _ = io.WriteString(w.out, msg)
}

// parseDistance accepts only a finite, strictly positive decimal number with
// nothing trailing it. Hex floats are not distances.
func parseDistance(token string) (float64, bool) {
	if strings.ContainsAny(token, "xX") {
		return 0, false
	}
	d, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return 0, false
	}
	return d, true
}
