package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"ridepulse/internal/config"
	"ridepulse/internal/console"
	"ridepulse/internal/modules/pricing"
	"ridepulse/internal/modules/wizard"
	"ridepulse/internal/types"
)

func newTestSession(input string, ids func() types.ID) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	reader := console.NewReader(strings.NewReader(input), &out)
	svc := pricing.NewService(config.DefaultPricing())
	s := New(Deps{
		AppName: "RidePulse",
		Reader:  reader,
		Out:     &out,
		Wizard:  wizard.New(reader, &out, svc),
		Pricing: svc,
		Printer: console.NewPrinter(&out),
		NewID:   ids,
	})
	return s, &out
}

func fixedIDs(ids ...types.ID) func() types.ID {
	return func() types.ID {
		id := ids[0]
		ids = ids[1:]
		return id
	}
}

func TestSession_SingleRideThenQuit(t *testing.T) {
	s, out := newTestSession("10\n1\nn\n-\nn\n", fixedIDs("q-1"))
	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	got := out.String()
	for _, w := range []string{
		"Welcome to RidePulse App!",
		"Quote:              q-1",
		"Total Fare:         RM 17.01",
		"Another ride? (y/n): ",
		"Thank you for using RidePulse!",
	} {
		if !strings.Contains(got, w) {
			t.Errorf("output missing %q\n%s", w, got)
		}
	}
}

func TestSession_TwoRides(t *testing.T) {
	input := strings.Join([]string{
		"10", "1", "n", "-",
		"maybe", "YES",
		"2", "2", "y", "PULSE10",
		"no",
	}, "\n") + "\n"
	s, out := newTestSession(input, fixedIDs("q-1", "q-2"))
	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	got := out.String()
	if n := strings.Count(got, "========== Ride Summary =========="); n != 2 {
		t.Errorf("printed %d summaries, want 2", n)
	}
	for _, w := range []string{"Quote:              q-2", "RM 17.01", "RM 9.07", "Please enter y/n."} {
		if !strings.Contains(got, w) {
			t.Errorf("output missing %q", w)
		}
	}
}

func TestSession_EndOfInputIsFatal(t *testing.T) {
	inputs := map[string]string{
		"during wizard":         "10\n1\n",
		"at another ride":       "10\n1\nn\n-\n",
		"after invalid answers": "10\n1\nn\n-\nmaybe\n",
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			s, out := newTestSession(input, fixedIDs("q-1"))
			err := s.Run()
			if !errors.Is(err, console.ErrEndOfInput) {
				t.Fatalf("Run() error = %v, want ErrEndOfInput", err)
			}
			if strings.Contains(out.String(), "Thank you") {
				t.Error("farewell printed on fatal abort")
			}
		})
	}
}

func TestSession_DefaultIDsAreUUIDs(t *testing.T) {
	s := New(Deps{})
	id := s.deps.NewID()
	if _, err := uuid.Parse(string(id)); err != nil {
		t.Errorf("default quote id %q is not a UUID: %v", id, err)
	}
}
