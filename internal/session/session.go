// README: Session loop; runs the wizard, prices the ride, prints the quote, and repeats on request.
package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"ridepulse/internal/modules/pricing"
	"ridepulse/internal/types"
)

type LineReader interface {
	ReadLine(prompt string) (string, error)
}

type Wizard interface {
	Run() (pricing.RideRequest, error)
}

type Pricing interface {
	Estimate(req pricing.RideRequest) pricing.FareBreakdown
}

type Printer interface {
	Print(q pricing.Quote) error
}

type Deps struct {
	AppName string
	Reader  LineReader
	Out     io.Writer
	Wizard  Wizard
	Pricing Pricing
	Printer Printer
	// NewID is optional; quotes get random UUIDs by default.
	NewID func() types.ID
}

type Session struct {
	deps Deps
}

func New(deps Deps) *Session {
	if deps.NewID == nil {
		deps.NewID = newID
	}
	return &Session{deps: deps}
}

// Run loops until the user declines another ride. It returns nil on a normal
// quit; any read failure, console.ErrEndOfInput included, ends the session.
func (s *Session) Run() error {
	s.banner()
	for {
		req, err := s.deps.Wizard.Run()
		if err != nil {
			return err
		}
		q := pricing.Quote{
			ID:      s.deps.NewID(),
			Request: req,
			Fare:    s.deps.Pricing.Estimate(req),
		}
		if err := s.deps.Printer.Print(q); err != nil {
			return fmt.Errorf("print quote %s: %w", q.ID, err)
		}

		again, err := s.askAnother()
		if err != nil {
			return err
		}
		s.say("\n")
		if !again {
			break
		}
	}
	s.say(fmt.Sprintf("Thank you for using %s!\n", s.deps.AppName))
	return nil
}

func (s *Session) askAnother() (bool, error) {
	for {
		line, err := s.deps.Reader.ReadLine("\nAnother ride? (y/n): ")
		if err != nil {
			return false, fmt.Errorf("another ride: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		s.say("❌ Please enter y/n.\n")
	}
}

func (s *Session) banner() {
	title := fmt.Sprintf("Welcome to %s App!", s.deps.AppName)
	rule := strings.Repeat("=", len(title)+6)
	s.say(fmt.Sprintf("%s\n   %s   \n%s\n\n", rule, title, rule))
}

func (s *Session) say(msg string) {
	_, _ = io.WriteString(s.deps.Out, msg)
}

func newID() types.ID {
	return types.ID(uuid.NewString())
}
