// README: Entry point; loads config, wires services, and runs the interactive fare session.
package main

import (
	"errors"
	"log"
	"os"

	"ridepulse/internal/config"
	"ridepulse/internal/console"
	"ridepulse/internal/modules/pricing"
	"ridepulse/internal/modules/wizard"
	"ridepulse/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	reader := console.NewReader(os.Stdin, os.Stdout)
	pricingSvc := pricing.NewService(cfg.Pricing)

	s := session.New(session.Deps{
		AppName: cfg.App.Name,
		Reader:  reader,
		Out:     os.Stdout,
		Wizard:  wizard.New(reader, os.Stdout, pricingSvc),
		Pricing: pricingSvc,
		Printer: console.NewPrinter(os.Stdout),
	})

	if err := s.Run(); err != nil {
		if errors.Is(err, console.ErrEndOfInput) {
			log.Fatalf("fatal: input closed before the ride was complete (%v)", err)
		}
		log.Fatalf("fatal: %v", err)
	}
}
