// README: Config loader with compiled-in defaults for the app labels and pricing constants.
package config

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidConfig = errors.New("invalid config")

type PricingConfig struct {
	Currency          string
	BookingFee        float64
	ServiceFeeRate    float64
	SurgeMultiplier   float64
	PromoCode         string
	PromoDiscountRate float64
}

type Config struct {
	App struct {
		Name string
	}
	Pricing PricingConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.App.Name = "RidePulse"
	cfg.Pricing = DefaultPricing()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPricing returns the fixed pricing constants used for every session.
func DefaultPricing() PricingConfig {
	return PricingConfig{
		Currency:          "RM",
		BookingFee:        1.20,
		ServiceFeeRate:    0.05,
		SurgeMultiplier:   1.20,
		PromoCode:         "PULSE10",
		PromoDiscountRate: 0.10,
	}
}

func (c Config) validate() error {
	var problems []string
	if strings.TrimSpace(c.App.Name) == "" {
		problems = append(problems, "app name is empty")
	}
	problems = append(problems, c.Pricing.problems()...)
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func (p PricingConfig) problems() []string {
	var out []string
	if strings.TrimSpace(p.Currency) == "" {
		out = append(out, "currency is empty")
	}
	if strings.TrimSpace(p.PromoCode) == "" || p.PromoCode == "-" {
		out = append(out, "promo code must be a non-empty code other than \"-\"")
	}
	if p.BookingFee < 0 {
		out = append(out, "booking fee is negative")
	}
	if p.ServiceFeeRate < 0 {
		out = append(out, "service fee rate is negative")
	}
	if p.SurgeMultiplier < 1 {
		out = append(out, "surge multiplier is below 1")
	}
	if p.PromoDiscountRate < 0 || p.PromoDiscountRate >= 1 {
		out = append(out, "promo discount rate must be within [0, 1)")
	}
	return out
}
