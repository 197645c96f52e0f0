// README: Pricing service computes fare breakdowns from completed ride requests.
package pricing

import (
	"math"
	"strings"

	"ridepulse/internal/config"
	"ridepulse/internal/types"
)

type Service struct {
	cfg config.PricingConfig
}

func NewService(cfg config.PricingConfig) *Service {
	return &Service{cfg: cfg}
}

func (s *Service) Currency() string {
	return s.cfg.Currency
}

// IsPromoRecognized reports whether code matches the promo code, ignoring case.
func (s *Service) IsPromoRecognized(code string) bool {
	return strings.EqualFold(strings.TrimSpace(code), s.cfg.PromoCode)
}

// DistanceInRange reports whether every ride type prices d to finite amounts,
// peak surge included.
func (s *Service) DistanceInRange(d float64) bool {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return false
	}
	for _, rt := range RideTypes() {
		for _, code := range []string{SkipPromo, s.cfg.PromoCode} {
			f := s.Estimate(RideRequest{DistanceKm: d, RideType: rt, IsPeakHour: true, PromoCode: code})
			for _, m := range []types.Money{f.BaseFare, f.ServiceFee, f.Discount, f.Total} {
				if math.IsNaN(m.Amount) || math.IsInf(m.Amount, 0) {
					return false
				}
			}
		}
	}
	return true
}

// Estimate never fails: requests built by the wizard always carry a positive
// distance and a known ride type.
func (s *Service) Estimate(req RideRequest) FareBreakdown {
	rate, _ := RateFor(req.RideType)

	distanceFare := req.DistanceKm * rate.PerKm
	baseFare := distanceFare
	if baseFare < rate.MinimumFare {
		baseFare = rate.MinimumFare
	}

	surge := 1.0
	if req.IsPeakHour {
		surge = s.cfg.SurgeMultiplier
	}
	surgedFare := baseFare * surge

	preService := surgedFare + s.cfg.BookingFee
	serviceFee := preService * s.cfg.ServiceFeeRate
	subtotal := preService + serviceFee

	var discount float64
	promo := PromoStatus{Outcome: PromoNone}
	switch {
	case req.PromoCode == "" || req.PromoCode == SkipPromo:
	case s.IsPromoRecognized(req.PromoCode):
		discount = subtotal * s.cfg.PromoDiscountRate
		subtotal -= discount
		promo = PromoStatus{Outcome: PromoApplied, Code: req.PromoCode}
	default:
		promo = PromoStatus{Outcome: PromoInvalid, Code: req.PromoCode}
	}

	return FareBreakdown{
		DistanceFare:    s.money(distanceFare),
		BaseFare:        s.money(baseFare),
		SurgeApplied:    req.IsPeakHour,
		SurgeMultiplier: surge,
		BookingFee:      s.money(s.cfg.BookingFee),
		ServiceFeeRate:  s.cfg.ServiceFeeRate,
		ServiceFee:      s.money(serviceFee),
		Discount:        s.money(discount),
		Total:           s.money(types.Round2(subtotal)),
		Promo:           promo,
	}
}

func (s *Service) money(amount float64) types.Money {
	return types.Money{Amount: amount, Currency: s.cfg.Currency}
}
