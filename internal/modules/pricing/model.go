// README: Ride types, their rate table, and the fare request/breakdown shapes.
package pricing

import "ridepulse/internal/types"

type RideType int

const (
	Economy RideType = iota + 1
	Premium
	RideShare
)

func (t RideType) String() string {
	switch t {
	case Economy:
		return "Economy"
	case Premium:
		return "Premium"
	case RideShare:
		return "Ride Share"
	default:
		return "Unknown"
	}
}

type Rate struct {
	PerKm       float64
	MinimumFare float64
}

var rates = map[RideType]Rate{
	Economy:   {PerKm: 1.50, MinimumFare: 4.00},
	Premium:   {PerKm: 2.50, MinimumFare: 7.00},
	RideShare: {PerKm: 1.00, MinimumFare: 3.00},
}

// RateFor looks up the per-km rate and minimum fare for t.
func RateFor(t RideType) (Rate, bool) {
	r, ok := rates[t]
	return r, ok
}

// RideTypes lists the ride types in menu order.
func RideTypes() []RideType {
	return []RideType{Economy, Premium, RideShare}
}

// SkipPromo is the promo input meaning "no code supplied".
const SkipPromo = "-"

type RideRequest struct {
	DistanceKm float64
	RideType   RideType
	IsPeakHour bool
	PromoCode  string
}

type PromoOutcome int

const (
	PromoNone PromoOutcome = iota
	PromoApplied
	PromoInvalid
)

type PromoStatus struct {
	Outcome PromoOutcome
	// Code is the submitted code for PromoApplied and PromoInvalid.
	Code string
}

// FareBreakdown keeps intermediate amounts unrounded; only Total is rounded.
type FareBreakdown struct {
	DistanceFare    types.Money
	BaseFare        types.Money
	SurgeApplied    bool
	SurgeMultiplier float64 // 1 when no surge applied
	BookingFee      types.Money
	ServiceFeeRate  float64
	ServiceFee      types.Money
	Discount        types.Money
	Total           types.Money
	Promo           PromoStatus
}

// Quote pairs a request with its computed fare for display.
type Quote struct {
	ID      types.ID
	Request RideRequest
	Fare    FareBreakdown
}
