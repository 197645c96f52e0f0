// README: Printer renders a fixed-layout ride summary for a quote.
package console

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ridepulse/internal/modules/pricing"
	"ridepulse/internal/types"
)

const labelWidth = 20

type Printer struct {
	out io.Writer
	p   *message.Printer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, p: message.NewPrinter(language.English)}
}

// Print writes the summary for q. Monetary figures always carry two decimals.
func (pr *Printer) Print(q pricing.Quote) error {
	f := q.Fare
	var b strings.Builder

	b.WriteString("\n========== Ride Summary ==========\n")
	if q.ID != "" {
		pr.line(&b, "Quote:", string(q.ID))
	}
	pr.line(&b, "Distance:", pr.p.Sprintf("%.2f km", q.Request.DistanceKm))
	pr.line(&b, "Ride Type:", q.Request.RideType.String())
	pr.line(&b, "Base (after min):", pr.money(f.BaseFare))
	pr.line(&b, "Booking Fee:", pr.money(f.BookingFee))
	if f.SurgeApplied {
		pr.line(&b, pr.p.Sprintf("Peak Surge (x%.2f):", f.SurgeMultiplier), "applied")
	} else {
		pr.line(&b, "Peak Surge:", "none")
	}
	pr.line(&b, "Service Fee ("+percent(f.ServiceFeeRate)+"):", pr.money(f.ServiceFee))
	switch f.Promo.Outcome {
	case pricing.PromoApplied:
		pr.line(&b, "Promo ("+strings.ToUpper(f.Promo.Code)+"):", "-"+pr.money(f.Discount))
	case pricing.PromoInvalid:
		pr.line(&b, "Promo:", strconv.Quote(f.Promo.Code)+" not recognised, not applied")
	default:
		pr.line(&b, "Promo:", "none")
	}
	b.WriteString("----------------------------------\n")
	pr.line(&b, "Total Fare:", pr.money(f.Total))
	b.WriteString("==================================\n")

	_, err := io.WriteString(pr.out, b.String())
	return err
}

func (pr *Printer) line(b *strings.Builder, label, value string) {
	b.WriteString(label)
	if pad := labelWidth - len(label); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	} else {
		b.WriteByte(' ')
	}
	b.WriteString(value)
	b.WriteByte('\n')
}

func (pr *Printer) money(m types.Money) string {
	return pr.p.Sprintf("%s %.2f", m.Currency, types.Round2(m.Amount))
}

func percent(rate float64) string {
	return strconv.FormatFloat(types.Round2(rate*100), 'f', -1, 64) + "%"
}
