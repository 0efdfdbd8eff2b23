package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	domain "github.com/offerdesk/offerdesk/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printOffersTable(offers []domain.Offer) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tPROPERTY\tBUYER\tPRICE\tSTATUS\tCOUNTER\tSUBMITTED\n")
	for i := range offers {
		o := &offers[i]

		buyer := "-"
		if o.Buyer != nil {
			buyer = o.Buyer.FirstName + " " + o.Buyer.LastName
		}

		counter := "-"
		if o.CounterPrice != nil {
			counter = fmt.Sprintf("$%.2f", *o.CounterPrice)
		}

		tw.writef("%s\t%s\t%s\t$%.2f\t%s\t%s\t%s\n",
			o.ID,
			o.PropertyID,
			buyer,
			o.OfferedPrice,
			o.Status,
			counter,
			o.Timestamp.Format("2006-01-02 15:04"),
		)
	}
	return tw.finish()
}

func printOfferStats(stats *domain.OfferStats) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Total offers:\t%d\n", stats.Total)
	for _, status := range domain.AllOfferStatuses {
		if n := stats.ByStatus[status]; n > 0 {
			tw.writef("  %s:\t%d\n", status, n)
		}
	}

	if len(stats.TopProperties) > 0 {
		tw.writef("\nTop properties:\n")
		for _, p := range stats.TopProperties {
			title := p.PropertyID
			if p.Property != nil && p.Property.Title != "" {
				title = p.Property.Title
			}
			tw.writef("  %s:\t%d offers\n", title, p.Count)
		}
	}
	return tw.finish()
}

func printBuyersTable(buyers []domain.Buyer) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tEMAIL\tPHONE\tTYPE\tSOURCE\n")
	for i := range buyers {
		b := &buyers[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID,
			b.FullName(),
			b.Email,
			b.Phone,
			b.BuyerType,
			b.Source,
		)
	}
	return tw.finish()
}

func printBuyerDetail(b *domain.Buyer) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", b.ID)
	tw.writef("Name:\t%s\n", b.FullName())
	tw.writef("Email:\t%s\n", b.Email)
	tw.writef("Phone:\t%s\n", b.Phone)
	tw.writef("Type:\t%s\n", b.BuyerType)
	tw.writef("Source:\t%s\n", b.Source)
	if b.ExternalID != "" {
		tw.writef("External ID:\t%s\n", b.ExternalID)
	}
	if len(b.PreferredAreas) > 0 {
		tw.writef("Areas:\t%v\n", b.PreferredAreas)
	}

	if len(b.Offers) > 0 {
		tw.writef("\nOffers:\n")
		for i := range b.Offers {
			o := &b.Offers[i]
			tw.writef("  %s\t$%.2f\t%s\n", o.PropertyID, o.OfferedPrice, o.Status)
		}
	}
	return tw.finish()
}

func printBuyerStats(stats *domain.BuyerStats) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Total buyers:\t%d\n", stats.TotalCount)
	tw.writef("VIP buyers:\t%d\n", stats.VIPCount)

	if len(stats.ByArea) > 0 {
		tw.writef("\nBy area:\n")
		for _, area := range sortedKeys(stats.ByArea) {
			tw.writef("  %s:\t%d\n", area, stats.ByArea[area])
		}
	}

	if len(stats.BySource) > 0 {
		tw.writef("\nBy source:\n")
		for _, source := range sortedKeys(stats.BySource) {
			tw.writef("  %s:\t%d\n", source, stats.BySource[source])
		}
	}

	if len(stats.MonthlyGrowth) > 0 {
		tw.writef("\nNew buyers by month:\n")
		for _, month := range sortedKeys(stats.MonthlyGrowth) {
			tw.writef("  %s:\t%d\n", month, stats.MonthlyGrowth[month])
		}
	}
	return tw.finish()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
