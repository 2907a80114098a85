package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sadh/vipani"
)

// PartnerMarkdown renders the detailed statement of one party: every sale in
// which the party bought, every sale of stock the party supplied, and the
// net standing.
func PartnerMarkdown(h *vipani.PartnerHistory, partyName, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Statement — %s", partyName))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Standing"), md.Bold(standing(h.Totals, currency))},
		Rows: [][]string{
			{"Bought from us", amount(h.Totals.TotalAsBuyer, currency)},
			{"Supplied to us", amount(h.Totals.TotalAsSeller, currency)},
		},
	})

	if len(h.AsBuyer) > 0 {
		doc.H2("Purchases")
		doc.Table(soldEntryTable(h.AsBuyer, currency))
	}
	if len(h.AsSeller) > 0 {
		doc.H2("Supplied Stock Sold")
		doc.Table(soldEntryTable(h.AsSeller, currency))
	}
	if len(h.AsBuyer) == 0 && len(h.AsSeller) == 0 {
		doc.PlainText("No recorded transactions.")
	}

	return doc.String()
}

func soldEntryTable(entries []vipani.SoldEntry, currency string) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Item", "Qty", "Rate", "Amount"},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.Item.SoldAt.Day().String(),
			e.Item.Name,
			e.Item.SoldQuantity.String(),
			amount(e.Item.UnitSalesRate, currency),
			amount(e.Item.SalesAmount, currency),
		})
	}
	return table
}
