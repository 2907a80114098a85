package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sadh/vipani"
)

// DailyMarkdown renders one day's ledger of sales.
func DailyMarkdown(r *vipani.DailyReport, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Daily Report — %s", r.Date))

	if len(r.Items) == 0 {
		doc.PlainText("No sales recorded on this day.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Item", "Seller", "Buyer", "Qty", "Sales", "Payout"},
	}
	for _, e := range r.Items {
		table.Rows = append(table.Rows, []string{
			e.Item.Name,
			e.SellerName,
			e.BuyerName,
			e.Item.SoldQuantity.String(),
			amount(e.Item.SalesAmount, currency),
			amount(e.Item.PurchaseAmount, currency),
		})
	}
	doc.Table(table)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Sales"), md.Bold(amount(r.TotalSales, currency))},
		Rows: [][]string{
			{"Total Payouts", amount(r.TotalPurchase, currency)},
			{"Day's Margin", amount(r.TotalSales.Sub(r.TotalPurchase), currency)},
		},
	})

	return doc.String()
}
