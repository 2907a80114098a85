package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sadh/vipani"
)

// OverviewMarkdown renders the dashboard: lifetime totals, stock, the
// trailing week of sales and the license state.
func OverviewMarkdown(o *vipani.Overview, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Overview")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Sales"), md.Bold(amount(o.TotalSales, currency))},
		Rows: [][]string{
			{"Total Payouts", amount(o.TotalPurchase, currency)},
			{"Total Margin", amount(o.TotalMargin, currency)},
			{"Lines in Stock", fmt.Sprintf("%d", o.InStockLines)},
		},
	})

	doc.H2("Last 7 Days")
	week := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Day", "Sales"},
	}
	for _, day := range o.LastWeek {
		week.Rows = append(week.Rows, []string{day.Date.String(), amount(day.Sales, currency)})
	}
	doc.Table(week)

	doc.H2("License")
	if o.LicenseValid {
		doc.PlainText(fmt.Sprintf("Active, %d day(s) remaining.", o.DaysRemaining))
	} else {
		doc.PlainText("Expired. Renew to restore access for regular accounts.")
	}

	return doc.String()
}
