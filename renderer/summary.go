package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/sadh/vipani"
)

// SummaryMarkdown renders the consolidated balance sheet, one row per
// registered party.
func SummaryMarkdown(rows []vipani.SummaryRow, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Party Balances")

	if len(rows) == 0 {
		doc.PlainText("No parties registered.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Party", "Bought", "Supplied", "Standing"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Party.Name,
			amount(row.Totals.TotalAsBuyer, currency),
			amount(row.Totals.TotalAsSeller, currency),
			standing(row.Totals, currency),
		})
	}
	doc.Table(table)

	return doc.String()
}

// BalancesMarkdown renders the outstanding accounts only: parties with a
// non-zero balance, receivables first.
func BalancesMarkdown(rows []vipani.SummaryRow, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Outstanding Balances")

	receivable := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Owes Us", "Amount"},
	}
	payable := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"We Owe", "Amount"},
	}
	for _, row := range rows {
		switch {
		case row.Totals.Settled():
		case row.Totals.Receivable():
			receivable.Rows = append(receivable.Rows, []string{
				row.Party.Name, amount(row.Totals.Balance, currency),
			})
		default:
			payable.Rows = append(payable.Rows, []string{
				row.Party.Name, amount(row.Totals.Balance.Abs(), currency),
			})
		}
	}

	if len(receivable.Rows) == 0 && len(payable.Rows) == 0 {
		doc.PlainText("All accounts are settled.")
		return doc.String()
	}
	if len(receivable.Rows) > 0 {
		doc.H2("To Receive")
		doc.Table(receivable)
	}
	if len(payable.Rows) > 0 {
		doc.H2("To Pay")
		doc.Table(payable)
	}

	return doc.String()
}
