package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sadh/vipani"
)

// TokenMarkdown renders one intake token with its full manifest, sold lines
// included.
func TokenMarkdown(b *vipani.Book, t *vipani.Token, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Token %s — %s", t.ID, b.PartyName(t.SellerID)))
	doc.PlainText(fmt.Sprintf("Received %s", t.CreatedAt.Day()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Item", "Gross", "Deduction", "Net", "Status", "Sales"},
	}
	for _, item := range t.Items {
		sales := ""
		status := string(item.Status)
		if item.Status == vipani.Sold {
			sales = amount(item.SalesAmount, currency)
			status = fmt.Sprintf("Sold to %s", b.PartyName(item.SellingPartyID))
		}
		table.Rows = append(table.Rows, []string{
			item.Name,
			item.Quantity.String(),
			item.DeductionQuantity.String(),
			item.FinalQuantity.String(),
			status,
			sales,
		})
	}
	doc.Table(table)

	return doc.String()
}

// TokenListMarkdown renders the token explorer: every token, newest first,
// with per-token stock counts.
func TokenListMarkdown(b *vipani.Book, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Tokens")

	if len(b.Tokens) == 0 {
		doc.PlainText("No tokens recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Token", "Seller", "Received", "Lines", "In Stock", "Sales"},
	}
	for _, t := range b.Tokens {
		inStock := 0
		var sales vipani.Money
		for _, item := range t.Items {
			if item.Status == vipani.Available {
				inStock++
			} else {
				sales = sales.Add(item.SalesAmount)
			}
		}
		table.Rows = append(table.Rows, []string{
			t.ID,
			b.PartyName(t.SellerID),
			t.CreatedAt.Day().String(),
			fmt.Sprintf("%d", len(t.Items)),
			fmt.Sprintf("%d", inStock),
			amount(sales, currency),
		})
	}
	doc.Table(table)

	return doc.String()
}
