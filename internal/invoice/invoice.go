package invoice

import (
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"greenfood-api/internal/model"
)

// FormatRupiah renders a whole-currency amount with dot thousands
// separators, e.g. 1250000 -> "Rp 1.250.000".
func FormatRupiah(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return sign + "Rp " + b.String()
}

type itemView struct {
	Title     string
	Quantity  int
	UnitPrice string
	LineTotal string
}

type invoiceView struct {
	ID            string
	Date          string
	BuyerName     string
	BuyerEmail    string
	BuyerPhone    string
	BuyerAddress  string
	Status        string
	PaymentMethod string
	Items         []itemView
	Subtotal      string
	Discount      string
	DeliveryFee   string
	Total         string
}

// Render writes the HTML invoice for an order. Line totals and the
// subtotal line are computed from the items; discount, delivery fee and
// the grand total are displayed exactly as stored, never recomputed.
func Render(w io.Writer, order *model.Order) error {
	view := invoiceView{
		ID:            order.ID.Hex(),
		Date:          order.CreatedAt.Format(time.RFC1123),
		BuyerName:     order.BuyerName,
		BuyerEmail:    order.BuyerEmail,
		BuyerPhone:    order.BuyerPhone,
		BuyerAddress:  order.BuyerAddress,
		Status:        string(order.Status),
		PaymentMethod: order.PaymentMethod,
		Discount:      FormatRupiah(order.Discount),
		DeliveryFee:   FormatRupiah(order.DeliveryFee),
		Total:         FormatRupiah(order.Total),
	}

	var subtotal int64
	for _, item := range order.Items {
		lineTotal := item.Price * int64(item.Quantity)
		subtotal += lineTotal
		view.Items = append(view.Items, itemView{
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: FormatRupiah(item.Price),
			LineTotal: FormatRupiah(lineTotal),
		})
	}
	view.Subtotal = FormatRupiah(subtotal)

	return tmpl.Execute(w, view)
}

var tmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.ID}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; color: #222; }
h1 { color: #2e7d32; }
table { width: 100%; border-collapse: collapse; margin-top: 16px; }
th, td { border-bottom: 1px solid #ddd; padding: 8px; text-align: left; }
td.num, th.num { text-align: right; }
.summary { margin-top: 16px; width: 320px; margin-left: auto; }
.summary td { border: none; padding: 4px 8px; }
.summary .total { font-weight: bold; border-top: 2px solid #222; }
.status { text-transform: uppercase; letter-spacing: 1px; }
</style>
</head>
<body>
<h1>GreenFood Invoice</h1>
<p>Invoice <strong>#{{.ID}}</strong><br>{{.Date}}</p>
<p class="status">Status: {{.Status}}{{if .PaymentMethod}} &mdash; {{.PaymentMethod}}{{end}}</p>
<p>
<strong>{{.BuyerName}}</strong><br>
{{.BuyerEmail}}{{if .BuyerPhone}}<br>{{.BuyerPhone}}{{end}}<br>
{{.BuyerAddress}}
</p>
<table>
<tr><th>Item</th><th class="num">Qty</th><th class="num">Unit Price</th><th class="num">Total</th></tr>
{{range .Items}}
<tr><td>{{.Title}}</td><td class="num">{{.Quantity}}</td><td class="num">{{.UnitPrice}}</td><td class="num">{{.LineTotal}}</td></tr>
{{end}}
</table>
<table class="summary">
<tr><td>Subtotal</td><td class="num">{{.Subtotal}}</td></tr>
<tr><td>Discount</td><td class="num">{{.Discount}}</td></tr>
<tr><td>Delivery Fee</td><td class="num">{{.DeliveryFee}}</td></tr>
<tr class="total"><td>Total</td><td class="num">{{.Total}}</td></tr>
</table>
</body>
</html>
`))
