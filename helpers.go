package main

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"reno/pkg/analytics"
	"reno/pkg/api"
)

func PrintTable(w io.Writer, headers []string, rows [][]string, footers []string) {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = utf8.RuneCountInString(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) && utf8.RuneCountInString(cell) > colWidths[i] {
				colWidths[i] = utf8.RuneCountInString(cell)
			}
		}
	}
	for i, footer := range footers {
		if i < len(colWidths) && utf8.RuneCountInString(footer) > colWidths[i] {
			colWidths[i] = utf8.RuneCountInString(footer)
		}
	}

	// print header
	for i, header := range headers {
		fmt.Fprintf(w, "%-*s\t", colWidths[i], header)
	}
	fmt.Fprintln(w)

	// print rows
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) {
				fmt.Fprintf(w, "%-*s\t", colWidths[i], cell)
			}
		}
		fmt.Fprintln(w)
	}

	if len(footers) == 0 {
		return
	}

	// print footer
	for i, footer := range footers {
		if i < len(colWidths) {
			fmt.Fprintf(w, "%-*s\t", colWidths[i], footer)
		}
	}
	fmt.Fprintln(w)
}

// FormatMoney renders an amount the way the dashboard does: currency code,
// thousands separators, and decimals only when there are any.
func FormatMoney(currency string, d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	s := d.StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")
	if frac == "00" {
		frac = ""
	}

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}

	if currency == "" {
		return sign + b.String()
	}
	return currency + " " + sign + b.String()
}

func (a *App) money(m analytics.Money) string {
	if !m.Valid {
		return "-"
	}
	return FormatMoney(a.cfg.Currency, m.Amount)
}

func (a *App) amount(d decimal.Decimal) string {
	return FormatMoney(a.cfg.Currency, d)
}

// Bar draws a percentage gauge of the given width. Values outside [0, 100]
// are drawn clamped.
func Bar(percent, width int) string {
	p := percent
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	filled := p * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "] " + fmt.Sprintf("%d%%", percent)
}

func FormatDate(s string) string {
	t, ok := api.ParseTime(s)
	if !ok {
		if s == "" {
			return "-"
		}
		return s
	}
	return t.Format("Jan 02, 2006")
}

func FormatDateTime(s string) string {
	t, ok := api.ParseTime(s)
	if !ok {
		if s == "" {
			return "-"
		}
		return s
	}
	return t.Format("Jan 02, 2006 15:04")
}

func FormatTime(t time.Time) string {
	return t.Format("Jan 02, 2006 15:04:05")
}

func orText(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func checkbox(b bool) string {
	if b {
		return "[x]"
	}
	return "[ ]"
}

// Truncate shortens s to n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n || n < 4 {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}
