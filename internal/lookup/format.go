package lookup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eliseohh/torrebot/internal/sheet"
)

const (
	UsageMessage = "👋 Hola, envíame la torre y apartamento.\n" +
		"Ejemplos válidos:\n" +
		"• 1-101\n" +
		"• 1101\n" +
		"• T1101\n" +
		"• 1 101\n" +
		"• 12-1001"
	FormatErrorMessage = "Formato incorrecto. Ejemplo: 1-101, 1101, T1101 o 1 101"
	NotFoundMessage    = "❌ No encontré información para ese apartamento."
	UnavailableMessage = "⚠️ No pude consultar la información en este momento. Intenta más tarde."

	NoBalance   = "N/A"
	NoCarPlate  = "No registrado"
	NoMotoPlate = "No registrada"
)

// Status is the display form of a payment-standing code.
type Status struct {
	Glyph string
	Label string
}

var (
	statuses = map[string]Status{
		"R": {"🔴", "Restricción"},
		"A": {"🟡", "Acuerdo"},
		"V": {"🟢", "Normal"},
	}
	unknownStatus = Status{"⚪", "No especificado"}
)

// StatusFor maps a status cell to its glyph and label. Unknown codes never fail.
func StatusFor(code string) Status {
	if s, ok := statuses[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return s
	}
	return unknownStatus
}

// ResolveField finds an optional column by name fragments. A header matches
// when its trimmed, lowercased name contains every fragment. Headers are tried
// in sorted order and the first non-empty value wins.
func ResolveField(row sheet.Row, fragments ...string) (string, bool) {
	headers := make([]string, 0, len(row))
	for h := range row {
		headers = append(headers, h)
	}
	sort.Strings(headers)

	for _, h := range headers {
		name := strings.ToLower(strings.TrimSpace(h))
		if !containsAll(name, fragments) {
			continue
		}
		if v := strings.TrimSpace(row[h]); v != "" {
			return v, true
		}
	}
	return "", false
}

func containsAll(name string, fragments []string) bool {
	for _, f := range fragments {
		if !strings.Contains(name, strings.ToLower(f)) {
			return false
		}
	}
	return true
}

func resolveOr(row sheet.Row, def string, alternatives ...[]string) string {
	for _, frags := range alternatives {
		if v, ok := ResolveField(row, frags...); ok {
			return v
		}
	}
	return def
}

var mdEscaper = strings.NewReplacer("_", `\_`, "*", `\*`, "`", "\\`", "[", `\[`)

// FormatRecord renders a matched row as a Markdown reply.
func FormatRecord(row sheet.Row, cols Columns) string {
	esc := mdEscaper.Replace
	status := StatusFor(row[cols.Status])

	balance := resolveOr(row, NoBalance, []string{"saldo"}, []string{"cartera"})
	car := resolveOr(row, NoCarPlate, []string{"placa", "carro"})
	moto := resolveOr(row, NoMotoPlate, []string{"placa", "moto"})

	var b strings.Builder
	fmt.Fprintf(&b, "🏢 *Torre:* %s\n", esc(strings.TrimSpace(row[cols.Tower])))
	fmt.Fprintf(&b, "🏠 *Apartamento:* %s\n", esc(strings.TrimSpace(row[cols.Apartment])))
	fmt.Fprintf(&b, "🧍‍♂️ *Propietario:* %s\n", esc(strings.TrimSpace(row[cols.Owner])))
	fmt.Fprintf(&b, "💰 *Saldo:* %s\n", esc(balance))
	fmt.Fprintf(&b, "%s *Estado:* %s\n", status.Glyph, status.Label)
	fmt.Fprintf(&b, "🚗 *Placa carro:* %s\n", esc(car))
	fmt.Fprintf(&b, "🏍️ *Placa moto:* %s", esc(moto))
	return b.String()
}
