// internal/moeda/moeda.go
package moeda

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseValor converte um texto monetário digitado pelo usuário em valor numérico.
// Aceita "R$ 1.234,56", "1234.56", "1,234.56" etc. O último separador
// encontrado é tratado como separador decimal; os demais são descartados.
// Entrada vazia ou inválida retorna 0 (nunca retorna erro).
func ParseValor(texto string) float64 {
	var b strings.Builder
	for _, r := range texto {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" || s == "-" {
		return 0
	}

	if i := strings.LastIndexAny(s, ",."); i >= 0 {
		inteiro := removeSeparadores(s[:i])
		fracao := removeSeparadores(s[i+1:])
		s = inteiro + "." + fracao
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

// FormatarValor formata um valor numérico no padrão pt-BR com duas casas
// decimais, ex.: 1234.5 -> "1.234,50".
func FormatarValor(valor float64) string {
	s := decimal.NewFromFloat(valor).StringFixed(2)

	negativo := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	partes := strings.SplitN(s, ".", 2)
	inteiro, fracao := partes[0], partes[1]

	var b strings.Builder
	if negativo {
		b.WriteByte('-')
	}
	for i, d := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteByte(',')
	b.WriteString(fracao)
	return b.String()
}

func removeSeparadores(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, ",", "")
}
