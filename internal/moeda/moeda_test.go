package moeda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValor(t *testing.T) {
	tests := []struct {
		name     string
		texto    string
		esperado float64
	}{
		{name: "formato_brasileiro", texto: "1.234,56", esperado: 1234.56},
		{name: "formato_americano", texto: "1,234.56", esperado: 1234.56},
		{name: "com_simbolo_de_moeda", texto: "R$ 1.234,56", esperado: 1234.56},
		{name: "inteiro_sem_separador", texto: "1000", esperado: 1000},
		{name: "apenas_decimal", texto: "0,50", esperado: 0.5},
		{name: "ultimo_separador_vira_decimal", texto: "1.000", esperado: 1},
		{name: "negativo", texto: "-12,34", esperado: -12.34},
		{name: "vazio", texto: "", esperado: 0},
		{name: "somente_letras", texto: "abc", esperado: 0},
		{name: "somente_separador", texto: ",", esperado: 0},
		{name: "lixo_ao_redor", texto: "valor: 99,90 reais", esperado: 99.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.esperado, ParseValor(tt.texto), 1e-9)
		})
	}
}

func TestFormatarValor(t *testing.T) {
	tests := []struct {
		name     string
		valor    float64
		esperado string
	}{
		{name: "com_milhar", valor: 1234.5, esperado: "1.234,50"},
		{name: "zero", valor: 0, esperado: "0,00"},
		{name: "centavos", valor: 0.5, esperado: "0,50"},
		{name: "negativo", valor: -1234.56, esperado: "-1.234,56"},
		{name: "milhoes", valor: 1000000, esperado: "1.000.000,00"},
		{name: "sem_milhar", valor: 999.99, esperado: "999,99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.esperado, FormatarValor(tt.valor))
		})
	}
}

// Ida e volta: o que o formatador produz, o parser lê de volta.
func TestParseFormatarRoundTrip(t *testing.T) {
	valores := []float64{0, 0.01, 1, 999.99, 1234.56, 1000000, -42.5}
	for _, v := range valores {
		assert.InDelta(t, v, ParseValor(FormatarValor(v)), 1e-9)
	}
}
