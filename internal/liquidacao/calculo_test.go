package liquidacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Invariante: adiantamento + saldo == valorBase, sem perda de centavos.
func TestAdiantamentoMaisSaldoIgualValorBase(t *testing.T) {
	valores := []float64{0, 0.01, 1, 100.01, 333.33, 1000, 1234.56, 99999.99}
	percentuais := []PercentualAdiantamento{Percentual70, Percentual80}

	for _, base := range valores {
		for _, p := range percentuais {
			adto := ValorAdiantamento(base, p)
			saldo := ValorSaldo(base, p)
			assert.InDelta(t, base, adto+saldo, 0.001,
				"base=%v percentual=%d: adto=%v saldo=%v", base, p, adto, saldo)
		}
	}
}

func TestValorAdiantamento(t *testing.T) {
	assert.InDelta(t, 700.00, ValorAdiantamento(1000, Percentual70), 0.001)
	assert.InDelta(t, 800.00, ValorAdiantamento(1000, Percentual80), 0.001)
	assert.InDelta(t, 70.01, ValorAdiantamento(100.01, Percentual70), 0.001)
}

func TestDespesasConvertidas(t *testing.T) {
	tests := []struct {
		name     string
		dados    DadosIntegracao
		esperado float64
	}{
		{
			name:     "toggle_desligado",
			dados:    DadosIntegracao{ValorMoedaEstrangeira: 100, TaxaConversao: 5},
			esperado: 0,
		},
		{
			name: "conversao_mais_extra_direto",
			dados: DadosIntegracao{
				TemDespesas:           true,
				ValorMoedaEstrangeira: 100,
				TaxaConversao:         5.25,
				ValorExtraDireto:      40,
			},
			esperado: 565,
		},
		{
			name: "somente_extra_direto",
			dados: DadosIntegracao{
				TemDespesas:      true,
				ValorExtraDireto: 120.5,
			},
			esperado: 120.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.esperado, DespesasConvertidas(tt.dados), 0.001)
		})
	}
}

func TestExtrasConsolidadosEIndividuais(t *testing.T) {
	base := DadosIntegracao{
		DividirFrete:     true,
		TemDespesas:      true,
		ValorExtraDireto: 200,
		TemDiarias:       true,
		ValorDiarias:     150,
	}

	t.Run("ambos_consolidados", func(t *testing.T) {
		d := base
		d.DestinoDespesas = DestinoConsolidar
		d.DestinoDiarias = DestinoConsolidar
		assert.InDelta(t, 350, ExtrasConsolidados(d), 0.001)
		assert.InDelta(t, 0, ExtrasIndividuais(d), 0.001)
	})

	t.Run("diarias_individuais", func(t *testing.T) {
		d := base
		d.DestinoDespesas = DestinoConsolidar
		d.DestinoDiarias = DestinoIndividual
		assert.InDelta(t, 200, ExtrasConsolidados(d), 0.001)
		assert.InDelta(t, 150, ExtrasIndividuais(d), 0.001)
	})

	t.Run("sem_divisao_nada_consolida", func(t *testing.T) {
		d := base
		d.DividirFrete = false
		assert.InDelta(t, 0, ExtrasConsolidados(d), 0.001)
		assert.InDelta(t, 0, ExtrasIndividuais(d), 0.001)
	})
}

func TestValorPagamentoUnico(t *testing.T) {
	t.Run("soma_tudo", func(t *testing.T) {
		d := DadosIntegracao{
			TemDespesas:      true,
			ValorExtraDireto: 200,
			TemDiarias:       true,
			ValorDiarias:     150,
		}
		assert.InDelta(t, 1350, ValorPagamentoUnico(1000, d), 0.001)
	})

	t.Run("diarias_em_separado_ficam_fora", func(t *testing.T) {
		d := DadosIntegracao{
			TemDiarias:     true,
			ValorDiarias:   150,
			DestinoDiarias: DestinoIndividual,
		}
		assert.InDelta(t, 1000, ValorPagamentoUnico(1000, d), 0.001)
	})
}

func TestValorParcelasComConsolidacao(t *testing.T) {
	d := DadosIntegracao{
		DividirFrete:     true,
		Percentual:       Percentual70,
		Parcela:          ParcelaAmbas,
		TemDespesas:      true,
		ValorExtraDireto: 100,
		DestinoDespesas:  DestinoConsolidar,
	}

	// No modo "ambas" os extras consolidados caem sempre no saldo.
	assert.InDelta(t, 700, ValorParcelaAdiantamento(1000, d), 0.001)
	assert.InDelta(t, 400, ValorParcelaSaldo(1000, d), 0.001)

	// Em modo de parcela única, o alvo configurado decide.
	d.Parcela = ParcelaAdiantamento
	d.AlvoConsolidacao = AlvoAdiantamento
	assert.InDelta(t, 800, ValorParcelaAdiantamento(1000, d), 0.001)
}
