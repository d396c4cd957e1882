package liquidacao

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RotaNorte/api-cargas/internal/movimentacao"
)

var vencimento = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

func dadosDivididos(parcela ParcelaAlvo) DadosIntegracao {
	return DadosIntegracao{
		NumeroTrajeto:          1,
		DividirFrete:           true,
		Percentual:             Percentual70,
		Parcela:                parcela,
		VencimentoAdiantamento: vencimento,
		VencimentoSaldo:        vencimento,
	}
}

func TestPlanejarAmbasParcelas(t *testing.T) {
	movs, err := Planejar("CRG-0001", 1, 1000, Situacao{}, dadosDivididos(ParcelaAmbas))
	require.NoError(t, err)
	require.Len(t, movs, 2)

	assert.Equal(t, "Adto - Carga CRG-0001 - Trajeto 1", movs[0].Descricao)
	assert.InDelta(t, 700.00, movs[0].Valor, 0.001)
	assert.Equal(t, "Saldo - Carga CRG-0001 - Trajeto 1", movs[1].Descricao)
	assert.InDelta(t, 300.00, movs[1].Valor, 0.001)

	for _, m := range movs {
		assert.Equal(t, movimentacao.TipoDespesa, m.Tipo)
		assert.Equal(t, movimentacao.CategoriaFrete, m.Categoria)
		assert.Equal(t, movimentacao.StatusPendente, m.StatusPagamento)
		assert.Equal(t, uint(1), m.CargaID)
		require.NotNil(t, m.NumeroTrajeto)
		assert.Equal(t, 1, *m.NumeroTrajeto)
	}

	// O plano emitido fecha o trajeto: o resolvedor o enxerga liquidado.
	sit := Resolver(movs)
	assert.True(t, sit.TemAdiantamento)
	assert.True(t, sit.TemSaldo)
	assert.True(t, sit.Liquidado)
}

func TestPlanejarPagamentoUnicoComDiariasSeparadas(t *testing.T) {
	d := DadosIntegracao{
		NumeroTrajeto:     2,
		VencimentoFrete:   vencimento,
		TemDiarias:        true,
		ValorDiarias:      150,
		DestinoDiarias:    DestinoIndividual,
		VencimentoDiarias: vencimento,
	}

	movs, err := Planejar("CRG-0002", 7, 1000, Situacao{}, d)
	require.NoError(t, err)
	require.Len(t, movs, 2)

	assert.Equal(t, "Frete - Carga CRG-0002 - Trajeto 2", movs[0].Descricao)
	assert.Equal(t, movimentacao.CategoriaFrete, movs[0].Categoria)
	assert.InDelta(t, 1000.00, movs[0].Valor, 0.001)

	assert.Equal(t, "Diárias - Carga CRG-0002 - Trajeto 2", movs[1].Descricao)
	assert.Equal(t, movimentacao.CategoriaDiaria, movs[1].Categoria)
	assert.InDelta(t, 150.00, movs[1].Valor, 0.001)

	assert.True(t, Resolver(movs).Liquidado)
}

func TestPlanejarParcelasEmEtapasComExtrasIndividuais(t *testing.T) {
	// 1) Lança só o adiantamento, com despesas individuais.
	d := dadosDivididos(ParcelaAdiantamento)
	d.TemDespesas = true
	d.ValorExtraDireto = 80
	d.DestinoDespesas = DestinoIndividual
	d.VencimentoDespesas = vencimento

	primeiros, err := Planejar("CRG-0003", 3, 1000, Situacao{}, d)
	require.NoError(t, err)
	require.Len(t, primeiros, 2)
	assert.InDelta(t, 700.00, primeiros[0].Valor, 0.001)
	assert.Equal(t, movimentacao.CategoriaOutraDespesa, primeiros[1].Categoria)
	assert.Equal(t, "Despesas Adicionais - Carga CRG-0003 - Trajeto 1", primeiros[1].Descricao)
	assert.InDelta(t, 80.00, primeiros[1].Valor, 0.001)

	sit := Resolver(primeiros)
	assert.True(t, sit.TemAdiantamento)
	assert.False(t, sit.Liquidado)

	// 2) Completa com o saldo.
	segundos, err := Planejar("CRG-0003", 3, 1000, sit, dadosDivididos(ParcelaSaldo))
	require.NoError(t, err)
	require.Len(t, segundos, 1)
	assert.InDelta(t, 300.00, segundos[0].Valor, 0.001)

	sit = Resolver(append(primeiros, segundos...))
	assert.True(t, sit.Liquidado)

	// 3) Nova tentativa sobre o trajeto fechado é rejeitada.
	_, err = Planejar("CRG-0003", 3, 1000, sit, dadosDivididos(ParcelaAmbas))
	assert.ErrorIs(t, err, ErrTrajetoJaLiquidado)
	assert.True(t, EhConflitoDeEstado(err))
}

func TestPlanejarSomaTotalSemDuplaContagem(t *testing.T) {
	d := dadosDivididos(ParcelaAmbas)
	d.Percentual = Percentual80
	d.TemDespesas = true
	d.ValorMoedaEstrangeira = 100
	d.TaxaConversao = 5
	d.DestinoDespesas = DestinoConsolidar
	d.TemDiarias = true
	d.ValorDiarias = 150
	d.DestinoDiarias = DestinoIndividual
	d.VencimentoDiarias = vencimento

	movs, err := Planejar("CRG-0004", 4, 1234.56, Situacao{}, d)
	require.NoError(t, err)

	var total float64
	for _, m := range movs {
		total += m.Valor
	}
	// 1234.56 + 500 de despesas + 150 de diárias, sem contar nada duas vezes.
	assert.InDelta(t, 1884.56, total, 0.001)
}

func TestPlanejarConflitosDeEstado(t *testing.T) {
	tests := []struct {
		name     string
		sit      Situacao
		parcela  ParcelaAlvo
		esperado error
	}{
		{"adiantamento_repetido", Situacao{TemAdiantamento: true}, ParcelaAdiantamento, ErrAdiantamentoJaLancado},
		{"saldo_repetido", Situacao{TemSaldo: true}, ParcelaSaldo, ErrSaldoJaLancado},
		{"ambas_com_adiantamento_existente", Situacao{TemAdiantamento: true}, ParcelaAmbas, ErrAdiantamentoJaLancado},
		{"ambas_com_saldo_existente", Situacao{TemSaldo: true}, ParcelaAmbas, ErrSaldoJaLancado},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Planejar("CRG-0005", 5, 1000, tt.sit, dadosDivididos(tt.parcela))
			assert.ErrorIs(t, err, tt.esperado)
			assert.True(t, EhConflitoDeEstado(err))
		})
	}
}

func TestPlanejarRejeicoesDeConfiguracao(t *testing.T) {
	semVencimentoAdto := dadosDivididos(ParcelaAdiantamento)
	semVencimentoAdto.VencimentoAdiantamento = time.Time{}

	semVencimentoSaldo := dadosDivididos(ParcelaSaldo)
	semVencimentoSaldo.VencimentoSaldo = time.Time{}

	percentualFora := dadosDivididos(ParcelaAmbas)
	percentualFora.Percentual = 50

	parcelaVazia := dadosDivididos("")

	despesasZeradas := dadosDivididos(ParcelaAmbas)
	despesasZeradas.TemDespesas = true

	diariasZeradas := dadosDivididos(ParcelaAmbas)
	diariasZeradas.TemDiarias = true

	despesasSemVencimento := dadosDivididos(ParcelaAmbas)
	despesasSemVencimento.TemDespesas = true
	despesasSemVencimento.ValorExtraDireto = 50
	despesasSemVencimento.DestinoDespesas = DestinoIndividual

	alvoForaDaParcela := dadosDivididos(ParcelaAdiantamento)
	alvoForaDaParcela.TemDespesas = true
	alvoForaDaParcela.ValorExtraDireto = 50
	alvoForaDaParcela.DestinoDespesas = DestinoConsolidar
	alvoForaDaParcela.AlvoConsolidacao = AlvoSaldo

	tests := []struct {
		name     string
		dados    DadosIntegracao
		esperado error
	}{
		{"sem_trajeto", DadosIntegracao{VencimentoFrete: vencimento}, ErrTrajetoNaoSelecionado},
		{"pagamento_unico_sem_vencimento", DadosIntegracao{NumeroTrajeto: 1}, ErrVencimentoFreteAusente},
		{"percentual_fora_do_conjunto", percentualFora, ErrPercentualInvalido},
		{"parcela_vazia", parcelaVazia, ErrParcelaInvalida},
		{"sem_vencimento_do_adiantamento", semVencimentoAdto, ErrVencimentoAdtoAusente},
		{"sem_vencimento_do_saldo", semVencimentoSaldo, ErrVencimentoSaldoAusente},
		{"despesas_habilitadas_sem_valor", despesasZeradas, ErrDespesasSemValor},
		{"diarias_habilitadas_sem_valor", diariasZeradas, ErrDiariasSemValor},
		{"despesas_individuais_sem_vencimento", despesasSemVencimento, ErrVencimentoDespesaAusente},
		{"alvo_de_consolidacao_nao_lancado", alvoForaDaParcela, ErrAlvoConsolidacaoInvalido},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Planejar("CRG-0006", 6, 1000, Situacao{}, tt.dados)
			assert.ErrorIs(t, err, tt.esperado)
			assert.False(t, EhConflitoDeEstado(err))
		})
	}
}
