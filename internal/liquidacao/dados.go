// internal/liquidacao/dados.go
package liquidacao

import "time"

// PercentualAdiantamento é o percentual do valor-base pago como adiantamento.
// Conjunto fechado: apenas os valores enumerados são aceitos.
type PercentualAdiantamento int

const (
	Percentual70 PercentualAdiantamento = 70
	Percentual80 PercentualAdiantamento = 80
)

// Valido informa se o percentual pertence ao conjunto aceito.
func (p PercentualAdiantamento) Valido() bool {
	return p == Percentual70 || p == Percentual80
}

// ParcelaAlvo indica qual(is) parcela(s) do frete dividido lançar.
type ParcelaAlvo string

const (
	ParcelaAdiantamento ParcelaAlvo = "adiantamento"
	ParcelaSaldo        ParcelaAlvo = "saldo"
	ParcelaAmbas        ParcelaAlvo = "ambas"
)

// DestinoExtra indica se um extra (despesas adicionais ou diárias) é somado
// à parcela do frete ("consolidar") ou lançado como linha própria ("individual").
type DestinoExtra string

const (
	DestinoConsolidar DestinoExtra = "consolidar"
	DestinoIndividual DestinoExtra = "individual"
)

// AlvoConsolidacao indica em qual parcela os extras consolidados são somados.
// Só é configurável quando uma única parcela é lançada; no modo "ambas" os
// extras consolidados vão sempre para o saldo (regra fixa do negócio).
type AlvoConsolidacao string

const (
	AlvoAdiantamento AlvoConsolidacao = "adiantamento"
	AlvoSaldo        AlvoConsolidacao = "saldo"
)

// DadosIntegracao é o objeto de decisão de uma tentativa de liquidação.
// É efêmero: montado a partir do formulário, validado e descartado — nunca
// persistido.
type DadosIntegracao struct {
	NumeroTrajeto int

	// Divisão adiantamento/saldo
	DividirFrete     bool
	Percentual       PercentualAdiantamento
	Parcela          ParcelaAlvo
	AlvoConsolidacao AlvoConsolidacao

	// Vencimentos das parcelas do frete
	VencimentoFrete        time.Time // pagamento único
	VencimentoAdiantamento time.Time
	VencimentoSaldo        time.Time

	// Despesas adicionais
	TemDespesas           bool
	ValorMoedaEstrangeira float64
	TaxaConversao         float64
	ValorExtraDireto      float64
	DestinoDespesas       DestinoExtra
	VencimentoDespesas    time.Time

	// Diárias
	TemDiarias        bool
	ValorDiarias      float64
	DestinoDiarias    DestinoExtra
	VencimentoDiarias time.Time
}

// alvoEfetivo resolve o alvo de consolidação da tentativa: no modo "ambas" o
// alvo é sempre o saldo; nos modos de parcela única, o padrão é a própria
// parcela lançada.
func (d DadosIntegracao) alvoEfetivo() AlvoConsolidacao {
	if d.Parcela == ParcelaAmbas {
		return AlvoSaldo
	}
	if d.AlvoConsolidacao == "" {
		if d.Parcela == ParcelaAdiantamento {
			return AlvoAdiantamento
		}
		return AlvoSaldo
	}
	return d.AlvoConsolidacao
}
