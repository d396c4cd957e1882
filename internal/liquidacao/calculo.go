// internal/liquidacao/calculo.go
package liquidacao

import (
	"github.com/shopspring/decimal"
)

// Funções puras de cálculo dos valores da liquidação. Toda a aritmética usa
// decimal e arredonda para o centavo; o saldo é calculado por diferença para
// que adiantamento + saldo == valor-base sem perda de arredondamento.

func arredonda(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// ValorAdiantamento = valorBase * (percentual / 100), arredondado ao centavo.
func ValorAdiantamento(valorBase float64, p PercentualAdiantamento) float64 {
	base := decimal.NewFromFloat(valorBase)
	return arredonda(base.Mul(decimal.NewFromInt(int64(p))).Div(decimal.NewFromInt(100)))
}

// ValorSaldo = valorBase - adiantamento.
func ValorSaldo(valorBase float64, p PercentualAdiantamento) float64 {
	base := decimal.NewFromFloat(valorBase)
	adto := decimal.NewFromFloat(ValorAdiantamento(valorBase, p))
	return arredonda(base.Sub(adto))
}

// DespesasConvertidas = (valorMoedaEstrangeira * taxa) + extraDireto.
// Zero quando o toggle de despesas está desligado.
func DespesasConvertidas(d DadosIntegracao) float64 {
	if !d.TemDespesas {
		return 0
	}
	estrangeira := decimal.NewFromFloat(d.ValorMoedaEstrangeira)
	taxa := decimal.NewFromFloat(d.TaxaConversao)
	direto := decimal.NewFromFloat(d.ValorExtraDireto)
	return arredonda(estrangeira.Mul(taxa).Add(direto))
}

// ValorDiarias retorna o valor de diárias configurado, zero se desligado.
func ValorDiarias(d DadosIntegracao) float64 {
	if !d.TemDiarias {
		return 0
	}
	return arredonda(decimal.NewFromFloat(d.ValorDiarias))
}

// ExtrasConsolidados soma os extras que serão embutidos numa parcela do
// frete dividido. Só conta cada extra se (a) a divisão está habilitada e
// (b) o destino daquele extra não é "individual". Com a divisão desligada,
// extras nunca são "consolidados" (entram direto no pagamento único).
func ExtrasConsolidados(d DadosIntegracao) float64 {
	if !d.DividirFrete {
		return 0
	}
	total := decimal.Zero
	if d.TemDespesas && d.DestinoDespesas != DestinoIndividual {
		total = total.Add(decimal.NewFromFloat(DespesasConvertidas(d)))
	}
	if d.TemDiarias && d.DestinoDiarias != DestinoIndividual {
		total = total.Add(decimal.NewFromFloat(ValorDiarias(d)))
	}
	return arredonda(total)
}

// ExtrasIndividuais soma os extras que serão lançados como linha própria.
// Só tem significado com a divisão habilitada.
func ExtrasIndividuais(d DadosIntegracao) float64 {
	if !d.DividirFrete {
		return 0
	}
	total := decimal.Zero
	if d.TemDespesas && d.DestinoDespesas == DestinoIndividual {
		total = total.Add(decimal.NewFromFloat(DespesasConvertidas(d)))
	}
	if d.TemDiarias && d.DestinoDiarias == DestinoIndividual {
		total = total.Add(decimal.NewFromFloat(ValorDiarias(d)))
	}
	return arredonda(total)
}

// ValorPagamentoUnico = valorBase + despesas convertidas + diárias.
// Se as diárias forem lançadas em separado mesmo sem divisão, a linha de
// frete as exclui (uma segunda movimentação as carrega sozinha).
func ValorPagamentoUnico(valorBase float64, d DadosIntegracao) float64 {
	total := decimal.NewFromFloat(valorBase).
		Add(decimal.NewFromFloat(DespesasConvertidas(d)))
	if !(d.TemDiarias && d.DestinoDiarias == DestinoIndividual) {
		total = total.Add(decimal.NewFromFloat(ValorDiarias(d)))
	}
	return arredonda(total)
}

// ValorParcelaAdiantamento = parcela-base do adiantamento, mais os extras
// consolidados quando o alvo de consolidação é o adiantamento.
func ValorParcelaAdiantamento(valorBase float64, d DadosIntegracao) float64 {
	total := decimal.NewFromFloat(ValorAdiantamento(valorBase, d.Percentual))
	if d.alvoEfetivo() == AlvoAdiantamento {
		total = total.Add(decimal.NewFromFloat(ExtrasConsolidados(d)))
	}
	return arredonda(total)
}

// ValorParcelaSaldo = parcela-base do saldo, mais os extras consolidados
// quando o alvo de consolidação é o saldo (sempre, no modo "ambas").
func ValorParcelaSaldo(valorBase float64, d DadosIntegracao) float64 {
	total := decimal.NewFromFloat(ValorSaldo(valorBase, d.Percentual))
	if d.alvoEfetivo() == AlvoSaldo {
		total = total.Add(decimal.NewFromFloat(ExtrasConsolidados(d)))
	}
	return arredonda(total)
}
