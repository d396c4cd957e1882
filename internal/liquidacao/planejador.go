// internal/liquidacao/planejador.go
package liquidacao

import (
	"errors"
	"fmt"

	"github.com/RotaNorte/api-cargas/internal/movimentacao"
)

// Erros de configuração: entrada incompleta ou sem valor.
var (
	ErrTrajetoNaoSelecionado    = errors.New("nenhum trajeto selecionado")
	ErrPercentualInvalido       = errors.New("percentual de adiantamento inválido (use 70 ou 80)")
	ErrParcelaInvalida          = errors.New("parcela do frete inválida (use 'adiantamento', 'saldo' ou 'ambas')")
	ErrDespesasSemValor         = errors.New("despesas adicionais habilitadas sem valor")
	ErrDiariasSemValor          = errors.New("diárias habilitadas sem valor")
	ErrVencimentoFreteAusente   = errors.New("data de vencimento do frete não informada")
	ErrVencimentoAdtoAusente    = errors.New("data de vencimento do adiantamento não informada")
	ErrVencimentoSaldoAusente   = errors.New("data de vencimento do saldo não informada")
	ErrVencimentoDespesaAusente = errors.New("data de vencimento das despesas adicionais não informada")
	ErrVencimentoDiariasAusente = errors.New("data de vencimento das diárias não informada")
	ErrAlvoConsolidacaoInvalido = errors.New("alvo de consolidação não está entre as parcelas lançadas")
)

// Erros de conflito de estado: o trajeto já tem lançamentos que impedem a
// tentativa.
var (
	ErrTrajetoJaLiquidado    = errors.New("trajeto já liquidado")
	ErrAdiantamentoJaLancado = errors.New("adiantamento já lançado para este trajeto")
	ErrSaldoJaLancado        = errors.New("saldo já lançado para este trajeto")
)

// EhConflitoDeEstado separa os erros de re-lançamento (HTTP 409) dos erros de
// configuração (HTTP 422).
func EhConflitoDeEstado(err error) bool {
	return errors.Is(err, ErrTrajetoJaLiquidado) ||
		errors.Is(err, ErrAdiantamentoJaLancado) ||
		errors.Is(err, ErrSaldoJaLancado)
}

// Planejar valida a configuração contra a situação atual do trajeto e, se
// tudo passar, emite a lista de movimentações a criar. É puro: não toca o
// banco; qualquer falha retorna erro sem emissão parcial.
func Planejar(codigoCarga string, cargaID uint, valorBase float64, sit Situacao, d DadosIntegracao) ([]movimentacao.MovimentacaoFinanceira, error) {
	if err := validar(sit, d); err != nil {
		return nil, err
	}

	numero := d.NumeroTrajeto
	var movs []movimentacao.MovimentacaoFinanceira

	if !d.DividirFrete {
		// Pagamento único: uma linha de frete com os extras embutidos.
		movs = append(movs, movimentacao.MovimentacaoFinanceira{
			Tipo:            movimentacao.TipoDespesa,
			Valor:           ValorPagamentoUnico(valorBase, d),
			Descricao:       descricao(MarcadorPagamentoUnico, codigoCarga, numero),
			Categoria:       movimentacao.CategoriaFrete,
			DataVencimento:  d.VencimentoFrete,
			StatusPagamento: movimentacao.StatusPendente,
			CargaID:         cargaID,
			NumeroTrajeto:   &numero,
		})
		// Diárias lançadas em separado mesmo sem divisão.
		if d.TemDiarias && d.DestinoDiarias == DestinoIndividual {
			movs = append(movs, movimentacaoDiarias(codigoCarga, cargaID, numero, d))
		}
		return movs, nil
	}

	// Frete dividido: lança as parcelas pedidas.
	if d.Parcela == ParcelaAdiantamento || d.Parcela == ParcelaAmbas {
		movs = append(movs, movimentacao.MovimentacaoFinanceira{
			Tipo:            movimentacao.TipoDespesa,
			Valor:           ValorParcelaAdiantamento(valorBase, d),
			Descricao:       descricao(MarcadorAdiantamento, codigoCarga, numero),
			Categoria:       movimentacao.CategoriaFrete,
			DataVencimento:  d.VencimentoAdiantamento,
			StatusPagamento: movimentacao.StatusPendente,
			CargaID:         cargaID,
			NumeroTrajeto:   &numero,
		})
	}
	if d.Parcela == ParcelaSaldo || d.Parcela == ParcelaAmbas {
		movs = append(movs, movimentacao.MovimentacaoFinanceira{
			Tipo:            movimentacao.TipoDespesa,
			Valor:           ValorParcelaSaldo(valorBase, d),
			Descricao:       descricao(MarcadorSaldo, codigoCarga, numero),
			Categoria:       movimentacao.CategoriaFrete,
			DataVencimento:  d.VencimentoSaldo,
			StatusPagamento: movimentacao.StatusPendente,
			CargaID:         cargaID,
			NumeroTrajeto:   &numero,
		})
	}

	// Extras lançados como linha própria, independentes das parcelas.
	if d.TemDespesas && d.DestinoDespesas == DestinoIndividual {
		movs = append(movs, movimentacao.MovimentacaoFinanceira{
			Tipo:            movimentacao.TipoDespesa,
			Valor:           DespesasConvertidas(d),
			Descricao:       descricao(TokenDespesas+" - ", codigoCarga, numero),
			Categoria:       movimentacao.CategoriaOutraDespesa,
			DataVencimento:  d.VencimentoDespesas,
			StatusPagamento: movimentacao.StatusPendente,
			CargaID:         cargaID,
			NumeroTrajeto:   &numero,
		})
	}
	if d.TemDiarias && d.DestinoDiarias == DestinoIndividual {
		movs = append(movs, movimentacaoDiarias(codigoCarga, cargaID, numero, d))
	}

	return movs, nil
}

func movimentacaoDiarias(codigoCarga string, cargaID uint, numero int, d DadosIntegracao) movimentacao.MovimentacaoFinanceira {
	return movimentacao.MovimentacaoFinanceira{
		Tipo:            movimentacao.TipoDespesa,
		Valor:           ValorDiarias(d),
		Descricao:       descricao(TokenDiarias+" - ", codigoCarga, numero),
		Categoria:       movimentacao.CategoriaDiaria,
		DataVencimento:  d.VencimentoDiarias,
		StatusPagamento: movimentacao.StatusPendente,
		CargaID:         cargaID,
		NumeroTrajeto:   &numero,
	}
}

// descricao monta a descrição canônica: marcador + identificador humano da
// carga + número do trajeto. O resolvedor só interpreta o prefixo; o resto é
// livre, para leitura humana.
func descricao(marcador, codigoCarga string, numero int) string {
	return fmt.Sprintf("%sCarga %s - Trajeto %d", marcador, codigoCarga, numero)
}

func validar(sit Situacao, d DadosIntegracao) error {
	if d.NumeroTrajeto < 1 {
		return ErrTrajetoNaoSelecionado
	}
	if sit.Liquidado {
		return ErrTrajetoJaLiquidado
	}

	if d.DividirFrete {
		if !d.Percentual.Valido() {
			return ErrPercentualInvalido
		}
		switch d.Parcela {
		case ParcelaAdiantamento:
			if sit.TemAdiantamento {
				return ErrAdiantamentoJaLancado
			}
			if d.VencimentoAdiantamento.IsZero() {
				return ErrVencimentoAdtoAusente
			}
		case ParcelaSaldo:
			if sit.TemSaldo {
				return ErrSaldoJaLancado
			}
			if d.VencimentoSaldo.IsZero() {
				return ErrVencimentoSaldoAusente
			}
		case ParcelaAmbas:
			// Lançar as duas com qualquer uma já existente duplicaria a
			// metade presente: rejeita nomeando a parcela em conflito.
			if sit.TemAdiantamento {
				return ErrAdiantamentoJaLancado
			}
			if sit.TemSaldo {
				return ErrSaldoJaLancado
			}
			if d.VencimentoAdiantamento.IsZero() {
				return ErrVencimentoAdtoAusente
			}
			if d.VencimentoSaldo.IsZero() {
				return ErrVencimentoSaldoAusente
			}
		default:
			return ErrParcelaInvalida
		}
	} else {
		if d.VencimentoFrete.IsZero() {
			return ErrVencimentoFreteAusente
		}
	}

	if d.TemDespesas {
		if DespesasConvertidas(d) == 0 {
			return ErrDespesasSemValor
		}
		if d.DividirFrete && d.DestinoDespesas == DestinoIndividual && d.VencimentoDespesas.IsZero() {
			return ErrVencimentoDespesaAusente
		}
	}
	if d.TemDiarias {
		if ValorDiarias(d) == 0 {
			return ErrDiariasSemValor
		}
		if d.DestinoDiarias == DestinoIndividual && d.VencimentoDiarias.IsZero() {
			return ErrVencimentoDiariasAusente
		}
	}

	// Extras consolidados precisam de uma parcela lançada nesta tentativa
	// que os receba, senão o valor se perderia.
	if d.DividirFrete && ExtrasConsolidados(d) > 0 && d.Parcela != ParcelaAmbas {
		if (d.alvoEfetivo() == AlvoAdiantamento) != (d.Parcela == ParcelaAdiantamento) {
			return ErrAlvoConsolidacaoInvalido
		}
	}

	return nil
}
