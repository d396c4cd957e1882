// internal/liquidacao/situacao.go
package liquidacao

import (
	"strings"

	"github.com/RotaNorte/api-cargas/internal/movimentacao"
)

// Marcadores de descrição usados para detectar o que já foi lançado para um
// trajeto. São um contrato com dados históricos: a comparação é por prefixo
// exato, sensível a maiúsculas, ancorada no início da descrição.
const (
	MarcadorPagamentoUnico = "Frete - "
	MarcadorAdiantamento   = "Adto - "
	MarcadorSaldo          = "Saldo - "

	TokenDiarias  = "Diárias"
	TokenDespesas = "Despesas Adicionais"
)

// Situacao classifica o estado de liquidação de um trajeto a partir das suas
// movimentações de frete já existentes.
type Situacao struct {
	TemPagamentoUnico bool `json:"temPagamentoUnico"`
	TemAdiantamento   bool `json:"temAdiantamento"`
	TemSaldo          bool `json:"temSaldo"`
	Liquidado         bool `json:"liquidado"`
}

// Resolver inspeciona as movimentações de categoria FRETE de um trajeto
// (pré-filtradas pelo chamador) e deriva a situação de liquidação.
// Liquidado = pagamento único OU (adiantamento E saldo).
func Resolver(movs []movimentacao.MovimentacaoFinanceira) Situacao {
	var s Situacao
	for _, m := range movs {
		if m.Categoria != movimentacao.CategoriaFrete {
			continue
		}
		switch {
		case strings.HasPrefix(m.Descricao, MarcadorPagamentoUnico):
			s.TemPagamentoUnico = true
		case strings.HasPrefix(m.Descricao, MarcadorAdiantamento):
			s.TemAdiantamento = true
		case strings.HasPrefix(m.Descricao, MarcadorSaldo):
			s.TemSaldo = true
		}
	}
	s.Liquidado = s.TemPagamentoUnico || (s.TemAdiantamento && s.TemSaldo)
	return s
}
