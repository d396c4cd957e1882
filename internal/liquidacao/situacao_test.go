package liquidacao

import (
	"testing"

	"github.com/RotaNorte/api-cargas/internal/movimentacao"
	"github.com/stretchr/testify/assert"
)

func movFrete(descricao string) movimentacao.MovimentacaoFinanceira {
	return movimentacao.MovimentacaoFinanceira{
		Categoria: movimentacao.CategoriaFrete,
		Descricao: descricao,
	}
}

func TestResolver(t *testing.T) {
	tests := []struct {
		name     string
		movs     []movimentacao.MovimentacaoFinanceira
		esperado Situacao
	}{
		{
			name:     "sem_movimentacoes",
			movs:     nil,
			esperado: Situacao{},
		},
		{
			name: "pagamento_unico",
			movs: []movimentacao.MovimentacaoFinanceira{
				movFrete("Frete - Carga CRG-0001 - Trajeto 1"),
			},
			esperado: Situacao{TemPagamentoUnico: true, Liquidado: true},
		},
		{
			name: "somente_adiantamento",
			movs: []movimentacao.MovimentacaoFinanceira{
				movFrete("Adto - Carga CRG-0001 - Trajeto 1"),
			},
			esperado: Situacao{TemAdiantamento: true},
		},
		{
			name: "somente_saldo",
			movs: []movimentacao.MovimentacaoFinanceira{
				movFrete("Saldo - Carga CRG-0001 - Trajeto 1"),
			},
			esperado: Situacao{TemSaldo: true},
		},
		{
			name: "adiantamento_e_saldo",
			movs: []movimentacao.MovimentacaoFinanceira{
				movFrete("Adto - Carga CRG-0001 - Trajeto 1"),
				movFrete("Saldo - Carga CRG-0001 - Trajeto 1"),
			},
			esperado: Situacao{TemAdiantamento: true, TemSaldo: true, Liquidado: true},
		},
		{
			name: "prefixo_e_sensivel_a_maiusculas",
			movs: []movimentacao.MovimentacaoFinanceira{
				movFrete("FRETE - Carga CRG-0001 - Trajeto 1"),
				movFrete("adto - Carga CRG-0001 - Trajeto 1"),
			},
			esperado: Situacao{},
		},
		{
			name: "marcador_no_meio_nao_conta",
			movs: []movimentacao.MovimentacaoFinanceira{
				movFrete("Pagamento Adto - Carga CRG-0001 - Trajeto 1"),
			},
			esperado: Situacao{},
		},
		{
			name: "ignora_outras_categorias",
			movs: []movimentacao.MovimentacaoFinanceira{
				{Categoria: movimentacao.CategoriaDiaria, Descricao: "Frete - Carga CRG-0001 - Trajeto 1"},
			},
			esperado: Situacao{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.esperado, Resolver(tt.movs))
		})
	}
}
