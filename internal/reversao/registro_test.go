package reversao

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarEUltima(t *testing.T) {
	r := NovoRegistro(nil)
	assert.Equal(t, 0, r.Tamanho())

	_, ok := r.Ultima()
	assert.False(t, ok)

	a := r.Registrar("Liquidação do trajeto 1 da carga CRG-0001", func() error { return nil })
	assert.NotEqual(t, "", a.ID.String())
	assert.False(t, a.CriadaEm.IsZero())
	assert.Equal(t, 1, r.Tamanho())

	ultima, ok := r.Ultima()
	require.True(t, ok)
	assert.Equal(t, a.ID, ultima.ID)
	assert.Equal(t, "Liquidação do trajeto 1 da carga CRG-0001", ultima.Descricao)

	// Ultima não remove.
	assert.Equal(t, 1, r.Tamanho())
}

func TestDesfazerUltimaOrdemLIFO(t *testing.T) {
	r := NovoRegistro(nil)

	var desfeitas []string
	for _, nome := range []string{"primeira", "segunda", "terceira"} {
		nome := nome
		r.Registrar(nome, func() error {
			desfeitas = append(desfeitas, nome)
			return nil
		})
	}

	for i := 0; i < 3; i++ {
		_, err := r.DesfazerUltima()
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"terceira", "segunda", "primeira"}, desfeitas)
	assert.Equal(t, 0, r.Tamanho())

	_, err := r.DesfazerUltima()
	assert.ErrorIs(t, err, ErrNadaParaDesfazer)
}

func TestDesfazerFalhaMantemAcao(t *testing.T) {
	r := NovoRegistro(nil)
	falha := errors.New("banco indisponível")

	tentativas := 0
	r.Registrar("liquidação", func() error {
		tentativas++
		if tentativas == 1 {
			return falha
		}
		return nil
	})

	_, err := r.DesfazerUltima()
	assert.ErrorIs(t, err, falha)
	assert.Equal(t, 1, r.Tamanho(), "a ação deve continuar na pilha após a falha")

	a, err := r.DesfazerUltima()
	require.NoError(t, err)
	assert.Equal(t, "liquidação", a.Descricao)
	assert.Equal(t, 0, r.Tamanho())
}

func TestDesfazerRemoveMovimentacoesCriadas(t *testing.T) {
	r := NovoRegistro(nil)

	// Simula o fechamento montado pela liquidação: apagar exatamente os IDs
	// das movimentações que ela criou.
	criadas := map[uint]bool{11: true, 12: true}
	deletar := func(ids []uint) error {
		for _, id := range ids {
			if !criadas[id] {
				return errors.New("movimentação desconhecida")
			}
			delete(criadas, id)
		}
		return nil
	}

	ids := []uint{11, 12}
	r.Registrar("Liquidação do trajeto 2 da carga CRG-0002", func() error {
		return deletar(ids)
	})

	_, err := r.DesfazerUltima()
	require.NoError(t, err)
	assert.Empty(t, criadas)
}
