// internal/reversao/registro.go
package reversao

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNadaParaDesfazer = errors.New("nenhuma ação para desfazer")

// Acao é uma ação registrada que pode ser desfeita como unidade atômica.
// O fechamento Desfazer carrega tudo que precisa (ex.: os IDs de todas as
// movimentações criadas numa liquidação).
type Acao struct {
	ID        uuid.UUID `json:"id"`
	Descricao string    `json:"descricao"`
	CriadaEm  time.Time `json:"criadaEm"`

	Desfazer func() error `json:"-"`
}

// Registro mantém a pilha de ações desfazíveis da sessão (LIFO).
type Registro struct {
	mu     sync.Mutex
	acoes  []Acao
	logger *zap.Logger
}

// NovoRegistro cria um registro vazio.
func NovoRegistro(logger *zap.Logger) *Registro {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registro{logger: logger}
}

// Registrar empilha uma nova ação desfazível e a retorna.
func (r *Registro) Registrar(descricao string, desfazer func() error) Acao {
	a := Acao{
		ID:        uuid.New(),
		Descricao: descricao,
		CriadaEm:  time.Now(),
		Desfazer:  desfazer,
	}
	r.mu.Lock()
	r.acoes = append(r.acoes, a)
	r.mu.Unlock()

	r.logger.Info("ação registrada",
		zap.String("acaoId", a.ID.String()),
		zap.String("descricao", descricao))
	return a
}

// Ultima retorna a ação mais recente sem removê-la.
func (r *Registro) Ultima() (Acao, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.acoes) == 0 {
		return Acao{}, false
	}
	return r.acoes[len(r.acoes)-1], true
}

// DesfazerUltima executa e remove a ação mais recente. Se o desfazer falhar,
// a ação permanece na pilha para nova tentativa.
func (r *Registro) DesfazerUltima() (Acao, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.acoes) == 0 {
		return Acao{}, ErrNadaParaDesfazer
	}
	a := r.acoes[len(r.acoes)-1]
	if err := a.Desfazer(); err != nil {
		r.logger.Error("falha ao desfazer ação",
			zap.String("acaoId", a.ID.String()),
			zap.Error(err))
		return Acao{}, err
	}
	r.acoes = r.acoes[:len(r.acoes)-1]

	r.logger.Info("ação desfeita",
		zap.String("acaoId", a.ID.String()),
		zap.String("descricao", a.Descricao))
	return a, nil
}

// Tamanho retorna quantas ações estão registradas.
func (r *Registro) Tamanho() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.acoes)
}
