// internal/movimentacao/model.go
package movimentacao

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de lançamento
const (
	TipoReceita = "Receita"
	TipoDespesa = "Despesa"
)

// Categorias reconhecidas pelo motor de liquidação
const (
	CategoriaFrete        = "FRETE"
	CategoriaDiaria       = "DIARIA"
	CategoriaOutraDespesa = "OUTRA_DESPESA"
)

// Status de pagamento
const (
	StatusPendente = "Pendente"
	StatusPago     = "Pago"
)

// MovimentacaoFinanceira representa um lançamento do livro financeiro.
// Lançamentos vinculados a um trajeto carregam CargaID + NumeroTrajeto;
// a descrição segue a convenção de prefixos usada pela liquidação para
// detectar o que já foi lançado.
type MovimentacaoFinanceira struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Tipo            string     `gorm:"size:20;not null" json:"tipo"` // "Receita" ou "Despesa"
	Valor           float64    `gorm:"not null" json:"valor"`
	Descricao       string     `gorm:"size:255;not null" json:"descricao"`
	Categoria       string     `gorm:"size:50;not null;index" json:"categoria"`
	DataVencimento  time.Time  `gorm:"not null" json:"dataVencimento"`
	StatusPagamento string     `gorm:"size:50;not null;default:'Pendente';index" json:"statusPagamento"`
	DataPagamento   *time.Time `json:"dataPagamento"`

	CargaID       uint   `gorm:"index" json:"cargaId"`
	NumeroTrajeto *int   `gorm:"index" json:"numeroTrajeto,omitempty"`
	Observacoes   string `json:"observacoes"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&MovimentacaoFinanceira{})
}
