// internal/movimentacao/repository.go
package movimentacao

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de movimentações financeiras.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

/* ========================= CRUD básico ========================= */

// Criar persiste uma movimentação.
func (r *Repository) Criar(m *MovimentacaoFinanceira) error {
	return r.DB.Create(m).Error
}

// CriarEmLote cria múltiplas movimentações de uma vez (ignora se vazio).
func (r *Repository) CriarEmLote(movs []*MovimentacaoFinanceira) error {
	if len(movs) == 0 {
		return nil
	}
	return r.DB.Create(movs).Error
}

// BuscarPorID busca uma única movimentação pelo seu ID.
func (r *Repository) BuscarPorID(id uint) (*MovimentacaoFinanceira, error) {
	var m MovimentacaoFinanceira
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Listar retorna movimentações com filtros opcionais de categoria e status.
func (r *Repository) Listar(categoria, status string) ([]MovimentacaoFinanceira, error) {
	var list []MovimentacaoFinanceira
	q := r.DB.Order("data_vencimento ASC")
	if categoria != "" {
		q = q.Where("categoria = ?", categoria)
	}
	if status != "" {
		q = q.Where("status_pagamento = ?", status)
	}
	err := q.Find(&list).Error
	return list, err
}

// ListarPorCarga retorna todas as movimentações de uma carga.
func (r *Repository) ListarPorCarga(cargaID uint) ([]MovimentacaoFinanceira, error) {
	var list []MovimentacaoFinanceira
	err := r.DB.
		Where("carga_id = ?", cargaID).
		Order("data_vencimento ASC").
		Find(&list).Error
	return list, err
}

// ListarFretePorTrajeto retorna as movimentações de categoria FRETE de um
// trajeto específico — é a entrada do resolvedor de situação da liquidação.
func (r *Repository) ListarFretePorTrajeto(cargaID uint, numeroTrajeto int) ([]MovimentacaoFinanceira, error) {
	var list []MovimentacaoFinanceira
	err := r.DB.
		Where("carga_id = ? AND numero_trajeto = ? AND categoria = ?", cargaID, numeroTrajeto, CategoriaFrete).
		Find(&list).Error
	return list, err
}

// Atualizar atualiza todos os campos de uma movimentação existente.
func (r *Repository) Atualizar(m *MovimentacaoFinanceira) error {
	return r.DB.Save(m).Error
}

// AtualizarStatus atualiza o status e ajusta data_pagamento.
// - Se status == "Pago", define data_pagamento = data informada.
// - Caso contrário, zera data_pagamento (NULL).
func (r *Repository) AtualizarStatus(id uint, status string, dataPagamento time.Time) error {
	updates := map[string]interface{}{"status_pagamento": status}
	if status == StatusPago {
		updates["data_pagamento"] = &dataPagamento
	} else {
		updates["data_pagamento"] = nil
	}
	return r.DB.Model(&MovimentacaoFinanceira{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// DeletarPorID apaga a movimentação; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&MovimentacaoFinanceira{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeletarPorIDs apaga todas as movimentações da lista — usado pelo desfazer
// de uma liquidação para remover os lançamentos criados numa tentativa.
func (r *Repository) DeletarPorIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.Delete(&MovimentacaoFinanceira{}, ids).Error
}
