// internal/carga/model.go
package carga

import (
	"time"

	"github.com/RotaNorte/api-cargas/internal/trajeto"
	"gorm.io/gorm"
)

// Carga representa uma carga agenciada, composta por um ou mais trajetos.
// O status geral da carga é independente da situação de liquidação dos
// trajetos (essa é derivada das movimentações financeiras).
type Carga struct {
	ID        uint           `gorm:"primaryKey" json:"cargaId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Codigo string `gorm:"size:50;uniqueIndex;not null" json:"codigo"` // identificador humano, ex.: "CRG-0042"
	Status string `gorm:"size:50;not null;default:'Aberta'" json:"status"`

	ClienteID *uint `json:"clienteId"`

	// Relação 1-N com Trajetos
	Trajetos []trajeto.Trajeto `gorm:"foreignKey:CargaID;constraint:OnDelete:CASCADE" json:"trajetos"`
}

// ValorTotal soma os valores-base de todos os trajetos da carga.
func (c *Carga) ValorTotal() float64 {
	var total float64
	for _, t := range c.Trajetos {
		total += t.ValorBase
	}
	return total
}

// TrajetoPorNumero retorna o trajeto com o número informado, se existir.
func (c *Carga) TrajetoPorNumero(numero int) *trajeto.Trajeto {
	for i := range c.Trajetos {
		if c.Trajetos[i].Numero == numero {
			return &c.Trajetos[i]
		}
	}
	return nil
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Carga{})
}
