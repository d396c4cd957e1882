// internal/trajeto/model.go
package trajeto

import (
	"time"

	"gorm.io/gorm"
)

// Trajeto representa um trecho do percurso de uma carga. É a unidade de
// liquidação: cada trajeto tem seu próprio valor-base de frete e seus
// vínculos com parceiro, motorista e veículo.
type Trajeto struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	CargaID uint `gorm:"not null;index;uniqueIndex:idx_trajeto_carga_numero" json:"cargaId"`
	Numero  int  `gorm:"not null;uniqueIndex:idx_trajeto_carga_numero" json:"numero"` // 1-based, único dentro da carga

	Origem    string  `gorm:"size:120" json:"origem"`
	Destino   string  `gorm:"size:120" json:"destino"`
	ValorBase float64 `gorm:"not null;default:0" json:"valorBase"` // valor do frete sujeito à liquidação

	DataColeta  *time.Time `json:"dataColeta"`
	DataEntrega *time.Time `json:"dataEntrega"`

	// Vínculos opcionais
	ParceiroID  *uint  `json:"parceiroId"`
	MotoristaID *uint  `json:"motoristaId"`
	VeiculoID   *uint  `json:"veiculoId"`
	Reboques    []uint `gorm:"type:jsonb;serializer:json" json:"reboques"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Trajeto{})
}
