package veiculo

import (
	"gorm.io/gorm"
)

// Tipos de veículo aceitos
const (
	TipoCavalo  = "Cavalo"
	TipoTruck   = "Truck"
	TipoReboque = "Reboque"
)

// Veiculo representa cavalo mecânico, truck ou reboque da frota de um parceiro
type Veiculo struct {
	gorm.Model
	Placa      string `json:"placa" gorm:"unique"`
	Tipo       string `json:"tipo"` // "Cavalo", "Truck" ou "Reboque"
	Modelo     string `json:"modelo"`
	AnoModelo  int    `json:"anoModelo"`
	ParceiroID *uint  `json:"parceiroId"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Veiculo{})
}
