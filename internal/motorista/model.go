package motorista

import (
	"time"

	"gorm.io/gorm"
)

// Motorista representa o condutor vinculado (ou não) a um parceiro
type Motorista struct {
	gorm.Model
	Nome         string     `json:"nome"`
	CPF          string     `json:"cpf" gorm:"unique"`
	CNH          string     `json:"cnh"`
	CategoriaCNH string     `json:"categoriaCnh"`
	ValidadeCNH  *time.Time `json:"validadeCnh"`
	Telefone     string     `json:"telefone"`
	ParceiroID   *uint      `json:"parceiroId"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Motorista{})
}
