package usuario

import (
	"gorm.io/gorm"
)

// Usuario representa um operador do back-office
type Usuario struct {
	gorm.Model
	Nome                  string `json:"nome"`
	Email                 string `json:"email" gorm:"unique"`
	Senha                 string `json:"-"`
	IsAdmin               bool   `json:"isAdmin"`
	PrecisaRedefinirSenha bool   `json:"-"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
