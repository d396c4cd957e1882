package cliente

import (
	"gorm.io/gorm"
)

// Cliente representa o embarcador dono da carga
type Cliente struct {
	gorm.Model
	RazaoSocial  string `json:"razaoSocial"`
	NomeFantasia string `json:"nomeFantasia"`
	CNPJ         string `json:"cnpj" gorm:"unique"`
	Email        string `json:"email"`
	Telefone     string `json:"telefone"`
	Cidade       string `json:"cidade"`
	UF           string `json:"uf"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
