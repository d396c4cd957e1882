package parceiro

import (
	"gorm.io/gorm"
)

// Parceiro representa a transportadora contratada para executar trajetos
type Parceiro struct {
	gorm.Model
	RazaoSocial string `json:"razaoSocial"`
	CNPJ        string `json:"cnpj" gorm:"unique"`
	RNTRC       string `json:"rntrc"` // registro nacional de transportador
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
	Cidade      string `json:"cidade"`
	UF          string `json:"uf"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Parceiro{})
}
