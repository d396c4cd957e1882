package motorista

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, m *Motorista) error
	Listar(db *gorm.DB) ([]Motorista, error)
	ListarPorParceiro(db *gorm.DB, parceiroID uint) ([]Motorista, error)
	BuscarPorID(db *gorm.DB, id uint) (*Motorista, error)
	Atualizar(db *gorm.DB, m *Motorista) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, m *Motorista) error {
	return db.Create(m).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB) ([]Motorista, error) {
	var list []Motorista
	err := db.Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorParceiro(db *gorm.DB, parceiroID uint) ([]Motorista, error) {
	var list []Motorista
	err := db.
		Where("parceiro_id = ?", parceiroID).
		Order("nome ASC").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Motorista, error) {
	var m Motorista
	err := db.First(&m, id).Error
	return &m, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, m *Motorista) error {
	return db.Save(m).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Motorista{}, id).Error
}
