package veiculo

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, v *Veiculo) error
	Listar(db *gorm.DB, tipo string) ([]Veiculo, error)
	BuscarPorID(db *gorm.DB, id uint) (*Veiculo, error)
	BuscarPorPlaca(db *gorm.DB, placa string) (*Veiculo, error)
	Atualizar(db *gorm.DB, v *Veiculo) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, v *Veiculo) error {
	return db.Create(v).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB, tipo string) ([]Veiculo, error) {
	var list []Veiculo
	q := db.Order("placa ASC")
	if tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Veiculo, error) {
	var v Veiculo
	err := db.First(&v, id).Error
	return &v, err
}

func (r *repositoryImpl) BuscarPorPlaca(db *gorm.DB, placa string) (*Veiculo, error) {
	var v Veiculo
	err := db.Where("placa = ?", placa).First(&v).Error
	return &v, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, v *Veiculo) error {
	return db.Save(v).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Veiculo{}, id).Error
}
