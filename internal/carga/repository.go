// internal/carga/repository.go
package carga

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, c *Carga) error
	Listar(db *gorm.DB) ([]Carga, error)
	ListarPorCliente(db *gorm.DB, clienteID uint) ([]Carga, error)
	BuscarPorID(db *gorm.DB, id uint) (*Carga, error)
	Atualizar(db *gorm.DB, c *Carga) error
	AtualizarStatus(db *gorm.DB, id uint, status string) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Carga) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB) ([]Carga, error) {
	var list []Carga
	err := db.
		Preload("Trajetos").
		Order("id DESC").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorCliente(db *gorm.DB, clienteID uint) ([]Carga, error) {
	var list []Carga
	err := db.
		Where("cliente_id = ?", clienteID).
		Preload("Trajetos").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Carga, error) {
	var c Carga
	err := db.
		Preload("Trajetos").
		First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, c *Carga) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, status string) error {
	return db.Model(&Carga{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Carga{}, id).Error
}
