// internal/trajeto/repository.go
package trajeto

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, t *Trajeto) error
	ListarPorCarga(db *gorm.DB, cargaID uint) ([]Trajeto, error)
	BuscarPorNumero(db *gorm.DB, cargaID uint, numero int) (*Trajeto, error)
	Atualizar(db *gorm.DB, t *Trajeto) error
	Deletar(db *gorm.DB, cargaID uint, numero int) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, t *Trajeto) error {
	return db.Create(t).Error
}

func (r *repositoryImpl) ListarPorCarga(db *gorm.DB, cargaID uint) ([]Trajeto, error) {
	var list []Trajeto
	err := db.
		Where("carga_id = ?", cargaID).
		Order("numero ASC").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorNumero(db *gorm.DB, cargaID uint, numero int) (*Trajeto, error) {
	var t Trajeto
	err := db.
		Where("carga_id = ? AND numero = ?", cargaID, numero).
		First(&t).Error
	return &t, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, t *Trajeto) error {
	return db.Save(t).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, cargaID uint, numero int) error {
	res := db.
		Where("carga_id = ? AND numero = ?", cargaID, numero).
		Delete(&Trajeto{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
