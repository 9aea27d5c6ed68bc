package repository

import "github.com/tu-usuario/cafestock-api/internal/domain/entity"

// UserRepository puerto de solo lectura hacia el colaborador de identidad.
// Se usa únicamente para resolver el email de display de un movimiento.
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
}
