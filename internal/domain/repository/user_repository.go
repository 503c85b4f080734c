package repository

import "github.com/tu-usuario/solicitudes-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (autenticación).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
