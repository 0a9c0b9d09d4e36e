package repository

import (
	"context"

	"github.com/jhoicas/lifebank-api/internal/domain/entity"
)

// UserRepository puerto de persistencia de usuarios.
// Las búsquedas devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
