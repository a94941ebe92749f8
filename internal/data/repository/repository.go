package repository

import (
	"storefront/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Identity IdentityRepository
	Profile  ProfileRepository
	Session  SessionRepository
	Product  ProductRepository
	Order    OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Identity: NewIdentityRepository(db, log),
		Profile:  NewProfileRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Product:  NewProductRepository(db, log),
		Order:    NewOrderRepository(db, log),
	}
}
