package service

import (
	"context"

	"github.com/mygramapp/mygram/internal/mygram/domain"
	"github.com/mygramapp/mygram/internal/mygram/store"
)

type UserService struct {
	Store store.Store
}

// List returns all registered users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// Get returns a user by row id.
func (s *UserService) Get(ctx context.Context, id int64) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

// GetByEmail resolves an identity-provider email to the users row.
func (s *UserService) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.Store.Users().GetUserByEmail(ctx, email)
}

// Create registers a new user and returns it with the generated id. Insert
// and read-back run in one transaction so the returned row can't be affected
// by a concurrent write.
func (s *UserService) Create(ctx context.Context, name, email string) (domain.User, error) {
	var user domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		id, err := tx.Users().CreateUser(ctx, name, email)
		if err != nil {
			return err
		}
		user, err = tx.Users().GetUserByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}
