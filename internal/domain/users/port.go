package users

import "context"

// Repository port. Upsert matches on email; provider fields are refreshed
// on every login so profile changes follow the provider.
type Repository interface {
	Upsert(ctx context.Context, u *User) error
	Get(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
