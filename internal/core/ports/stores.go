// Package ports defines the seams between the HTTP layer and the pluggable
// data sources. Store methods return the wire envelope directly so the
// forwarding implementation can relay an upstream response verbatim — status,
// message and payload untouched — while the fixture implementation fabricates
// the same shapes in memory.
package ports

import (
	"context"

	"github.com/yu-shop/storefront-api/internal/api/envelope"
)

// MemberStore serves both the self-service /member surface and the
// back-office /user/members surface.
type MemberStore interface {
	Register(ctx context.Context, in RegisterMemberInput) (*envelope.Envelope, error)
	Get(ctx context.Context, memberID string) (*envelope.Envelope, error)
	Update(ctx context.Context, in UpdateMemberInput) (*envelope.Envelope, error)
	Delete(ctx context.Context, memberID int) (*envelope.Envelope, error)
	Login(ctx context.Context, email, password string) (*envelope.Envelope, error)
	ChangePassword(ctx context.Context, in ChangePasswordInput) (*envelope.Envelope, error)
	List(ctx context.Context, memberID string) (*envelope.Envelope, error)
	Create(ctx context.Context, in CreateMemberInput) (*envelope.Envelope, error)
	AdminUpdate(ctx context.Context, in UpdateMemberInput) (*envelope.Envelope, error)
	AdminDelete(ctx context.Context, memberID int) (*envelope.Envelope, error)
}

type ProductStore interface {
	List(ctx context.Context) (*envelope.Envelope, error)
	Get(ctx context.Context, productID int) (*envelope.Envelope, error)
	AdminList(ctx context.Context) (*envelope.Envelope, error)
	Create(ctx context.Context, in ProductInput) (*envelope.Envelope, error)
	Update(ctx context.Context, in ProductInput) (*envelope.Envelope, error)
	Delete(ctx context.Context, productID int) (*envelope.Envelope, error)
}

type CategoryStore interface {
	List(ctx context.Context) (*envelope.Envelope, error)
	Create(ctx context.Context, in CategoryInput) (*envelope.Envelope, error)
	Update(ctx context.Context, in CategoryInput) (*envelope.Envelope, error)
	Delete(ctx context.Context, categoryID int) (*envelope.Envelope, error)
}

type CartStore interface {
	Get(ctx context.Context, memberID string) (*envelope.Envelope, error)
	Add(ctx context.Context, in CartInput) (*envelope.Envelope, error)
	Update(ctx context.Context, in CartInput) (*envelope.Envelope, error)
	Remove(ctx context.Context, memberID, productID string) (*envelope.Envelope, error)
}

type OrderStore interface {
	Create(ctx context.Context, memberID int) (*envelope.Envelope, error)
	List(ctx context.Context, memberID string) (*envelope.Envelope, error)
}

type AdminUserStore interface {
	List(ctx context.Context) (*envelope.Envelope, error)
	Create(ctx context.Context, in AdminUserInput) (*envelope.Envelope, error)
	Update(ctx context.Context, in AdminUserInput) (*envelope.Envelope, error)
	Delete(ctx context.Context, userID int) (*envelope.Envelope, error)
	Login(ctx context.Context, account, password string) (*envelope.Envelope, error)
}
