package repository

import (
	"context"
	"errors"

	"plantcare/internal/domain/entity"
)

var (
	// ErrBadgeNotFound is returned when a badge is not in the catalog.
	ErrBadgeNotFound = errors.New("badge not found")
	// ErrBadgeAlreadyAwarded is returned when the (user, badge) pair already exists.
	ErrBadgeAlreadyAwarded = errors.New("badge already awarded")
)

// BadgeRepository defines persistence operations for the badge catalog and awarded badges.
type BadgeRepository interface {
	// Create adds a catalog entry. Only seeding calls this.
	Create(ctx context.Context, badge *entity.Badge) error
	FindByID(ctx context.Context, id uint64) (*entity.Badge, error)
	FindByName(ctx context.Context, name string) (*entity.Badge, error)

	// FindAll lists the catalog in id order.
	FindAll(ctx context.Context) ([]*entity.Badge, error)

	// Award inserts a user badge. The store rejects duplicates with ErrBadgeAlreadyAwarded.
	Award(ctx context.Context, userBadge *entity.UserBadge) error

	HasUserBadge(ctx context.Context, userID, badgeID uint64) (bool, error)

	// FindUserBadges lists the badges a user earned, oldest first.
	FindUserBadges(ctx context.Context, userID uint64) ([]*entity.EarnedBadge, error)
}
