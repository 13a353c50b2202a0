package usecase

import (
	"context"

	"plantcare/internal/domain/entity"
)

// CatalogBadge is a catalog entry with whether any rule can award it.
type CatalogBadge struct {
	entity.Badge
	Attainable bool `json:"attainable"`
}

// GamificationUsecase exposes the badge catalog and the point economy.
type GamificationUsecase interface {
	ListBadges(ctx context.Context) ([]*CatalogBadge, error)
	ListUserBadges(ctx context.Context, userID uint64) ([]*entity.EarnedBadge, error)

	// GrantPoints adds a non-negative amount and recomputes the level.
	GrantPoints(ctx context.Context, userID uint64, amount int) (entity.Effects, error)

	// TryAwardBadge awards the named badge unless the user already holds it.
	TryAwardBadge(ctx context.Context, userID uint64, badgeName string) (entity.Effects, error)
}
