package postgres

import (
	"context"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/errors"
	"plantcare/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type badgeRepository struct {
	db *gorm.DB
}

// NewBadgeRepository is the constructor for badgeRepository.
func NewBadgeRepository(db *gorm.DB) repository.BadgeRepository {
	return &badgeRepository{db: db}
}

func (repo *badgeRepository) Create(ctx context.Context, badge *entity.Badge) error {
	badgeM := fromBadgeDomain(badge)

	if err := repo.db.WithContext(ctx).Create(badgeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("badge name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create badge")
	}

	badge.ID = badgeM.ID

	return nil
}

func (repo *badgeRepository) FindByID(ctx context.Context, id uint64) (*entity.Badge, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *badgeRepository) FindByName(ctx context.Context, name string) (*entity.Badge, error) {
	return repo.first(repo.db.WithContext(ctx).Where("name = ?", name))
}

func (repo *badgeRepository) first(query *gorm.DB) (*entity.Badge, error) {
	var badgeM model.BadgeModel
	if err := query.First(&badgeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBadgeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find badge")
	}

	return toBadgeDomain(&badgeM), nil
}

func (repo *badgeRepository) FindAll(ctx context.Context) ([]*entity.Badge, error) {
	var badgeMs []model.BadgeModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&badgeMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list badges")
	}

	badges := make([]*entity.Badge, 0, len(badgeMs))
	for i := range badgeMs {
		badges = append(badges, toBadgeDomain(&badgeMs[i]))
	}

	return badges, nil
}

// Award relies on the (user_id, badge_id) unique index to reject a second award.
func (repo *badgeRepository) Award(ctx context.Context, userBadge *entity.UserBadge) error {
	userBadgeM := &model.UserBadgeModel{
		UserID:   userBadge.UserID,
		BadgeID:  userBadge.BadgeID,
		EarnedAt: userBadge.EarnedAt,
	}

	if err := repo.db.WithContext(ctx).Omit("Badge").Create(userBadgeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrBadgeAlreadyAwarded
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBadgeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to award badge")
	}

	userBadge.ID = userBadgeM.ID

	return nil
}

func (repo *badgeRepository) HasUserBadge(ctx context.Context, userID, badgeID uint64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserBadgeModel{}).
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check user badge")
	}

	return count > 0, nil
}

func (repo *badgeRepository) FindUserBadges(ctx context.Context, userID uint64) ([]*entity.EarnedBadge, error) {
	var userBadgeMs []model.UserBadgeModel
	err := repo.db.WithContext(ctx).
		Preload("Badge").
		Where("user_id = ?", userID).
		Order("earned_at ASC, id ASC").
		Find(&userBadgeMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list user badges")
	}

	earned := make([]*entity.EarnedBadge, 0, len(userBadgeMs))
	for i := range userBadgeMs {
		earned = append(earned, &entity.EarnedBadge{
			Badge:    *toBadgeDomain(&userBadgeMs[i].Badge),
			EarnedAt: userBadgeMs[i].EarnedAt,
		})
	}

	return earned, nil
}

// --- Mapper Functions ---

func toBadgeDomain(data *model.BadgeModel) *entity.Badge {
	if data == nil {
		return nil
	}

	return &entity.Badge{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Icon:        data.Icon,
		Requirement: entity.BadgeRequirement{
			Kind:      entity.RequirementKind(data.RequirementKind),
			Threshold: data.RequirementThreshold,
		},
		BonusPoints: data.BonusPoints,
	}
}

func fromBadgeDomain(data *entity.Badge) *model.BadgeModel {
	if data == nil {
		return nil
	}

	return &model.BadgeModel{
		ID:                   data.ID,
		Name:                 data.Name,
		Description:          data.Description,
		Icon:                 data.Icon,
		RequirementKind:      string(data.Requirement.Kind),
		RequirementThreshold: data.Requirement.Threshold,
		BonusPoints:          data.BonusPoints,
	}
}
