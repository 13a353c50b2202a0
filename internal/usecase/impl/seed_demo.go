package impl

import (
	"context"
	"time"

	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/gamification"
	"plantcare/internal/domain/repository"
	"plantcare/internal/errors"
)

const (
	demoUsername = "plantlover"
	demoPassword = "password"
)

// demoGarden writes a ready-made account straight to the store. Award rules
// are not evaluated; the account is credited with the rewards of its first
// plant and its recorded analysis.
type demoGarden struct {
	now      time.Time
	settings gamification.Settings
}

func newDemoGarden(now time.Time, settings gamification.Settings) *demoGarden {
	return &demoGarden{now: now, settings: settings}
}

func ptr[T any](v T) *T {
	return &v
}

func (g *demoGarden) plant(ctx context.Context, repos repository.RepositoryFactory, passwordHash string) error {
	user := entity.NewUser(demoUsername, passwordHash)
	if err := repos.UserRepo().Create(ctx, user); err != nil {
		return errors.Wrap(err, "failed to create demo user")
	}

	monstera := entity.NewPlant(user.ID, "Monstera", ptr("Monstera Deliciosa"),
		ptr("https://images.unsplash.com/photo-1614594975525-e45190c55d0b?auto=format&fit=crop&w=400&h=300"), g.now)
	snakePlant := entity.NewPlant(user.ID, "Snake Plant", ptr("Sansevieria"),
		ptr("https://images.unsplash.com/photo-1620127252536-03bdfcf6d5c3?auto=format&fit=crop&w=400&h=300"), g.now)

	for _, plant := range []*entity.Plant{monstera, snakePlant} {
		if err := repos.PlantRepo().Create(ctx, plant); err != nil {
			return errors.Wrapf(err, "failed to create demo plant %q", plant.Name)
		}
	}

	monsteraHealth := monstera.Health()
	monsteraHealth.WaterLevel = 25
	monsteraHealth.HealthScore = 60
	snakeHealth := snakePlant.Health()
	snakeHealth.LightLevel = 50
	snakeHealth.HealthScore = 75

	if err := repos.PlantRepo().UpdateHealth(ctx, monstera.ID, monsteraHealth); err != nil {
		return errors.Wrap(err, "failed to set demo plant health")
	}
	if err := repos.PlantRepo().UpdateHealth(ctx, snakePlant.ID, snakeHealth); err != nil {
		return errors.Wrap(err, "failed to set demo plant health")
	}

	water := &entity.Task{
		PlantID:     monstera.ID,
		UserID:      user.ID,
		Title:       "Water Monstera",
		Description: ptr("Last watered 9 days ago"),
		Type:        entity.TaskTypeWater,
		Priority:    entity.TaskPriorityUrgent,
		DueDate:     ptr(g.now),
	}
	move := &entity.Task{
		PlantID:     snakePlant.ID,
		UserID:      user.ID,
		Title:       "Move Snake Plant",
		Description: ptr("Direct sunlight is too intense"),
		Type:        entity.TaskTypeMove,
		Priority:    entity.TaskPriorityHigh,
		DueDate:     ptr(g.now),
	}
	for _, task := range []*entity.Task{water, move} {
		if err := repos.TaskRepo().Create(ctx, task); err != nil {
			return errors.Wrapf(err, "failed to create demo task %q", task.Title)
		}
	}

	var firstPlant, hydrationPro *entity.Badge
	for _, name := range []string{gamification.BadgeFirstPlant, gamification.BadgeHydrationPro} {
		badge, err := repos.BadgeRepo().FindByName(ctx, name)
		if err != nil {
			return errors.Wrapf(err, "failed to find badge %q", name)
		}
		if err := repos.BadgeRepo().Award(ctx, &entity.UserBadge{UserID: user.ID, BadgeID: badge.ID, EarnedAt: g.now}); err != nil {
			return errors.Wrapf(err, "failed to award demo badge %q", name)
		}
		if name == gamification.BadgeFirstPlant {
			firstPlant = badge
		} else {
			hydrationPro = badge
		}
	}

	notifications := []*entity.Notification{
		{
			Title:     "Water Monstera Now",
			Message:   "Your Monstera is very thirsty. Water it as soon as possible.",
			Type:      entity.NotificationTypeTask,
			RelatedID: ptr(water.ID),
		},
		{
			Title:     "Move Snake Plant",
			Message:   "Current spot is too sunny. Move to a place with indirect light.",
			Type:      entity.NotificationTypeTask,
			RelatedID: ptr(move.ID),
		},
		gamification.BadgeNotification(user.ID, hydrationPro),
		{
			Title:   "Tip of the Day",
			Message: "Mist your tropical plants regularly to increase humidity.",
			Type:    entity.NotificationTypeTip,
		},
	}
	for _, notification := range notifications {
		notification.UserID = user.ID
		notification.CreatedAt = g.now
		if err := repos.NotificationRepo().Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create demo notification")
		}
	}

	analysis := &entity.PlantAnalysis{
		PlantID:       monstera.ID,
		UserID:        user.ID,
		HealthScore:   60,
		WaterLevel:    20,
		LightLevel:    80,
		NutrientLevel: 40,
		PestRisk:      20,
		Issues: []entity.Issue{
			{Name: "Dehydration", Description: "Your plant needs water urgently. The soil is very dry.", Icon: "water_drop"},
			{Name: "Nutrient Deficiency", Description: "Yellowing leaves indicate a lack of nutrients.", Icon: "grass"},
		},
		Recommendations: []entity.Recommendation{
			{
				Title:       "Water Thoroughly",
				Description: "Your plant is severely dehydrated. Water until you see it drain from the bottom.",
				Priority:    entity.RecommendationUrgent,
				Type:        entity.TaskTypeWater,
				Icon:        "water_drop",
				Tip:         ptr("For Monsteras, wait until the top 2 inches of soil is dry before watering again."),
			},
			{
				Title:       "Apply Fertilizer",
				Description: "Yellowing leaves indicate your plant needs nutrients. Apply a balanced fertilizer within 3 days.",
				Priority:    entity.RecommendationRecommended,
				Type:        entity.TaskTypeFertilize,
				Icon:        "grass",
			},
			{
				Title:       "Clean Leaves",
				Description: "Wipe dust from leaves every 2 weeks to help your plant breathe better.",
				Priority:    entity.RecommendationMaintenance,
				Type:        entity.TaskTypeClean,
				Icon:        "cleaning_services",
			},
			{
				Title:       "Consider Repotting",
				Description: "Your plant might need a larger pot in the next 3-4 months.",
				Priority:    entity.RecommendationMaintenance,
				Type:        entity.TaskTypeRepot,
				Icon:        "format_color_fill",
			},
		},
		ImageURL:  monstera.ImageURL,
		CreatedAt: g.now,
	}
	if err := repos.AnalysisRepo().Create(ctx, analysis); err != nil {
		return errors.Wrap(err, "failed to create demo analysis")
	}

	points := firstPlant.BonusPoints + g.settings.AnalysisPoints
	level := gamification.LevelFor(points, g.settings.PointsPerLevel)
	if err := repos.UserRepo().UpdateProgress(ctx, user.ID, points, level); err != nil {
		return errors.Wrap(err, "failed to set demo user progress")
	}

	return nil
}
