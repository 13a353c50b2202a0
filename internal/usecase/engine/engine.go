// Package engine applies the derived-state rules of plant care: points and
// levels, badge awards, tasks generated from analyses and inbox notifications.
//
// Every method works on the repositories of the caller's transaction and
// returns the effects it caused in the order they happened. Callers own the
// transaction, the per-user lock and the publication of effects.
package engine

import (
	"context"
	"time"

	"plantcare/config"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/gamification"
	"plantcare/internal/domain/repository"
	"plantcare/internal/errors"
)

// Engine holds the point economy settings and the clock.
type Engine struct {
	settings gamification.Settings
	now      func() time.Time
}

// New returns an engine using settings and the wall clock.
func New(settings gamification.Settings) *Engine {
	return &Engine{settings: settings, now: time.Now}
}

// NewFromConfig reads the gamification section, keeping defaults for unset values.
func NewFromConfig(cfg *config.Config) *Engine {
	settings := gamification.DefaultSettings()
	if cfg != nil && cfg.Gamification != nil {
		g := cfg.Gamification
		if g.PointsPerLevel > 0 {
			settings.PointsPerLevel = g.PointsPerLevel
		}
		if g.TaskCompletionPoints > 0 {
			settings.TaskCompletionPoints = g.TaskCompletionPoints
		}
		if g.AnalysisPoints > 0 {
			settings.AnalysisPoints = g.AnalysisPoints
		}
		if g.UrgentDueIn > 0 {
			settings.UrgentDueIn = g.UrgentDueIn
		}
		if g.RecommendedDueIn > 0 {
			settings.RecommendedDueIn = g.RecommendedDueIn
		}
	}

	return New(settings)
}

// WithClock returns a copy of the engine reading time from now.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	cloned := *e
	cloned.now = now

	return &cloned
}

// Settings returns the active settings.
func (e *Engine) Settings() gamification.Settings {
	return e.settings
}

// Now returns the engine's current time.
func (e *Engine) Now() time.Time {
	return e.now()
}

// GrantPoints adds amount to the user's points and raises the level when the
// new total crosses a threshold. A zero amount changes nothing.
func (e *Engine) GrantPoints(ctx context.Context, repos repository.RepositoryFactory, userID uint64, amount int, reason string) (entity.Effects, error) {
	if amount < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("points amount must not be negative")
	}

	user, err := repos.UserRepo().FindByID(ctx, userID)
	if err != nil {
		return nil, domainerrors.FromRepository(err)
	}
	if amount == 0 {
		return nil, nil
	}

	points := user.Points + amount
	level := gamification.NextLevel(user.Level, points, e.settings.PointsPerLevel)

	if err := repos.UserRepo().UpdateProgress(ctx, userID, points, level); err != nil {
		return nil, domainerrors.FromRepository(err)
	}

	effects := entity.Effects{{
		Kind:   entity.EffectPointsGranted,
		UserID: userID,
		Points: amount,
		Level:  level,
		Detail: reason,
	}}
	if level > user.Level {
		effects.Add(entity.Effect{
			Kind:   entity.EffectLevelUp,
			UserID: userID,
			Points: points,
			Level:  level,
		})
	}

	return effects, nil
}

// TryAwardBadge awards the named badge once per user. Awarding a badge the user
// already holds is a no-op with no effects.
func (e *Engine) TryAwardBadge(ctx context.Context, repos repository.RepositoryFactory, userID uint64, badgeName string) (entity.Effects, error) {
	badge, err := repos.BadgeRepo().FindByName(ctx, badgeName)
	if err != nil {
		return nil, domainerrors.FromRepository(err)
	}

	return e.award(ctx, repos, userID, badge)
}

func (e *Engine) award(ctx context.Context, repos repository.RepositoryFactory, userID uint64, badge *entity.Badge) (entity.Effects, error) {
	if _, err := repos.UserRepo().FindByID(ctx, userID); err != nil {
		return nil, domainerrors.FromRepository(err)
	}

	has, err := repos.BadgeRepo().HasUserBadge(ctx, userID, badge.ID)
	if err != nil {
		return nil, domainerrors.FromRepository(err)
	}
	if has {
		return nil, nil
	}

	userBadge := &entity.UserBadge{UserID: userID, BadgeID: badge.ID, EarnedAt: e.now()}
	if err := repos.BadgeRepo().Award(ctx, userBadge); err != nil {
		if errors.Is(err, repository.ErrBadgeAlreadyAwarded) {
			return nil, nil
		}

		return nil, domainerrors.FromRepository(err)
	}

	effects := entity.Effects{{
		Kind:      entity.EffectBadgeAwarded,
		UserID:    userID,
		SubjectID: badge.ID,
		Points:    badge.BonusPoints,
		Detail:    badge.Name,
	}}

	notified, err := e.EmitBadgeNotification(ctx, repos, userID, badge)
	if err != nil {
		return nil, err
	}
	effects.Add(notified...)

	granted, err := e.GrantPoints(ctx, repos, userID, badge.BonusPoints, "badge:"+badge.Name)
	if err != nil {
		return nil, err
	}
	effects.Add(granted...)

	return effects, nil
}

// EvaluateBadges awards every catalog badge whose rule watches the trigger and
// is satisfied by facts. Catalog order decides award order.
func (e *Engine) EvaluateBadges(ctx context.Context, repos repository.RepositoryFactory, userID uint64, facts gamification.Facts) (entity.Effects, error) {
	badges, err := repos.BadgeRepo().FindAll(ctx)
	if err != nil {
		return nil, domainerrors.FromRepository(err)
	}

	var effects entity.Effects
	for _, badge := range badges {
		if !gamification.Watches(badge.Requirement, facts.Trigger) || !gamification.Qualifies(badge.Requirement, facts) {
			continue
		}

		awarded, err := e.award(ctx, repos, userID, badge)
		if err != nil {
			return nil, err
		}
		effects.Add(awarded...)
	}

	return effects, nil
}

// OnPlantCreated evaluates plant-count badges after a plant was inserted.
func (e *Engine) OnPlantCreated(ctx context.Context, repos repository.RepositoryFactory, userID uint64) (entity.Effects, error) {
	count, err := repos.PlantRepo().CountByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.FromRepository(err)
	}

	return e.EvaluateBadges(ctx, repos, userID, gamification.Facts{
		Trigger:    gamification.TriggerPlantCreated,
		PlantCount: count,
	})
}

// MaterializeTasksFromRecommendations creates a task for every urgent or
// recommended recommendation, in input order.
func (e *Engine) MaterializeTasksFromRecommendations(ctx context.Context, repos repository.RepositoryFactory, userID, plantID uint64, recs []entity.Recommendation) (entity.Effects, error) {
	now := e.now()

	var effects entity.Effects
	for _, rec := range recs {
		task, ok := gamification.TaskFromRecommendation(userID, plantID, rec, now, e.settings)
		if !ok {
			continue
		}

		if err := repos.TaskRepo().Create(ctx, task); err != nil {
			return nil, domainerrors.FromRepository(err)
		}

		effects.Add(entity.Effect{
			Kind:      entity.EffectTaskCreated,
			UserID:    userID,
			SubjectID: task.ID,
			Detail:    string(task.Priority),
		})
	}

	return effects, nil
}

// OnTaskCompleted marks the task completed and applies its rewards. Only the
// transition from open to completed counts; completing a completed task
// returns no effects.
func (e *Engine) OnTaskCompleted(ctx context.Context, repos repository.RepositoryFactory, task *entity.Task) (entity.Effects, error) {
	changed, err := repos.TaskRepo().MarkCompleted(ctx, task.ID)
	if err != nil {
		return nil, domainerrors.FromRepository(err)
	}
	if !changed {
		return nil, nil
	}
	task.Completed = true

	effects := entity.Effects{{
		Kind:      entity.EffectTaskCompleted,
		UserID:    task.UserID,
		SubjectID: task.ID,
		Detail:    string(task.Type),
	}}

	if task.Type == entity.TaskTypeWater {
		watered, err := repos.TaskRepo().CountCompletedByType(ctx, task.UserID, entity.TaskTypeWater)
		if err != nil {
			return nil, domainerrors.FromRepository(err)
		}

		awarded, err := e.EvaluateBadges(ctx, repos, task.UserID, gamification.Facts{
			Trigger:             gamification.TriggerTaskCompleted,
			CompletedTaskType:   task.Type,
			CompletedWaterTasks: watered,
		})
		if err != nil {
			return nil, err
		}
		effects.Add(awarded...)
	}

	granted, err := e.GrantPoints(ctx, repos, task.UserID, e.settings.TaskCompletionPoints, "task_completed")
	if err != nil {
		return nil, err
	}
	effects.Add(granted...)

	return effects, nil
}

// EmitIssueNotifications creates one issue notification per issue. A missing
// plant skips the step without error.
func (e *Engine) EmitIssueNotifications(ctx context.Context, repos repository.RepositoryFactory, userID, plantID uint64, issues []entity.Issue) (entity.Effects, error) {
	if len(issues) == 0 {
		return nil, nil
	}

	plant, err := repos.PlantRepo().FindByID(ctx, plantID)
	if err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return nil, nil
		}

		return nil, domainerrors.FromRepository(err)
	}

	var effects entity.Effects
	for _, issue := range issues {
		notified, err := e.createNotification(ctx, repos, gamification.IssueNotification(userID, plant, issue))
		if err != nil {
			return nil, err
		}
		effects.Add(notified...)
	}

	return effects, nil
}

// EmitBadgeNotification announces a newly earned badge.
func (e *Engine) EmitBadgeNotification(ctx context.Context, repos repository.RepositoryFactory, userID uint64, badge *entity.Badge) (entity.Effects, error) {
	return e.createNotification(ctx, repos, gamification.BadgeNotification(userID, badge))
}

func (e *Engine) createNotification(ctx context.Context, repos repository.RepositoryFactory, notification *entity.Notification) (entity.Effects, error) {
	notification.CreatedAt = e.now()
	if err := repos.NotificationRepo().Create(ctx, notification); err != nil {
		return nil, domainerrors.FromRepository(err)
	}

	return entity.Effects{{
		Kind:      entity.EffectNotificationCreated,
		UserID:    notification.UserID,
		SubjectID: notification.ID,
		Detail:    string(notification.Type),
	}}, nil
}
