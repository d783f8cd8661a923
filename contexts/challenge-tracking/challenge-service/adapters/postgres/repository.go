package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dailytrack/contexts/challenge-tracking/challenge-service/domain/entities"
	domainerrors "dailytrack/contexts/challenge-tracking/challenge-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type challengeModel struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement"`
	OwnerID     int64      `gorm:"column:owner_id;not null;uniqueIndex:idx_challenges_owner_name"`
	Name        string     `gorm:"column:name;size:100;not null;uniqueIndex:idx_challenges_owner_name"`
	Description string     `gorm:"column:description"`
	StartedAt   time.Time  `gorm:"column:started_at;not null"`
	CompletedAt *time.Time `gorm:"column:completed_at"`
}

func (challengeModel) TableName() string { return "challenges" }

func (m challengeModel) toEntity() entities.Challenge {
	return entities.Challenge{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		StartedAt:   m.StartedAt,
		CompletedAt: m.CompletedAt,
	}
}

type dailyLogModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ChallengeID int64     `gorm:"column:challenge_id;not null;uniqueIndex:idx_daily_logs_challenge_date"`
	LogDate     time.Time `gorm:"column:log_date;not null;uniqueIndex:idx_daily_logs_challenge_date"`
	Completed   bool      `gorm:"column:completed;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (dailyLogModel) TableName() string { return "daily_logs" }

func (m dailyLogModel) toEntity() entities.DailyLog {
	return entities.DailyLog{
		ID:          m.ID,
		ChallengeID: m.ChallengeID,
		LogDate:     m.LogDate,
		Completed:   m.Completed,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type sharedGrantModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ChallengeID int64     `gorm:"column:challenge_id;not null;index"`
	GranteeID   int64     `gorm:"column:shared_user_id;not null;index"`
	SharedAt    time.Time `gorm:"column:shared_at;not null"`
}

func (sharedGrantModel) TableName() string { return "shared_challenges" }

func (m sharedGrantModel) toEntity() entities.SharedGrant {
	return entities.SharedGrant{
		ID:          m.ID,
		ChallengeID: m.ChallengeID,
		GranteeID:   m.GranteeID,
		SharedAt:    m.SharedAt,
	}
}

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&challengeModel{}, &dailyLogModel{}, &sharedGrantModel{})
}

func (r *Repository) CreateChallenge(ctx context.Context, challenge entities.Challenge) (entities.Challenge, error) {
	row := challengeModel{
		OwnerID:     challenge.OwnerID,
		Name:        challenge.Name,
		Description: challenge.Description,
		StartedAt:   challenge.StartedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Challenge{}, domainerrors.ErrChallengeNameTaken
		}
		return entities.Challenge{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetChallenge(ctx context.Context, id int64) (entities.Challenge, error) {
	var row challengeModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Challenge{}, domainerrors.ErrChallengeNotFound
		}
		return entities.Challenge{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListChallengesByOwner(ctx context.Context, ownerID int64) ([]entities.Challenge, error) {
	var rows []challengeModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("started_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.Challenge, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ChallengeNameTaken(ctx context.Context, ownerID int64, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&challengeModel{}).
		Where("owner_id = ? AND name = ?", ownerID, name).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CompleteChallenge(ctx context.Context, id int64, completedAt time.Time) (entities.Challenge, error) {
	completedAt = completedAt.UTC()
	result := r.db.WithContext(ctx).
		Model(&challengeModel{}).
		Where("id = ?", id).
		Update("completed_at", completedAt)
	if result.Error != nil {
		return entities.Challenge{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Challenge{}, domainerrors.ErrChallengeNotFound
	}
	return r.GetChallenge(ctx, id)
}

// DeleteChallengeCascade removes the challenge with its daily logs and
// shared grants in a single transaction so a failed delete never leaves
// orphaned children.
func (r *Repository) DeleteChallengeCascade(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("challenge_id = ?", id).Delete(&dailyLogModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("challenge_id = ?", id).Delete(&sharedGrantModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&challengeModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrChallengeNotFound
		}
		return nil
	})
}

func (r *Repository) CreateDailyLog(ctx context.Context, log entities.DailyLog) (entities.DailyLog, error) {
	row := dailyLogModel{
		ChallengeID: log.ChallengeID,
		LogDate:     log.LogDate.UTC(),
		Completed:   log.Completed,
		CreatedAt:   log.CreatedAt.UTC(),
		UpdatedAt:   log.UpdatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.DailyLog{}, domainerrors.ErrLogDateTaken
		}
		return entities.DailyLog{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetDailyLog(ctx context.Context, id int64) (entities.DailyLog, error) {
	var row dailyLogModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.DailyLog{}, domainerrors.ErrLogNotFound
		}
		return entities.DailyLog{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListLogsByChallenge(ctx context.Context, challengeID int64) ([]entities.DailyLog, error) {
	var rows []dailyLogModel
	err := r.db.WithContext(ctx).
		Where("challenge_id = ?", challengeID).
		Order("log_date ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.DailyLog, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateDailyLogCompleted(ctx context.Context, id int64, completed bool, updatedAt time.Time) (entities.DailyLog, error) {
	result := r.db.WithContext(ctx).
		Model(&dailyLogModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"completed":  completed,
			"updated_at": updatedAt.UTC(),
		})
	if result.Error != nil {
		return entities.DailyLog{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.DailyLog{}, domainerrors.ErrLogNotFound
	}
	return r.GetDailyLog(ctx, id)
}

func (r *Repository) DeleteDailyLog(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&dailyLogModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrLogNotFound
	}
	return nil
}

func (r *Repository) CreateGrant(ctx context.Context, grant entities.SharedGrant) (entities.SharedGrant, error) {
	row := sharedGrantModel{
		ChallengeID: grant.ChallengeID,
		GranteeID:   grant.GranteeID,
		SharedAt:    grant.SharedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.SharedGrant{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetGrant(ctx context.Context, id int64) (entities.SharedGrant, error) {
	var row sharedGrantModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.SharedGrant{}, domainerrors.ErrGrantNotFound
		}
		return entities.SharedGrant{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListGrantsForGrantee(ctx context.Context, granteeID int64) ([]entities.SharedGrant, error) {
	var rows []sharedGrantModel
	err := r.db.WithContext(ctx).
		Where("shared_user_id = ?", granteeID).
		Order("shared_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.SharedGrant, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeleteGrant(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&sharedGrantModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrGrantNotFound
	}
	return nil
}

// SystemClock satisfies the module clock port with wall time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
