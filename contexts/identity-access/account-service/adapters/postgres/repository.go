package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dailytrack/contexts/identity-access/account-service/domain/entities"
	domainerrors "dailytrack/contexts/identity-access/account-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type userModel struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Username       string    `gorm:"column:username;size:50;uniqueIndex;not null"`
	Email          string    `gorm:"column:email;size:100;uniqueIndex;not null"`
	PasswordDigest string    `gorm:"column:password_hash;size:255;not null"`
	Active         bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
}

func (userModel) TableName() string { return "users" }

func (m userModel) toEntity() entities.User {
	return entities.User{
		ID:             m.ID,
		Username:       m.Username,
		Email:          m.Email,
		PasswordDigest: m.PasswordDigest,
		Active:         m.Active,
		CreatedAt:      m.CreatedAt,
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
	return r.db.AutoMigrate(&userModel{})
}

func (r *Repository) CreateUser(ctx context.Context, user entities.User) (entities.User, error) {
	row := userModel{
		Username:       user.Username,
		Email:          user.Email,
		PasswordDigest: user.PasswordDigest,
		Active:         user.Active,
		CreatedAt:      user.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.User{}, domainerrors.ErrUserConflict
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UsernameOrEmailTaken(ctx context.Context, username string, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetUserByID(ctx context.Context, id int64) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
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
