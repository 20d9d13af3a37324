package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/taskcrew/backend/internal/apperrors"
	"github.com/taskcrew/backend/internal/models"
	"go.uber.org/zap"
)

// mysqlDuplicateEntry is the driver error number for a unique key violation
const mysqlDuplicateEntry = 1062

// userRepository provides data access to the users table
type userRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, logger *zap.Logger) *userRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new user into the database.
// A unique key violation on email is reported as apperrors.ErrEmailTaken so
// a registration race still surfaces as a conflict, not an internal error.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, access_level)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.PasswordHash, user.AccessLevel)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return apperrors.ErrEmailTaken
		}
		r.logger.Error("failed to create user", zap.Error(err))
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByEmail retrieves a user by exact email match
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, access_level, created_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.AccessLevel,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("failed to get user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, access_level, created_at
		FROM users
		WHERE id = ?
		LIMIT 1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.AccessLevel,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("failed to get user by ID", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// ExistsByEmail checks if a user exists with the given email
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM users WHERE email = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		r.logger.Error("failed to check email existence", zap.Error(err))
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// List retrieves all users ordered by email
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, email, password_hash, access_level, created_at
		FROM users
		ORDER BY email
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// ListByAccessLevel retrieves all users with the given access level ordered by email
func (r *userRepository) ListByAccessLevel(ctx context.Context, level models.AccessLevel) ([]models.User, error) {
	query := `
		SELECT id, email, password_hash, access_level, created_at
		FROM users
		WHERE access_level = ?
		ORDER BY email
	`

	rows, err := r.db.QueryContext(ctx, query, level)
	if err != nil {
		r.logger.Error("failed to list users by access level", zap.Error(err), zap.String("access_level", string(level)))
		return nil, fmt.Errorf("failed to list users by access level: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// scanUsers reads user rows into a slice
func scanUsers(rows *sql.Rows) ([]models.User, error) {
	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.PasswordHash,
			&user.AccessLevel,
			&user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return users, nil
}
