package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/delverhq/delver/ent"
	"github.com/delverhq/delver/ent/searchhistory"
	"github.com/delverhq/delver/ent/user"
	"github.com/delverhq/delver/ent/usersetting"
	"github.com/delverhq/delver/pkg/models"
)

const minPasswordLength = 8

// UserService manages accounts, per-user settings, and search history.
type UserService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(client *ent.Client, logger *slog.Logger) *UserService {
	return &UserService{
		client: client,
		logger: logger.With("component", "services"),
	}
}

// Register creates a new account. Emails are stored lowercased so two
// spellings of the same address cannot both register.
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserView, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, NewValidationError("email", "must be a valid email address")
	}
	if len(req.Password) < minPasswordLength {
		return nil, NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetPasswordHash(string(hash)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("email %s: %w", email, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", created.ID)
	return userView(created), nil
}

// Authenticate verifies credentials and returns the account. A wrong email
// and a wrong password both return ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, req *models.LoginRequest) (*models.UserView, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := s.client.User.Query().
		Where(user.EmailEQ(email)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Burn a hash comparison anyway to keep timing flat.
			_ = bcrypt.CompareHashAndPassword(
				[]byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B4Vn3zJZzGKzaB3mzUKqCiAQJdZm"),
				[]byte(req.Password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return userView(account), nil
}

// Get returns an account by id.
func (s *UserService) Get(ctx context.Context, userID string) (*models.UserView, error) {
	account, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return userView(account), nil
}

// Settings returns the user's preferences, empty when never set.
func (s *UserService) Settings(ctx context.Context, userID string) (map[string]any, error) {
	settings, err := s.client.UserSetting.Query().
		Where(usersetting.UserIDEQ(userID)).
		First(ctx)
	if ent.IsNotFound(err) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.Preferences == nil {
		return map[string]any{}, nil
	}
	return settings.Preferences, nil
}

// UpdateSettings merges the given preferences into the user's settings,
// creating the row on first write. Keys set to nil are removed.
func (s *UserService) UpdateSettings(ctx context.Context, userID string, prefs map[string]any) (map[string]any, error) {
	existing, err := s.client.UserSetting.Query().
		Where(usersetting.UserIDEQ(userID)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	merged := map[string]any{}
	if existing != nil && existing.Preferences != nil {
		for k, v := range existing.Preferences {
			merged[k] = v
		}
	}
	for k, v := range prefs {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}

	if existing == nil {
		_, err = s.client.UserSetting.Create().
			SetID(uuid.New().String()).
			SetUserID(userID).
			SetPreferences(merged).
			Save(ctx)
	} else {
		_, err = s.client.UserSetting.UpdateOneID(existing.ID).
			SetPreferences(merged).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return merged, nil
}

// RecordSearch logs one passthrough search for the user's history.
func (s *UserService) RecordSearch(ctx context.Context, userID, query string, resultCount int) error {
	_, err := s.client.SearchHistory.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetQuery(query).
		SetResultCount(resultCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

// SearchHistory returns the user's recent passthrough searches, newest first.
func (s *UserService) SearchHistory(ctx context.Context, userID string, limit int) ([]*models.SearchHistoryView, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := s.client.SearchHistory.Query().
		Where(searchhistory.UserIDEQ(userID)).
		Order(ent.Desc(searchhistory.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list search history: %w", err)
	}

	views := make([]*models.SearchHistoryView, len(rows))
	for i, row := range rows {
		views[i] = &models.SearchHistoryView{
			ID:          row.ID,
			Query:       row.Query,
			ResultCount: row.ResultCount,
			CreatedAt:   row.CreatedAt,
		}
	}
	return views, nil
}

func userView(u *ent.User) *models.UserView {
	return &models.UserView{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
