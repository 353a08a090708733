package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/pkg/models"
	testdb "github.com/delverhq/delver/test/database"
)

func TestUserService_RegisterAndAuthenticate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client, slog.Default())
	ctx := context.Background()

	view, err := svc.Register(ctx, &models.RegisterRequest{
		Email:    "Alice@Example.COM",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", view.Email, "emails are stored lowercased")
	assert.Equal(t, "user", view.Role)

	got, err := svc.Authenticate(ctx, &models.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, view.ID, got.ID)

	// Wrong password and unknown email are indistinguishable.
	_, err = svc.Authenticate(ctx, &models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Register_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client, slog.Default())
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{Email: "not-an-email", Password: "long enough"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.Register(ctx, &models.RegisterRequest{Email: "ok@example.com", Password: "short"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client, slog.Default())
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{Email: "a@example.com", Password: "long enough"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &models.RegisterRequest{Email: "A@example.com", Password: "long enough"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestUserService_Settings(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client, slog.Default())
	ctx := context.Background()

	view, err := svc.Register(ctx, &models.RegisterRequest{Email: "a@example.com", Password: "long enough"})
	require.NoError(t, err)

	prefs, err := svc.Settings(ctx, view.ID)
	require.NoError(t, err)
	assert.Empty(t, prefs)

	prefs, err = svc.UpdateSettings(ctx, view.ID, map[string]any{
		"default_model": "gpt-4o",
		"theme":         "dark",
	})
	require.NoError(t, err)
	assert.Equal(t, "dark", prefs["theme"])

	// Merge semantics: unrelated keys survive, nil removes.
	prefs, err = svc.UpdateSettings(ctx, view.ID, map[string]any{
		"theme":         nil,
		"report_length": "long",
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", prefs["default_model"])
	assert.Equal(t, "long", prefs["report_length"])
	assert.NotContains(t, prefs, "theme")

	prefs, err = svc.Settings(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", prefs["default_model"])
}

func TestUserService_SearchHistory(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client, slog.Default())
	ctx := context.Background()

	view, err := svc.Register(ctx, &models.RegisterRequest{Email: "a@example.com", Password: "long enough"})
	require.NoError(t, err)

	require.NoError(t, svc.RecordSearch(ctx, view.ID, "first query", 12))
	require.NoError(t, svc.RecordSearch(ctx, view.ID, "second query", 3))

	history, err := svc.SearchHistory(ctx, view.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "second query", history[0].Query, "newest first")
	assert.Equal(t, 3, history[0].ResultCount)

	history, err = svc.SearchHistory(ctx, view.ID, 1)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
