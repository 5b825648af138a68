package serverutils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ouderschapsplan-api/internal/auth"
	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/pkg/apperror"
	"ouderschapsplan-api/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/test", handler)
	return app
}

func decode(t *testing.T, app *fiber.App, req *http.Request) (int, BaseResponse[json.RawMessage]) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body BaseResponse[json.RawMessage]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestErrorHandlerMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"app error", apperror.Forbidden("Access denied"), 403, "Access denied"},
		{"wrapped app error", fmt.Errorf("loading: %w", apperror.NotFound("Dossier not found")), 404, "Dossier not found"},
		{"fiber error", fiber.NewError(fiber.StatusMethodNotAllowed, "nope"), 405, "nope"},
		{"gorm duplicate", gorm.ErrDuplicatedKey, 409, "Resource already exists"},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, 409, "Resource already exists"},
		{"internal with message", apperror.Internal("Database error", errors.New("conn reset")), 500, "Database error"},
		{"unknown", errors.New("boom: secret detail"), 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(func(ctx *fiber.Ctx) error { return tt.err })
			code, body := decode(t, app, httptest.NewRequest("GET", "/test", nil))
			assert.Equal(t, tt.wantCode, code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}

func TestSuccessEnvelope(t *testing.T) {
	app := newApp(func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusCreated).JSON(SuccessResponse(map[string]int{"id": 7}))
	})
	code, body := decode(t, app, httptest.NewRequest("GET", "/test", nil))
	assert.Equal(t, 201, code)
	assert.True(t, body.Success)
	assert.JSONEq(t, `{"id":7}`, string(body.Data))
	assert.Empty(t, body.Error)
}

type createRequest struct {
	RolId uint   `json:"rolId" validate:"required,gt=0"`
	Email string `json:"email" validate:"omitempty,email"`
}

type dossierParams struct {
	DossierId uint `params:"dossierId" validate:"required,gt=0"`
}

func TestValidateRequestJoinsMessages(t *testing.T) {
	err := ValidateRequest(createRequest{Email: "geen-email"})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, 400))
	assert.Equal(t, "rolId: is required; email: must be a valid email address", err.Error())

	assert.NoError(t, ValidateRequest(createRequest{RolId: 1}))
}

func TestParseParams(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/dossiers/:dossierId", func(ctx *fiber.Ctx) error {
		var p dossierParams
		if err := ParseParams(ctx, &p); err != nil {
			return err
		}
		return ctx.JSON(SuccessResponse(p.DossierId))
	})

	code, body := decode(t, app, httptest.NewRequest("GET", "/dossiers/12", nil))
	assert.Equal(t, 200, code)
	assert.Equal(t, "12", string(body.Data))

	code, body = decode(t, app, httptest.NewRequest("GET", "/dossiers/abc", nil))
	assert.Equal(t, 400, code)
	assert.False(t, body.Success)

	code, _ = decode(t, app, httptest.NewRequest("GET", "/dossiers/0", nil))
	assert.Equal(t, 400, code)
}

type fakeResolver struct {
	result auth.AuthResult
	got    auth.Credentials
}

func (f *fakeResolver) Resolve(ctx context.Context, creds auth.Credentials) auth.AuthResult {
	f.got = creds
	return f.result
}

func TestAuthMiddleware(t *testing.T) {
	newAuthApp := func(r CredentialResolver) *fiber.App {
		app := fiber.New()
		app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
		app.Get("/me", AuthMiddleware(r), func(ctx *fiber.Ctx) error {
			id, err := UserId(ctx)
			if err != nil {
				return err
			}
			return ctx.JSON(SuccessResponse(id))
		})
		return app
	}

	t.Run("authenticated", func(t *testing.T) {
		r := &fakeResolver{result: auth.AuthResult{Authenticated: true, User: &model.Gebruiker{Id: 42}}}
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer token")
		req.Header.Set("x-user-id", "42")

		code, body := decode(t, newAuthApp(r), req)
		assert.Equal(t, 200, code)
		assert.Equal(t, "42", string(body.Data))
		assert.Equal(t, "Bearer token", r.got.Authorization)
		assert.Equal(t, "42", r.got.LegacyUserId)
	})

	t.Run("rejected", func(t *testing.T) {
		r := &fakeResolver{result: auth.AuthResult{Error: auth.ReasonTokenExpired}}
		code, body := decode(t, newAuthApp(r), httptest.NewRequest("GET", "/me", nil))
		assert.Equal(t, 401, code)
		assert.Equal(t, "Token expired", body.Error)
	})

	t.Run("infrastructure failure", func(t *testing.T) {
		r := &fakeResolver{result: auth.AuthResult{Error: auth.ReasonValidationFailed, Err: errors.New("db down")}}
		code, body := decode(t, newAuthApp(r), httptest.NewRequest("GET", "/me", nil))
		assert.Equal(t, 500, code)
		assert.Equal(t, "Authentication failed", body.Error)
	})
}
