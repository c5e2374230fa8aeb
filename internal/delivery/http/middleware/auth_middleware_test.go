package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"keygate/internal/domain/entity"
	mockUC "keygate/internal/mocks/usecase"
	"keygate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_SetsPrincipalOnContext(t *testing.T) {
	gateway := mockUC.NewMockGatewayUsecase(t)
	m := NewAuthMiddleware(gateway)

	c, _ := newTestContext(map[string]string{"Authorization": "Bearer access_token"})

	gateway.EXPECT().
		Authenticate(mock.Anything, &usecase.AuthenticateInput{BearerToken: "access_token"}).
		Return(&entity.Principal{UserID: 7, Role: entity.RoleAdmin}, nil)

	var nextCalled bool
	handler := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})

	require.NoError(t, handler(c))
	assert.True(t, nextCalled)
	assert.Equal(t, int64(7), c.Get(ContextKeyUserID))
	assert.Equal(t, entity.RoleAdmin, c.Get(ContextKeyRole))
}

func TestAuthMiddleware_Authenticate_LicenseHeaderForwarded(t *testing.T) {
	gateway := mockUC.NewMockGatewayUsecase(t)
	m := NewAuthMiddleware(gateway)

	c, _ := newTestContext(map[string]string{
		HeaderLicenseKey: "some.license",
		"Authorization":  "Bearer access_token",
	})

	gateway.EXPECT().
		Authenticate(mock.Anything, &usecase.AuthenticateInput{
			LicenseKey:  "some.license",
			BearerToken: "access_token",
		}).
		Return(&entity.Principal{UserID: 7, Role: entity.RoleUser}, nil)

	handler := m.Authenticate(func(c echo.Context) error { return nil })

	require.NoError(t, handler(c))
}

func TestAuthMiddleware_Authenticate_NonBearerSchemeYieldsEmptyToken(t *testing.T) {
	gateway := mockUC.NewMockGatewayUsecase(t)
	m := NewAuthMiddleware(gateway)

	c, _ := newTestContext(map[string]string{"Authorization": "Basic dXNlcjpwdw=="})

	gateway.EXPECT().
		Authenticate(mock.Anything, &usecase.AuthenticateInput{}).
		Return(nil, echo.ErrUnauthorized)

	handler := m.Authenticate(func(c echo.Context) error { return nil })

	require.Error(t, handler(c))
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	gateway := mockUC.NewMockGatewayUsecase(t)
	m := NewAuthMiddleware(gateway)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("matching role passes", func(t *testing.T) {
		c, rec := newTestContext(nil)
		c.Set(ContextKeyRole, entity.RoleAdmin)

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		c, rec := newTestContext(nil)
		c.Set(ContextKeyRole, entity.RoleUser)

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role is forbidden", func(t *testing.T) {
		c, rec := newTestContext(nil)

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
