package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/restsystem/restaurant-api/internal/interfaces/http"
	pkgjwt "github.com/restsystem/restaurant-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Хэлперы
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = int64(42)
	testEmail     = "test@rest.ru"
	testName      = "Тестов Тест"
	testIssuer    = "restaurant-api-test"
	testExpHours  = 24
)

// buildTestApp собирает минимальное приложение: Authenticate + RequireRole
// и заглушка, отвечающая 200, если оба пропустили.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.Authenticate(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor выпускает токен с канонической ролью и сырым текстом должности.
func tokenFor(t *testing.T, canonicalRole, roleDisplay string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, testName,
		canonicalRole, roleDisplay, testIssuer, testExpHours)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func bodyOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAllowed(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenFor(t, "admin", "Администратор"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
}

func TestRequireRole_OneOfSeveralAllowed(t *testing.T) {
	app := buildTestApp("manager", "chef", "admin")
	resp := doRequest(t, app, tokenFor(t, "chef", "Повар"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_WaiterForbiddenOnInventory(t *testing.T) {
	// GET /inventory пускает manager, chef, head_chef, admin; официант — нет.
	app := buildTestApp("manager", "chef", "head_chef", "admin")
	resp := doRequest(t, app, tokenFor(t, "waiter", "Официант"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, bodyOf(t, resp), "Недостаточно прав")
}

func TestRequireRole_StaleRoleClaimOverriddenByRawText(t *testing.T) {
	// В токене подделан снимок роли admin, но сырой текст должности
	// остался "Официант" — решает текст, доступ закрыт.
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenFor(t, "admin", "Официант"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_PromotionInRawTextGrantsAccess(t *testing.T) {
	// Обратная ситуация: снимок waiter устарел, текст должности уже
	// менеджерский — доступ открыт.
	app := buildTestApp("manager")
	resp := doRequest(t, app, tokenFor(t, "waiter", "Менеджер зала"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Authenticate
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_NoHeader_Returns401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyOf(t, resp), "Требуется аутентификация")
}

func TestAuthenticate_MalformedHeader_Returns401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyOf(t, resp), "Требуется аутентификация")
}

func TestAuthenticate_GarbageToken_Returns401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyOf(t, resp), "Неверный токен")
}

func TestAuthenticate_ExpiredToken_Returns401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, testName,
		"admin", "Администратор", testIssuer, -1)
	require.NoError(t, err)

	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyOf(t, resp), "Неверный токен")
}

func TestAuthenticate_WrongSecret_Returns401(t *testing.T) {
	tok, err := pkgjwt.Generate("another-secret", testUserID, testEmail, testName,
		"admin", "Администратор", testIssuer, testExpHours)
	require.NoError(t, err)

	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticate_ExtractsClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.Authenticate(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":      apphttp.GetUserID(c),
			"email":        apphttp.GetEmail(c),
			"name":         apphttp.GetName(c),
			"role":         apphttp.GetRole(c),
			"role_display": apphttp.GetRoleDisplay(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, "manager", "Менеджер зала"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(testUserID), body["user_id"])
	assert.Equal(t, testEmail, body["email"])
	assert.Equal(t, testName, body["name"])
	assert.Equal(t, "manager", body["role"])
	assert.Equal(t, "Менеджер зала", body["role_display"])
}

// ──────────────────────────────────────────────────────────────────────────────
// pkg/jwt: round-trip выпуска и разбора
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, testName,
		"chef", "Шеф-повар", testIssuer, testExpHours)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testEmail, claims.Email)
	assert.Equal(t, testName, claims.Name)
	assert.Equal(t, "chef", claims.Role)
	assert.Equal(t, "Шеф-повар", claims.RoleDisplay)
}

func TestJWT_ExpiredToken_ReturnsError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, testName,
		"admin", "Администратор", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err)
}

func TestJWT_WrongSecret_ReturnsError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, testName,
		"admin", "Администратор", testIssuer, testExpHours)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("completely-different-secret", tok)
	assert.Error(t, err)
}
