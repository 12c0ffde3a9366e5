package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Amitgupta170804/BlogEase/internal/auth"
)

func whoAmI(c *fiber.Ctx) error {
	uid, err := UIDObjectID(c)
	if err != nil {
		return err
	}
	return c.SendString(uid.Hex())
}

func get(t *testing.T, app *fiber.App, header, value string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", "/", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestProtectedChain(t *testing.T) {
	signer := auth.NewSigner("s3cret")
	app := fiber.New()
	app.Get("/", append(Protected(signer), whoAmI)...)

	uid := bson.NewObjectID()
	token, err := signer.Sign(uid)
	require.NoError(t, err)

	status, body := get(t, app, "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, msgNoToken, body)

	status, body = get(t, app, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, uid.Hex(), body)

	status, body = get(t, app, "Authorization", "bearer "+token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, uid.Hex(), body)

	status, body = get(t, app, "x-auth-token", token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, uid.Hex(), body)

	status, body = get(t, app, "Authorization", "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, msgInvalidToken, body)
}

func TestExpiredTokenRejected(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	old, err := auth.NewSigner("s3cret").WithClock(func() time.Time { return issued }).Sign(bson.NewObjectID())
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/", append(Protected(auth.NewSigner("s3cret")), whoAmI)...)

	status, body := get(t, app, "Authorization", "Bearer "+old)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, msgInvalidToken, body)
}

func TestJWTUidOnlyPassesAnonymousThrough(t *testing.T) {
	app := fiber.New()
	app.Get("/", JWTUidOnly(auth.NewSigner("s3cret")), func(c *fiber.Ctx) error {
		_, err := UIDObjectID(c)
		if err != nil {
			return c.SendString("anonymous")
		}
		return c.SendString("user")
	})

	status, body := get(t, app, "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "anonymous", body)
}

func TestUIDObjectIDRejectsBadLocal(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals(localUserID, "zzz")
		return c.Next()
	}, whoAmI)

	status, body := get(t, app, "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, msgInvalidToken, body)
}

func TestDeadline(t *testing.T) {
	app := fiber.New()
	app.Get("/", Deadline(time.Minute), func(c *fiber.Ctx) error {
		dl, ok := c.UserContext().Deadline()
		if !ok || time.Until(dl) > time.Minute {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString("bounded")
	})

	status, body := get(t, app, "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "bounded", body)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestLogger(zerolog.New(&buf)))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	_, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), `"status":200`)

	buf.Reset()
	_, err = app.Test(httptest.NewRequest("GET", "/missing", nil), -1)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"path":"/missing"`)
}
