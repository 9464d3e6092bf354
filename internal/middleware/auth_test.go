package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"go-gin-event-commerce/config"
	"go-gin-event-commerce/internal/middleware"
	"go-gin-event-commerce/internal/model"
	apperrors "go-gin-event-commerce/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAuthConfig = &config.AuthConfig{
	JWTSecret:     "test-secret",
	Issuer:        "event-commerce-test",
	InternalToken: "internal-test-token",
}

func setupAuthTestRouter(auth *middleware.Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	whoami := func(c *gin.Context) {
		actor := middleware.ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID, "email": actor.Email})
	}
	router.GET("/private", auth.RequireActor(), whoami)
	router.GET("/public", auth.OptionalActor(), whoami)
	router.POST("/internal", middleware.RequireInternalToken(testAuthConfig.InternalToken), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func bearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthenticator_Parse(t *testing.T) {
	auth := middleware.NewAuthenticator(testAuthConfig)

	t.Run("Success", func(t *testing.T) {
		token, err := auth.IssueToken(model.Actor{UserID: 42, Email: "Alice@Example.com"}, time.Hour)
		require.NoError(t, err)

		actor, err := auth.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, model.Actor{UserID: 42, Email: "alice@example.com"}, actor)
	})

	t.Run("Failed - expired", func(t *testing.T) {
		token, err := auth.IssueToken(model.Actor{UserID: 42}, -time.Minute)
		require.NoError(t, err)

		_, err = auth.Parse(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})

	t.Run("Failed - wrong secret", func(t *testing.T) {
		other := middleware.NewAuthenticator(&config.AuthConfig{JWTSecret: "other", Issuer: testAuthConfig.Issuer})
		token, err := other.IssueToken(model.Actor{UserID: 42}, time.Hour)
		require.NoError(t, err)

		_, err = auth.Parse(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})

	t.Run("Failed - wrong issuer", func(t *testing.T) {
		other := middleware.NewAuthenticator(&config.AuthConfig{JWTSecret: testAuthConfig.JWTSecret, Issuer: "someone-else"})
		token, err := other.IssueToken(model.Actor{UserID: 42}, time.Hour)
		require.NoError(t, err)

		_, err = auth.Parse(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})

	t.Run("Failed - non numeric subject", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "alice",
				Issuer:    testAuthConfig.Issuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte(testAuthConfig.JWTSecret))
		require.NoError(t, err)

		_, err = auth.Parse(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})

	t.Run("Failed - unsigned token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, middleware.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   strconv.Itoa(42),
				Issuer:    testAuthConfig.Issuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = auth.Parse(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})
}

func TestAuthenticator_Middleware(t *testing.T) {
	auth := middleware.NewAuthenticator(testAuthConfig)
	router := setupAuthTestRouter(auth)
	token, err := auth.IssueToken(model.Actor{UserID: 7, Email: "bob@example.com"}, time.Hour)
	require.NoError(t, err)

	t.Run("Success - private route with token", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/private", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, bearer(req, token))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id": 7, "email": "bob@example.com"}`, w.Body.String())
	})

	t.Run("Failed - private route without token", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/private", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Failed - private route with garbage token", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/private", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, bearer(req, "not.a.jwt"))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Success - public route is anonymous without token", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/public", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id": 0, "email": ""}`, w.Body.String())
	})

	t.Run("Failed - public route with bad token", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/public", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, bearer(req, "bad"))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireInternalToken(t *testing.T) {
	router := setupAuthTestRouter(middleware.NewAuthenticator(testAuthConfig))

	t.Run("Success", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/internal", nil)
		req.Header.Set(middleware.InternalTokenHeader, testAuthConfig.InternalToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Failed - wrong token", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/internal", nil)
		req.Header.Set(middleware.InternalTokenHeader, "guess")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Failed - empty configured token never matches", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.POST("/internal", middleware.RequireInternalToken(""), func(c *gin.Context) { c.Status(http.StatusNoContent) })

		req, _ := http.NewRequest(http.MethodPost, "/internal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
