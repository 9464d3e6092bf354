package middleware

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-gin-event-commerce/config"
	"go-gin-event-commerce/internal/model"
	apperrors "go-gin-event-commerce/pkg/app_errors"
	"go-gin-event-commerce/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	actorKey            = "actor"
	InternalTokenHeader = "X-Internal-Token"
)

// Claims 是 access token 的內容，sub 為使用者 ID
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Authenticator struct {
	secret []byte
	issuer string
}

func NewAuthenticator(cfg *config.AuthConfig) *Authenticator {
	return &Authenticator{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
	}
}

// IssueToken signs an HS256 token for the actor.
func (a *Authenticator) IssueToken(actor model.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: actor.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(actor.UserID),
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *Authenticator) Parse(raw string) (model.Actor, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return model.Actor{}, fmt.Errorf("%w: %v", apperrors.ErrUnauthenticated, err)
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil || userID <= 0 {
		return model.Actor{}, fmt.Errorf("%w: invalid subject %q", apperrors.ErrUnauthenticated, claims.Subject)
	}
	return model.Actor{UserID: userID, Email: strings.ToLower(claims.Email)}, nil
}

// RequireActor rejects requests without a valid bearer token.
func (a *Authenticator) RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := a.fromHeader(c)
		if err != nil {
			logger.WithComponent("auth").Debug("Rejected request", zap.String("path", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// OptionalActor 有帶 token 時解析身分，沒帶時以匿名身分繼續
func (a *Authenticator) OptionalActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		actor, err := a.fromHeader(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

func (a *Authenticator) fromHeader(c *gin.Context) (model.Actor, error) {
	header := c.GetHeader("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return model.Actor{}, errors.New("missing bearer token")
	}
	return a.Parse(strings.TrimSpace(raw))
}

// ActorFrom returns the authenticated actor, or the zero actor for anonymous requests.
func ActorFrom(c *gin.Context) model.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(model.Actor); ok {
			return actor
		}
	}
	return model.Actor{}
}

// RequireInternalToken guards scheduler-facing endpoints with a shared token.
func RequireInternalToken(token string) gin.HandlerFunc {
	expected := []byte(token)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader(InternalTokenHeader))
		if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
			return
		}
		c.Next()
	}
}
