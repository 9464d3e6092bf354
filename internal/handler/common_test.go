package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"go-gin-event-commerce/config"
	"go-gin-event-commerce/internal/middleware"
	"go-gin-event-commerce/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	InvalidJSON = `{"invalid": json}`

	testAuth = middleware.NewAuthenticator(&config.AuthConfig{
		JWTSecret: "handler-test-secret",
		Issuer:    "event-commerce-test",
	})
	alice = model.Actor{UserID: 1, Email: "alice@example.com"}
)

func newTestRouter() (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router, router.Group("/api/v1", testAuth.OptionalActor())
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withActor signs the request as the given actor.
func withActor(t *testing.T, req *http.Request, actor model.Actor) *http.Request {
	t.Helper()
	token, err := testAuth.IssueToken(actor, time.Hour)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}
