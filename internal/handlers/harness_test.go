package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// handlerSuite carries the router and token plumbing shared by the handler suites.
type handlerSuite struct {
	suite.Suite
	router *gin.Engine
	v1     *gin.RouterGroup
}

func (suite *handlerSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(middleware.SetupValidator())
}

// resetRouter builds a fresh router whose /api/v1 group runs the real AuthMiddleware.
func (suite *handlerSuite) resetRouter() {
	suite.router = gin.New()
	suite.v1 = suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret))
}

// generateTestToken creates a signed JWT carrying userID in the "id" claim.
func (suite *handlerSuite) generateTestToken(userID string) string {
	claims := jwt.MapClaims{
		"id":  userID,
		"iss": "bookkeeping-test",
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// do serves a request as userID. An empty userID sends no Authorization header.
func (suite *handlerSuite) do(method, url, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// testEnvelope mirrors dto.Envelope with a raw data payload so tests can decode it into the expected type.
type testEnvelope struct {
	Data       json.RawMessage `json:"data"`
	Pagination json.RawMessage `json:"pagination"`
	Error      *dto.ErrorBody  `json:"error"`
}

func (suite *handlerSuite) decode(w *httptest.ResponseRecorder) testEnvelope {
	var env testEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env), "Failed to unmarshal response body")
	return env
}

func (suite *handlerSuite) fieldNames(env testEnvelope) []string {
	suite.Require().NotNil(env.Error)
	names := make([]string, 0, len(env.Error.Fields))
	for _, f := range env.Error.Fields {
		names = append(names, f.Field)
	}
	return names
}
