package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/auth"
	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/chat"
	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/content"
	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/uploads"
	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const ownerToken = "owner-session-token"

var testActor = auth.Actor{
	Subject: "google-subject-1",
	Email:   "owner@example.com",
	Name:    "Site Owner",
}

type stubTokenManager struct {
	validateErr error
}

func (s stubTokenManager) IssueSessionToken(context.Context, auth.GoogleClaims) (string, int64, error) {
	return ownerToken, 3600, nil
}

func (s stubTokenManager) ValidateToken(token string) (auth.Actor, error) {
	if s.validateErr != nil {
		return auth.Actor{}, s.validateErr
	}
	if token != ownerToken {
		return auth.Actor{}, errors.New("unknown token")
	}
	return testActor, nil
}

type stubUploader struct {
	stored    uploads.StoredFile
	returnErr error
}

func (s stubUploader) Store(string, *multipart.FileHeader) (uploads.StoredFile, error) {
	if s.returnErr != nil {
		return uploads.StoredFile{}, s.returnErr
	}
	return s.stored, nil
}

type stubChat struct {
	configured bool
	reply      string
	returnErr  error
}

func (s stubChat) Configured() bool {
	return s.configured
}

func (s stubChat) Reply(context.Context, string, []chat.Message) (string, error) {
	if s.returnErr != nil {
		return "", s.returnErr
	}
	return s.reply, nil
}

func newTestContentService(t *testing.T) *content.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:server_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if err := db.AutoMigrate(content.Models()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	service, err := content.NewService(content.ServiceConfig{
		Database:   db,
		IDProvider: content.NewUUIDProvider(),
	})
	if err != nil {
		t.Fatalf("failed to construct content service: %v", err)
	}
	return service
}

func newTestRouter(t *testing.T, mutate func(*Dependencies)) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deps := Dependencies{
		TokenManager:   stubTokenManager{},
		ContentService: newTestContentService(t),
		Logger:         zap.NewNop(),
	}
	if mutate != nil {
		mutate(&deps)
	}

	handler, err := NewHTTPHandler(deps)
	if err != nil {
		t.Fatalf("failed to build handler: %v", err)
	}
	return handler
}

type apiResponse struct {
	status int
	body   map[string]json.RawMessage
	raw    []byte
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, payload any) apiResponse {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to encode payload: %v", err)
		}
		body = bytes.NewBuffer(encoded)
	} else {
		body = bytes.NewBuffer(nil)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	response := apiResponse{status: recorder.Code, raw: recorder.Body.Bytes()}
	if len(response.raw) > 0 {
		if err := json.Unmarshal(response.raw, &response.body); err != nil {
			t.Fatalf("failed to decode response %q: %v", response.raw, err)
		}
	}
	return response
}

func (r apiResponse) errorMessage(t *testing.T) string {
	t.Helper()
	raw, ok := r.body["error"]
	if !ok {
		t.Fatalf("expected error field in response %s", r.raw)
	}
	var message string
	if err := json.Unmarshal(raw, &message); err != nil {
		t.Fatalf("failed to decode error message: %v", err)
	}
	return message
}

func (r apiResponse) data(t *testing.T, target any) {
	t.Helper()
	raw, ok := r.body["data"]
	if !ok {
		t.Fatalf("expected data field in response %s", r.raw)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
}

func (r apiResponse) successFlag(t *testing.T) bool {
	t.Helper()
	raw, ok := r.body["success"]
	if !ok {
		return false
	}
	var success bool
	if err := json.Unmarshal(raw, &success); err != nil {
		t.Fatalf("failed to decode success flag: %v", err)
	}
	return success
}

func createResource(t *testing.T, handler http.Handler, path string, payload map[string]any) map[string]any {
	t.Helper()

	response := doJSON(t, handler, http.MethodPost, path, ownerToken, payload)
	if response.status != http.StatusCreated {
		t.Fatalf("failed to create %s: status %d body %s", path, response.status, response.raw)
	}
	var row map[string]any
	response.data(t, &row)
	return row
}
