package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/auth"
	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/content"
	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/server"
	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	sessionSigningSecret = "integration-secret"
	sessionCookieName    = "portfolio_session"
	sessionIssuer        = "portfolio-auth"
	sessionAudience      = "portfolio-api"
	ownerSubject         = "google-subject-owner"
	ownerEmail           = "owner@example.com"
	jsonContentType      = "application/json"
)

func TestOwnerContentManagementFlow(testContext *testing.T) {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:integration_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		testContext.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		testContext.Fatalf("failed to access sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		testContext.Fatalf("failed to enable foreign keys: %v", err)
	}
	if err := db.AutoMigrate(content.Models()...); err != nil {
		testContext.Fatalf("failed to migrate: %v", err)
	}

	contentService, err := content.NewService(content.ServiceConfig{
		Database:   db,
		IDProvider: content.NewUUIDProvider(),
		Logger:     zap.NewNop(),
	})
	if err != nil {
		testContext.Fatalf("failed to build content service: %v", err)
	}

	tokenIssuer := auth.NewTokenIssuer(auth.TokenIssuerConfig{
		SigningSecret:     []byte(sessionSigningSecret),
		Issuer:            sessionIssuer,
		Audience:          sessionAudience,
		TokenTTL:          time.Hour,
		AllowedIdentities: []string{ownerEmail},
	})

	handler, err := server.NewHTTPHandler(server.Dependencies{
		TokenManager:      tokenIssuer,
		ContentService:    contentService,
		Logger:            zap.NewNop(),
		SessionCookieName: sessionCookieName,
	})
	if err != nil {
		testContext.Fatalf("failed to build handler: %v", err)
	}

	testServer := httptest.NewServer(handler)
	defer testServer.Close()

	// Anonymous reads work before any content exists.
	var emptyProjects []map[string]any
	doRequest(testContext, testServer, http.MethodGet, "/api/projects", nil, nil, http.StatusOK, &emptyProjects)
	if len(emptyProjects) != 0 {
		testContext.Fatalf("expected empty project list, got %d rows", len(emptyProjects))
	}

	// Anonymous writes are rejected.
	request, _ := http.NewRequest(http.MethodPost, testServer.URL+"/api/projects", bytes.NewReader([]byte(`{"title":"x"}`)))
	request.Header.Set("Content-Type", jsonContentType)
	response, err := http.DefaultClient.Do(request)
	if err != nil {
		testContext.Fatalf("request failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		testContext.Fatalf("expected 401 for anonymous write, got %d", response.StatusCode)
	}

	sessionToken, _, err := tokenIssuer.IssueSessionToken(context.Background(), auth.GoogleClaims{
		Subject:       ownerSubject,
		Email:         ownerEmail,
		EmailVerified: true,
		Name:          "Site Owner",
	})
	if err != nil {
		testContext.Fatalf("failed to issue session token: %v", err)
	}
	sessionCookie := &http.Cookie{Name: sessionCookieName, Value: sessionToken}

	// The session endpoint resolves the cookie back to the owner.
	var actor auth.Actor
	doRequest(testContext, testServer, http.MethodGet, "/api/auth/session", sessionCookie, nil, http.StatusOK, &actor)
	if actor.Subject != ownerSubject || actor.Email != ownerEmail {
		testContext.Fatalf("unexpected actor %+v", actor)
	}

	// Full create, read, update, delete round trip for a project.
	var createdProject map[string]any
	doRequest(testContext, testServer, http.MethodPost, "/api/projects", sessionCookie, map[string]any{
		"title":       "Portfolio backend",
		"description": "The API serving this site.",
		"status":      "active",
	}, http.StatusCreated, &createdProject)
	projectID, _ := createdProject["id"].(string)
	if projectID == "" {
		testContext.Fatalf("expected project id, got %+v", createdProject)
	}

	var technology map[string]any
	doRequest(testContext, testServer, http.MethodPost, "/api/projects/technologies", sessionCookie, map[string]any{
		"project_id": projectID,
		"technology": "Go",
	}, http.StatusCreated, &technology)

	var updatedProject map[string]any
	doRequest(testContext, testServer, http.MethodPatch, "/api/projects", sessionCookie, map[string]any{
		"id":     projectID,
		"status": "archived",
	}, http.StatusOK, &updatedProject)
	if updatedProject["status"] != "archived" {
		testContext.Fatalf("expected archived status, got %q", updatedProject["status"])
	}

	var projects []struct {
		ID           string           `json:"id"`
		Title        string           `json:"title"`
		Technologies []map[string]any `json:"technologies"`
	}
	doRequest(testContext, testServer, http.MethodGet, "/api/projects", nil, nil, http.StatusOK, &projects)
	if len(projects) != 1 || projects[0].ID != projectID {
		testContext.Fatalf("unexpected project list %+v", projects)
	}
	if len(projects[0].Technologies) != 1 || projects[0].Technologies[0]["technology"] != "Go" {
		testContext.Fatalf("expected preloaded technology, got %+v", projects[0].Technologies)
	}

	// The public contact form accepts a submission; reading it requires the owner.
	var storedMessage map[string]any
	doRequest(testContext, testServer, http.MethodPost, "/api/contact", nil, map[string]any{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Hello",
		"message": "Interested in your work.",
	}, http.StatusCreated, &storedMessage)

	var messages []map[string]any
	doRequest(testContext, testServer, http.MethodGet, "/api/contact", sessionCookie, nil, http.StatusOK, &messages)
	if len(messages) != 1 || messages[0]["email"] != "visitor@example.com" {
		testContext.Fatalf("unexpected contact messages %+v", messages)
	}

	// Deleting the project cascades to its technology rows.
	var deleteResult map[string]float64
	doRequest(testContext, testServer, http.MethodDelete, "/api/projects?id="+projectID, sessionCookie, nil, http.StatusOK, &deleteResult)
	if deleteResult["deleted"] != 1 {
		testContext.Fatalf("expected one deleted row, got %v", deleteResult["deleted"])
	}
	var technologies []map[string]any
	doRequest(testContext, testServer, http.MethodGet, "/api/projects/technologies", nil, nil, http.StatusOK, &technologies)
	if len(technologies) != 0 {
		testContext.Fatalf("expected cascade delete of technologies, got %+v", technologies)
	}
}

func TestSessionRejectedForIdentityOffAllowList(testContext *testing.T) {
	tokenIssuer := auth.NewTokenIssuer(auth.TokenIssuerConfig{
		SigningSecret:     []byte(sessionSigningSecret),
		Issuer:            sessionIssuer,
		Audience:          sessionAudience,
		AllowedIdentities: []string{ownerEmail},
	})

	_, _, err := tokenIssuer.IssueSessionToken(context.Background(), auth.GoogleClaims{
		Subject: "google-subject-stranger",
		Email:   "stranger@example.com",
	})
	if err == nil {
		testContext.Fatalf("expected issuance to fail for identity off the allow-list")
	}
}

func doRequest(testContext *testing.T, testServer *httptest.Server, method, path string, cookie *http.Cookie, payload any, expectedStatus int, target any) {
	testContext.Helper()

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			testContext.Fatalf("failed to encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request, err := http.NewRequest(method, testServer.URL+path, body)
	if err != nil {
		testContext.Fatalf("failed to build request: %v", err)
	}
	request.Header.Set("Content-Type", jsonContentType)
	if cookie != nil {
		request.AddCookie(cookie)
	}

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		testContext.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		testContext.Fatalf("failed to decode %s %s response: %v", method, path, err)
	}
	if response.StatusCode != expectedStatus {
		testContext.Fatalf("%s %s: expected status %d, got %d (%s)", method, path, expectedStatus, response.StatusCode, envelope.Error)
	}
	if target != nil {
		if err := json.Unmarshal(envelope.Data, target); err != nil {
			testContext.Fatalf("failed to decode %s %s data: %v", method, path, err)
		}
	}
}
