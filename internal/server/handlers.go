package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/auth"
	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/chat"
	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/content"
	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/uploads"
	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/validate"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type googleSignInPayload struct {
	IDToken string `json:"id_token"`
}

type sessionPayload struct {
	AccessToken string     `json:"access_token"`
	ExpiresIn   int64      `json:"expires_in"`
	TokenType   string     `json:"token_type"`
	Actor       auth.Actor `json:"actor"`
}

// handleGoogleSignIn is the browser sign-in path: the client obtains a
// Google ID token and trades it for a session.
func (h *httpHandler) handleGoogleSignIn(c *gin.Context) {
	if h.verifier == nil {
		respondError(c, http.StatusServiceUnavailable, "Sign-in is not configured")
		return
	}

	var request googleSignInPayload
	if err := c.ShouldBindJSON(&request); err != nil || strings.TrimSpace(request.IDToken) == "" {
		respondError(c, http.StatusBadRequest, "ID token is required")
		return
	}

	claims, err := h.verifier.Verify(c.Request.Context(), request.IDToken)
	if err != nil {
		h.logger.Warn("google token verification failed", zap.Error(err))
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	h.issueSession(c, claims, false)
}

// handleOAuthCallback exchanges the authorization code server-side and
// redirects to a clean URL, so the code never reaches browser history,
// Referer headers or logs.
func (h *httpHandler) handleOAuthCallback(c *gin.Context) {
	if h.exchanger == nil || h.verifier == nil {
		respondError(c, http.StatusServiceUnavailable, "Sign-in is not configured")
		return
	}

	code := c.Query("code")
	if strings.TrimSpace(code) == "" {
		respondError(c, http.StatusBadRequest, "Authorization code is required")
		return
	}

	idToken, err := h.exchanger.Exchange(c.Request.Context(), code)
	if err != nil {
		h.logger.Warn("authorization code exchange failed", zap.Error(err))
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	claims, err := h.verifier.Verify(c.Request.Context(), idToken)
	if err != nil {
		h.logger.Warn("google token verification failed", zap.Error(err))
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	h.issueSession(c, claims, true)
}

func (h *httpHandler) issueSession(c *gin.Context, claims auth.GoogleClaims, redirect bool) {
	token, expiresIn, err := h.tokens.IssueSessionToken(c.Request.Context(), claims)
	if errors.Is(err, auth.ErrIdentityNotAllowed) {
		h.logger.Info("sign-in rejected", zap.String("subject", claims.Subject))
		respondError(c, http.StatusForbidden, "This account is not allowed to sign in")
		return
	}
	if err != nil {
		h.logger.Error("failed to issue session token", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, int(expiresIn), "/", "", false, true)

	if redirect {
		c.Redirect(http.StatusFound, h.postLoginRedirect)
		return
	}

	respondData(c, http.StatusOK, sessionPayload{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		TokenType:   "Bearer",
		Actor: auth.Actor{
			Subject: claims.Subject,
			Email:   claims.Email,
			Name:    claims.Name,
			Picture: claims.Picture,
		},
	})
}

func (h *httpHandler) handleSession(c *gin.Context) {
	actor, ok := h.currentActor(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	respondData(c, http.StatusOK, actor)
}

func (h *httpHandler) handleSignOut(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// handleGetProfile returns the singleton profile, or null before bootstrap.
func (h *httpHandler) handleGetProfile(c *gin.Context) {
	profile, err := h.contentService.GetProfile(c.Request.Context())
	if errors.Is(err, content.ErrNotFound) {
		respondData(c, http.StatusOK, nil)
		return
	}
	if err != nil {
		h.respondServiceError(c, "profile", err)
		return
	}
	respondData(c, http.StatusOK, profile)
}

func (h *httpHandler) handleCreateProfile(c *gin.Context) {
	body, ok := bindBodyMap(c)
	if !ok {
		return
	}
	columns, message := buildColumns(body, profileRules, true)
	if message != "" {
		respondError(c, http.StatusBadRequest, message)
		return
	}

	profile, err := h.contentService.CreateProfile(c.Request.Context(), columns)
	if err != nil {
		h.respondServiceError(c, "profile", err)
		return
	}
	respondData(c, http.StatusCreated, profile)
}

func (h *httpHandler) handleUpdateProfile(c *gin.Context) {
	body, ok := bindBodyMap(c)
	if !ok {
		return
	}
	id, message := extractID(body)
	if message != "" {
		respondError(c, http.StatusBadRequest, message)
		return
	}
	columns, message := buildColumns(body, profileRules, false)
	if message != "" {
		respondError(c, http.StatusBadRequest, message)
		return
	}

	profile, err := h.contentService.UpdateProfile(c.Request.Context(), id, columns)
	if err != nil {
		h.respondServiceError(c, "profile", err)
		return
	}
	respondData(c, http.StatusOK, profile)
}

func (h *httpHandler) handleAboutPage(c *gin.Context) {
	page, err := h.contentService.AboutPageData(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "about_page", err)
		return
	}
	respondData(c, http.StatusOK, page)
}

type contactMessagePayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// handleCreateContactMessage is the one public write: the contact form.
func (h *httpHandler) handleCreateContactMessage(c *gin.Context) {
	var request contactMessagePayload
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := strings.TrimSpace(request.Name)
	email := strings.TrimSpace(request.Email)
	subject := strings.TrimSpace(request.Subject)
	message := strings.TrimSpace(request.Message)
	if name == "" || email == "" || subject == "" || message == "" {
		respondError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	if err := validate.Email(email); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	for _, field := range []struct {
		value, label string
		maxLength    int
	}{
		{name, "Name", 200},
		{subject, "Subject", 300},
		{message, "Message", 5000},
	} {
		if err := validate.Text(field.value, field.label, validate.TextRules{Required: true, MaxLength: field.maxLength}); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	stored, err := h.contentService.CreateContactMessage(c.Request.Context(), content.ContactMessageInput{
		Name:    validate.SanitizeText(name),
		Email:   email,
		Subject: validate.SanitizeText(subject),
		Message: validate.SanitizeText(message),
	})
	if err != nil {
		h.respondServiceError(c, "contact_messages", err)
		return
	}
	respondData(c, http.StatusCreated, stored)
}

func (h *httpHandler) handleListContactMessages(c *gin.Context) {
	messages, err := h.contentService.ListContactMessages(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "contact_messages", err)
		return
	}
	respondData(c, http.StatusOK, messages)
}

func (h *httpHandler) handleUpload(c *gin.Context) {
	if h.uploads == nil {
		respondError(c, http.StatusServiceUnavailable, "Uploads are not configured")
		return
	}

	actor, _ := h.currentActor(c)

	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "File is required")
		return
	}

	stored, err := h.uploads.Store(actor.Subject, header)
	if errors.Is(err, uploads.ErrFileTooLarge) || errors.Is(err, uploads.ErrInvalidFileType) {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("upload failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(c, http.StatusCreated, stored)
}

type chatPayload struct {
	Message string         `json:"message"`
	History []chat.Message `json:"history"`
}

func (h *httpHandler) handleChat(c *gin.Context) {
	if h.chat == nil || !h.chat.Configured() {
		respondError(c, http.StatusServiceUnavailable, "Chat is not configured")
		return
	}

	var request chatPayload
	if err := c.ShouldBindJSON(&request); err != nil || strings.TrimSpace(request.Message) == "" {
		respondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := h.chat.Reply(c.Request.Context(), strings.TrimSpace(request.Message), request.History)
	if err != nil {
		h.logger.Error("chat reply failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(c, http.StatusOK, gin.H{"reply": reply})
}
