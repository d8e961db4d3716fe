package server

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/auth"
	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/chat"
	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/content"
	"github.com/LiyemaSwartooi/MyPortfolio-sub001/internal/uploads"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const actorContextKey = "portfolio_actor"

var (
	errMissingTokenManager   = errors.New("token manager dependency required")
	errMissingContentService = errors.New("content service dependency required")
)

// GoogleVerifier validates Google ID tokens.
type GoogleVerifier interface {
	Verify(ctx context.Context, token string) (auth.GoogleClaims, error)
}

// CodeExchanger trades an OAuth authorization code for an ID token.
type CodeExchanger interface {
	Exchange(ctx context.Context, code string) (string, error)
}

// SessionTokenManager issues and validates the session JWT.
type SessionTokenManager interface {
	IssueSessionToken(ctx context.Context, claims auth.GoogleClaims) (string, int64, error)
	ValidateToken(token string) (auth.Actor, error)
}

// Uploader stores validated image uploads.
type Uploader interface {
	Store(actorID string, header *multipart.FileHeader) (uploads.StoredFile, error)
}

// ChatBackend answers chat widget messages.
type ChatBackend interface {
	Configured() bool
	Reply(ctx context.Context, message string, history []chat.Message) (string, error)
}

// Dependencies wires the router to its collaborators.
type Dependencies struct {
	GoogleVerifier GoogleVerifier
	CodeExchanger  CodeExchanger
	TokenManager   SessionTokenManager
	ContentService *content.Service
	Uploads        Uploader
	Chat           ChatBackend
	Logger         *zap.Logger

	SessionCookieName string
	// PostLoginRedirect is where the OAuth callback sends the browser; it
	// must not carry the code or any token.
	PostLoginRedirect string
	UploadsDir        string
	AllowedOrigins    []string
}

// NewHTTPHandler builds the gin router for the portfolio API.
func NewHTTPHandler(deps Dependencies) (http.Handler, error) {
	if deps.TokenManager == nil {
		return nil, errMissingTokenManager
	}
	if deps.ContentService == nil {
		return nil, errMissingContentService
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cookieName := deps.SessionCookieName
	if cookieName == "" {
		cookieName = "portfolio_session"
	}
	redirect := deps.PostLoginRedirect
	if redirect == "" {
		redirect = "/"
	}
	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: !containsWildcard(origins),
		MaxAge:           12 * time.Hour,
	}))

	handler := &httpHandler{
		verifier:          deps.GoogleVerifier,
		exchanger:         deps.CodeExchanger,
		tokens:            deps.TokenManager,
		contentService:    deps.ContentService,
		uploads:           deps.Uploads,
		chat:              deps.Chat,
		logger:            logger,
		cookieName:        cookieName,
		postLoginRedirect: redirect,
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if deps.UploadsDir != "" {
		router.Static("/uploads", deps.UploadsDir)
	}

	api := router.Group("/api")
	api.POST("/auth/google", handler.handleGoogleSignIn)
	api.GET("/auth/callback", handler.handleOAuthCallback)
	api.POST("/auth/signout", handler.handleSignOut)
	api.GET("/auth/session", handler.authorizeRequest, handler.handleSession)

	protected := router.Group("/api")
	protected.Use(handler.authorizeRequest)

	// Content resources: public reads, authenticated writes.
	service := deps.ContentService
	handler.registerResource(api, protected, "/about/stats", service.AboutStats(), aboutStatRules)
	handler.registerResource(api, protected, "/about/traits", service.PersonalityTraits(), personalityTraitRules)
	handler.registerResource(api, protected, "/achievements", service.Achievements(), achievementRules)
	handler.registerResource(api, protected, "/recognitions", service.Recognitions(), recognitionRules)
	handler.registerResource(api, protected, "/certifications", service.Certifications(), certificationRules)
	handler.registerResource(api, protected, "/certifications/skills", service.CertificationSkills(), certificationSkillRules)
	handler.registerResource(api, protected, "/contact-info", service.ContactInfos(), contactInfoRules)
	handler.registerResource(api, protected, "/social-links", service.SocialLinks(), socialLinkRules)
	handler.registerResource(api, protected, "/education", service.Educations(), educationRules)
	handler.registerResource(api, protected, "/education/achievements", service.EducationAchievements(), educationAchievementRules)
	handler.registerResource(api, protected, "/projects", service.Projects(), projectRules)
	handler.registerResource(api, protected, "/projects/technologies", service.ProjectTechnologies(), projectTechnologyRules)
	handler.registerResource(api, protected, "/projects/features", service.ProjectFeatures(), projectFeatureRules)
	handler.registerResource(api, protected, "/resumes", service.ResumeVersions(), resumeVersionRules)
	handler.registerResource(api, protected, "/skills/categories", service.SkillCategories(), skillCategoryRules)
	handler.registerResource(api, protected, "/skills", service.Skills(), skillRules)
	handler.registerResource(api, protected, "/testimonials", service.Testimonials(), testimonialRules)

	// Singleton profile and page aggregates.
	api.GET("/profile", handler.handleGetProfile)
	api.GET("/about", handler.handleAboutPage)
	protected.POST("/profile", handler.handleCreateProfile)
	protected.PATCH("/profile", handler.handleUpdateProfile)

	// Public contact form; reading submissions requires the owner.
	api.POST("/contact", handler.handleCreateContactMessage)
	protected.GET("/contact", handler.handleListContactMessages)

	protected.POST("/uploads", handler.handleUpload)

	api.POST("/chat", handler.handleChat)

	return router, nil
}

type httpHandler struct {
	verifier          GoogleVerifier
	exchanger         CodeExchanger
	tokens            SessionTokenManager
	contentService    *content.Service
	uploads           Uploader
	chat              ChatBackend
	logger            *zap.Logger
	cookieName        string
	postLoginRedirect string
}

// authorizeRequest accepts the session JWT from either the Authorization
// header or the session cookie and attaches the actor to the request.
func (h *httpHandler) authorizeRequest(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		if cookie, err := c.Cookie(h.cookieName); err == nil {
			token = cookie
		}
	}
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	actor, err := h.tokens.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			h.logger.Info("token validation failed", zap.Error(err))
		} else {
			h.logger.Warn("token validation failed", zap.Error(err))
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.Set(actorContextKey, actor)
	c.Next()
}

func (h *httpHandler) currentActor(c *gin.Context) (auth.Actor, bool) {
	value, exists := c.Get(actorContextKey)
	if !exists {
		return auth.Actor{}, false
	}
	actor, ok := value.(auth.Actor)
	return actor, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
