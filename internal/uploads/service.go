// Package uploads stores owner-submitted images on the local disk under a
// per-actor, timestamped, randomized path and hands back the public URL.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// MaxFileSize caps uploads at 5 MiB.
const MaxFileSize = 5 * 1024 * 1024

var (
	errMissingBaseDir    = errors.New("uploads: base directory is required")
	errMissingIDProvider = errors.New("uploads: id provider is required")

	// ErrFileTooLarge is returned for uploads above MaxFileSize. The message
	// is surfaced to the browser verbatim.
	ErrFileTooLarge = errors.New("File size too large. Maximum size is 5MB.")
	// ErrInvalidFileType is returned for uploads outside the image allow-list.
	ErrInvalidFileType = errors.New("Invalid file type. Allowed types: JPEG, PNG, GIF, WebP.")
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// IDProvider issues the random component of stored object names.
type IDProvider interface {
	NewID() (string, error)
}

// ServiceConfig bundles the dependencies for the upload store.
type ServiceConfig struct {
	// BaseDir is the directory objects are written under.
	BaseDir string
	// BaseURL prefixes returned public URLs, e.g. "https://example.com".
	BaseURL    string
	IDProvider IDProvider
	Clock      func() time.Time
	Logger     *zap.Logger
}

// Service validates and stores uploaded image files.
type Service struct {
	baseDir    string
	baseURL    string
	idProvider IDProvider
	clock      func() time.Time
	logger     *zap.Logger
}

// NewService validates the configuration and constructs the upload store.
func NewService(cfg ServiceConfig) (*Service, error) {
	if strings.TrimSpace(cfg.BaseDir) == "" {
		return nil, errMissingBaseDir
	}
	if cfg.IDProvider == nil {
		return nil, errMissingIDProvider
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		baseDir:    cfg.BaseDir,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		idProvider: cfg.IDProvider,
		clock:      clock,
		logger:     logger,
	}, nil
}

// StoredFile describes a persisted upload.
type StoredFile struct {
	URL  string `json:"url"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// Store validates the upload and writes it under
// <baseDir>/<actor>/<unix>-<random><ext>, returning the public URL. Nothing
// is written when validation fails.
func (s *Service) Store(actorID string, header *multipart.FileHeader) (StoredFile, error) {
	if header.Size > MaxFileSize {
		return StoredFile{}, ErrFileTooLarge
	}

	contentType := strings.ToLower(strings.TrimSpace(header.Header.Get("Content-Type")))
	ext, ok := allowedTypes[contentType]
	if !ok {
		return StoredFile{}, ErrInvalidFileType
	}

	random, err := s.idProvider.NewID()
	if err != nil {
		return StoredFile{}, err
	}

	actorDir := sanitizeSegment(actorID)
	fileName := fmt.Sprintf("%d-%s%s", s.clock().UTC().Unix(), random, ext)
	targetDir := filepath.Join(s.baseDir, actorDir)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return StoredFile{}, err
	}

	source, err := header.Open()
	if err != nil {
		return StoredFile{}, err
	}
	defer source.Close()

	targetPath := filepath.Join(targetDir, fileName)
	target, err := os.OpenFile(targetPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return StoredFile{}, err
	}
	defer target.Close()

	written, err := io.Copy(target, io.LimitReader(source, MaxFileSize+1))
	if err != nil {
		os.Remove(targetPath)
		return StoredFile{}, err
	}
	if written > MaxFileSize {
		// Declared size can lie; enforce the cap on actual bytes too.
		os.Remove(targetPath)
		return StoredFile{}, ErrFileTooLarge
	}

	s.logger.Info("upload stored",
		zap.String("actor", actorDir),
		zap.String("file", fileName),
		zap.Int64("size", written))

	return StoredFile{
		URL:  fmt.Sprintf("%s/uploads/%s/%s", s.baseURL, actorDir, fileName),
		Path: targetPath,
		Size: written,
	}, nil
}

// sanitizeSegment keeps actor-derived path components free of separators.
func sanitizeSegment(value string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, value)
	if cleaned == "" {
		return "anonymous"
	}
	return cleaned
}
