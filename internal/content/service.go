package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	errMissingDatabase   = errors.New("database handle is required")
	errMissingIDProvider = errors.New("id provider is required")
	noOpLogger           = zap.NewNop()

	// ErrNotFound indicates that a referenced row does not exist.
	ErrNotFound = errors.New("content: record not found")
	// ErrProfileExists indicates that the singleton profile row already exists.
	ErrProfileExists = errors.New("content: profile already exists")
)

// ServiceError carries an operation-scoped error code alongside its cause.
type ServiceError struct {
	code string
	err  error
}

func (e *ServiceError) Error() string {
	if e.err == nil {
		return e.code
	}
	return fmt.Sprintf("%s: %v", e.code, e.err)
}

func (e *ServiceError) Unwrap() error {
	return e.err
}

func (e *ServiceError) Code() string {
	return e.code
}

func newServiceError(operation, reason string, cause error) error {
	return &ServiceError{code: fmt.Sprintf("%s.%s", operation, reason), err: cause}
}

// IDProvider issues identifiers for newly created rows.
type IDProvider interface {
	NewID() (string, error)
}

// ServiceConfig bundles the dependencies for the content repository service.
type ServiceConfig struct {
	Database   *gorm.DB
	Clock      func() time.Time
	IDProvider IDProvider
	Logger     *zap.Logger
}

// Service performs every create/read/update/delete against the content
// tables. Handlers are expected to validate and sanitize input first; the
// service has no knowledge of sanitization.
type Service struct {
	db         *gorm.DB
	clock      func() time.Time
	idProvider IDProvider
	logger     *zap.Logger
}

// NewService validates the configuration and constructs the service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Database == nil {
		return nil, newServiceError("content.service.new", "missing_database", errMissingDatabase)
	}
	if cfg.IDProvider == nil {
		return nil, newServiceError("content.service.new", "missing_id_provider", errMissingIDProvider)
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = noOpLogger
	}

	return &Service{
		db:         cfg.Database,
		clock:      clock,
		idProvider: cfg.IDProvider,
		logger:     logger,
	}, nil
}

func (s *Service) logError(operation, reason string, err error, fields ...zap.Field) {
	attrs := []zap.Field{
		zap.String("operation", operation),
		zap.String("reason", reason),
	}
	if err != nil {
		attrs = append(attrs, zap.Error(err))
	}
	attrs = append(attrs, fields...)
	s.logger.Error("content service error", attrs...)
}

// listOrdered returns every row of T sorted by the supplied order
// expression. Preloaded child collections are re-sorted by the caller.
func listOrdered[T any](s *Service, ctx context.Context, operation, orderExpr string, preloads ...string) ([]T, error) {
	query := s.db.WithContext(ctx).Order(orderExpr)
	for _, preload := range preloads {
		query = query.Preload(preload)
	}

	rows := make([]T, 0)
	if err := query.Find(&rows).Error; err != nil {
		s.logError(operation, "query_failed", err)
		return nil, newServiceError(operation, "query_failed", err)
	}
	return rows, nil
}

// takeByID fetches a single row of T by primary key.
func takeByID[T any](s *Service, ctx context.Context, operation, id string, preloads ...string) (T, error) {
	var row T
	query := s.db.WithContext(ctx)
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	err := query.Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, newServiceError(operation, "not_found", ErrNotFound)
	}
	if err != nil {
		s.logError(operation, "select_failed", err, zap.String("id", id))
		return row, newServiceError(operation, "select_failed", err)
	}
	return row, nil
}

// createRow inserts one row built from the supplied column set, assigning
// the identifier, timestamps and a zero display order default, then returns
// the stored row.
func createRow[T any](s *Service, ctx context.Context, operation string, columns map[string]any) (T, error) {
	var zero T

	id, err := s.idProvider.NewID()
	if err != nil {
		s.logError(operation, "id_generation_failed", err)
		return zero, newServiceError(operation, "id_generation_failed", err)
	}

	now := s.clock().UTC()
	columns["id"] = id
	columns["created_at"] = now
	columns["updated_at"] = now
	if _, ok := columns["display_order"]; !ok {
		columns["display_order"] = 0
	}

	if err := s.db.WithContext(ctx).Model(new(T)).Create(columns).Error; err != nil {
		s.logError(operation, "insert_failed", err)
		return zero, newServiceError(operation, "insert_failed", err)
	}

	return takeByID[T](s, ctx, operation, id)
}

// patchRow applies a sparse patch: only the supplied columns are written,
// and the updated_at timestamp is always refreshed. Zero affected rows are
// surfaced as ErrNotFound.
func patchRow[T any](s *Service, ctx context.Context, operation, id string, columns map[string]any, preloads ...string) (T, error) {
	var zero T

	columns["updated_at"] = s.clock().UTC()
	result := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		s.logError(operation, "update_failed", result.Error, zap.String("id", id))
		return zero, newServiceError(operation, "update_failed", result.Error)
	}
	if result.RowsAffected == 0 {
		return zero, newServiceError(operation, "not_found", ErrNotFound)
	}

	return takeByID[T](s, ctx, operation, id, preloads...)
}

// deleteRow removes the row with the supplied id and reports how many rows
// were affected; deleting an absent id is not an error.
func deleteRow[T any](s *Service, ctx context.Context, operation, id string) (int64, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		s.logError(operation, "delete_failed", result.Error, zap.String("id", id))
		return 0, newServiceError(operation, "delete_failed", result.Error)
	}
	return result.RowsAffected, nil
}

func parentExists[P any](s *Service, ctx context.Context, operation, id string) error {
	_, err := takeByID[P](s, ctx, operation, id)
	return err
}
