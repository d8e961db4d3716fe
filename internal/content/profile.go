package content

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

const (
	opGetProfile    = "content.profile.get"
	opCreateProfile = "content.profile.create"
	opUpdateProfile = "content.profile.update"
)

// GetProfile returns the singleton profile row, or ErrNotFound when the
// site has not been bootstrapped yet.
func (s *Service) GetProfile(ctx context.Context) (Profile, error) {
	var profile Profile
	err := s.db.WithContext(ctx).Order("created_at ASC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Profile{}, newServiceError(opGetProfile, "not_found", ErrNotFound)
	}
	if err != nil {
		s.logError(opGetProfile, "query_failed", err)
		return Profile{}, newServiceError(opGetProfile, "query_failed", err)
	}
	return profile, nil
}

// CreateProfile inserts the singleton profile row. A second create is
// rejected with ErrProfileExists.
func (s *Service) CreateProfile(ctx context.Context, columns map[string]any) (Profile, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Profile{}).Count(&count).Error; err != nil {
		s.logError(opCreateProfile, "count_failed", err)
		return Profile{}, newServiceError(opCreateProfile, "count_failed", err)
	}
	if count > 0 {
		return Profile{}, newServiceError(opCreateProfile, "already_exists", ErrProfileExists)
	}

	id, err := s.idProvider.NewID()
	if err != nil {
		s.logError(opCreateProfile, "id_generation_failed", err)
		return Profile{}, newServiceError(opCreateProfile, "id_generation_failed", err)
	}

	now := s.clock().UTC()
	columns["id"] = id
	columns["created_at"] = now
	columns["updated_at"] = now
	if err := s.db.WithContext(ctx).Model(&Profile{}).Create(columns).Error; err != nil {
		s.logError(opCreateProfile, "insert_failed", err)
		return Profile{}, newServiceError(opCreateProfile, "insert_failed", err)
	}

	return takeByID[Profile](s, ctx, opCreateProfile, id)
}

// UpdateProfile applies a sparse patch to the profile row with the given id.
func (s *Service) UpdateProfile(ctx context.Context, id string, columns map[string]any) (Profile, error) {
	return patchRow[Profile](s, ctx, opUpdateProfile, id, columns)
}

// Summary renders a one-paragraph description of the owner for the chat
// widget persona. Returns empty when no profile exists.
func (s *Service) Summary(ctx context.Context) string {
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return ""
	}

	parts := make([]string, 0, 4)
	if profile.Name != "" {
		parts = append(parts, profile.Name)
	}
	if profile.Title != "" {
		parts = append(parts, profile.Title)
	}
	if profile.Location != "" {
		parts = append(parts, "based in "+profile.Location)
	}
	if profile.Bio != "" {
		parts = append(parts, profile.Bio)
	}
	return strings.Join(parts, ". ")
}
