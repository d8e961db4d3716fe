package content

import "context"

const (
	opCreateContactMessage = "content.contact_messages.create"
	opListContactMessages  = "content.contact_messages.list"
)

// ContactMessageInput carries a validated, sanitized contact form
// submission.
type ContactMessageInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// CreateContactMessage stores a public contact form submission and returns
// the stored row.
func (s *Service) CreateContactMessage(ctx context.Context, input ContactMessageInput) (ContactMessage, error) {
	id, err := s.idProvider.NewID()
	if err != nil {
		s.logError(opCreateContactMessage, "id_generation_failed", err)
		return ContactMessage{}, newServiceError(opCreateContactMessage, "id_generation_failed", err)
	}

	message := ContactMessage{
		ID:        id,
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: s.clock().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&message).Error; err != nil {
		s.logError(opCreateContactMessage, "insert_failed", err)
		return ContactMessage{}, newServiceError(opCreateContactMessage, "insert_failed", err)
	}
	return message, nil
}

// ListContactMessages returns every submission, newest first. Read access
// is restricted to the authenticated owner at the handler layer.
func (s *Service) ListContactMessages(ctx context.Context) ([]ContactMessage, error) {
	messages := make([]ContactMessage, 0)
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error; err != nil {
		s.logError(opListContactMessages, "query_failed", err)
		return nil, newServiceError(opListContactMessages, "query_failed", err)
	}
	return messages, nil
}
