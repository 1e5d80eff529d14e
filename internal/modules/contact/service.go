package contact

import (
	"context"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"

	"homeserve/internal/domain"
	"homeserve/internal/pkg/logger"
	"homeserve/internal/pkg/mail"
	"homeserve/internal/pkg/storage"
	"homeserve/internal/repository"
)

type Service struct {
	messages  *repository.ContactRepository
	mailer    mail.Mailer
	uploader  storage.Uploader
	recipient string
}

func NewService(messages *repository.ContactRepository, mailer mail.Mailer, uploader storage.Uploader, recipient string) *Service {
	return &Service{messages: messages, mailer: mailer, uploader: uploader, recipient: recipient}
}

// Submit stores the message and forwards it to the configured recipient.
// A delivery failure is logged but does not fail the submission; the
// message is already persisted at that point.
func (s *Service) Submit(ctx context.Context, req ContactRequest, image *multipart.FileHeader) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if image != nil {
		url, err := s.uploader.Upload(ctx, image, "contact_images")
		if err != nil {
			return nil, err
		}
		msg.ImageURL = url
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.recipient != "" {
		body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
		if msg.ImageURL != "" {
			body += "\n\nAttachment: " + msg.ImageURL
		}
		if err := s.mailer.Send(ctx, []string{s.recipient}, "Contact form: "+msg.Subject, body); err != nil {
			logger.L().Warn("contact mail delivery failed",
				zap.Int64("message_id", msg.ID),
				zap.Error(err),
			)
		}
	}

	logger.L().Info("contact message received",
		zap.Int64("message_id", msg.ID),
		zap.String("email", msg.Email),
	)
	return msg, nil
}
