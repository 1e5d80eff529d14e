package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeserve/internal/database"
	"homeserve/internal/repository"
)

type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) Send(_ context.Context, to []string, subject, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, subject+" -> "+to[0])
	return nil
}

func setupService(t *testing.T, mailer *recordingMailer, recipient string) (*Service, *repository.ContactRepository) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	repo := repository.NewContactRepository(db)
	return NewService(repo, mailer, nil, recipient), repo
}

func submission() ContactRequest {
	return ContactRequest{
		Name:    "Aruzhan",
		Email:   "aruzhan@example.com",
		Subject: "Booking question",
		Message: "Can I reschedule a cleaning?",
	}
}

func TestService_Submit_PersistsAndForwards(t *testing.T) {
	mailer := &recordingMailer{}
	service, _ := setupService(t, mailer, "support@homeserve.kz")

	msg, err := service.Submit(context.Background(), submission(), nil)

	require.NoError(t, err)
	assert.NotZero(t, msg.ID)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Contact form: Booking question -> support@homeserve.kz", mailer.sent[0])
}

func TestService_Submit_MailFailureDoesNotFailSubmission(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp down")}
	service, _ := setupService(t, mailer, "support@homeserve.kz")

	msg, err := service.Submit(context.Background(), submission(), nil)

	require.NoError(t, err)
	assert.NotZero(t, msg.ID)
}

func TestService_Submit_NoRecipientSkipsMail(t *testing.T) {
	mailer := &recordingMailer{}
	service, _ := setupService(t, mailer, "")

	_, err := service.Submit(context.Background(), submission(), nil)

	require.NoError(t, err)
	assert.Empty(t, mailer.sent)
}

func TestService_Submit_StoresMessageFields(t *testing.T) {
	mailer := &recordingMailer{}
	service, _ := setupService(t, mailer, "")

	msg, err := service.Submit(context.Background(), submission(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Aruzhan", msg.Name)
	assert.Equal(t, "aruzhan@example.com", msg.Email)
	assert.Equal(t, "Can I reschedule a cleaning?", msg.Message)
}
