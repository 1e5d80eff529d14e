package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"homeserve/internal/domain"
	"homeserve/internal/pkg/logger"
	"homeserve/internal/pkg/mail"
)

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	specialRegex   = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

type Service struct {
	users       UserRepository
	resetTokens ResetTokenRepository
	jwt         jwtService
	mailer      mail.Mailer
	frontendURL string
	resetTTL    time.Duration
}

func NewService(
	users UserRepository,
	resetTokens ResetTokenRepository,
	jwt jwtService,
	mailer mail.Mailer,
	frontendURL string,
	resetTTL time.Duration,
) *Service {
	return &Service{
		users:       users,
		resetTokens: resetTokens,
		jwt:         jwt,
		mailer:      mailer,
		frontendURL: frontendURL,
		resetTTL:    resetTTL,
	}
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if taken, err := s.users.ExistsByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameExists
	}
	if taken, err := s.users.ExistsByEmail(ctx, req.Email, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailExists
	}
	if taken, err := s.users.ExistsByContact(ctx, req.Contact, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrContactExists
	}

	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if err := checkPasswordPolicy(req.Password); err != nil {
		return nil, err
	}

	gender := domain.Gender(req.Gender)
	if !gender.Valid() {
		return nil, ErrInvalidGender
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		Username:     req.Username,
		Contact:      req.Contact,
		Address:      req.Address,
		Gender:       gender,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.L().Info("user registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, AccessToken: token}, nil
}

func (s *Service) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile merges the supplied fields over the stored user. A password
// change additionally requires the current password.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Email != nil {
		if taken, err := s.users.ExistsByEmail(ctx, *req.Email, userID); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrEmailExists
		}
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Contact != nil {
		if taken, err := s.users.ExistsByContact(ctx, *req.Contact, userID); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrContactExists
		}
		user.Contact = *req.Contact
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		user.MiddleName = *req.MiddleName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Gender != nil {
		gender := domain.Gender(*req.Gender)
		if !gender.Valid() {
			return nil, ErrInvalidGender
		}
		user.Gender = gender
	}

	if req.Password != "" || req.ConfirmPassword != "" || req.CurrentPassword != "" {
		if req.CurrentPassword == "" {
			return nil, ErrWrongPassword
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
			return nil, ErrWrongPassword
		}
		if req.Password != req.ConfirmPassword {
			return nil, ErrPasswordMismatch
		}
		if err := checkPasswordPolicy(req.Password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RequestPasswordReset issues a fresh single-use token and emails the reset
// link. Any previous outstanding token for the user is invalidated.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.resetTokens.DeleteForUser(ctx, user.ID); err != nil {
		return err
	}

	token := &domain.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resetTokens.Create(ctx, token); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token.Token)
	body := fmt.Sprintf(
		"Hello %s,\n\nUse the link below to reset your password. It expires in %s.\n\n%s\n",
		user.FirstName, s.resetTTL, link)

	if err := s.mailer.Send(ctx, []string{user.Email}, "Password reset", body); err != nil {
		return err
	}

	logger.L().Info("password reset requested", zap.Int64("user_id", user.ID))
	return nil
}

func (s *Service) ConfirmPasswordReset(ctx context.Context, req PasswordResetConfirm) error {
	token, err := s.resetTokens.GetByToken(ctx, req.Token)
	if err != nil {
		return err
	}
	if token == nil || token.Expired(time.Now()) {
		return ErrInvalidResetToken
	}

	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if err := checkPasswordPolicy(req.Password); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	if err := s.resetTokens.Delete(ctx, token.ID); err != nil {
		return err
	}

	logger.L().Info("password reset completed", zap.Int64("user_id", user.ID))
	return nil
}

// PurgeExpiredResetTokens removes dead token rows; wired to the in-process
// scheduler and cmd/cleanup.
func (s *Service) PurgeExpiredResetTokens(ctx context.Context) (int64, error) {
	return s.resetTokens.DeleteExpired(ctx, time.Now())
}

func checkPasswordPolicy(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	if !uppercaseRegex.MatchString(password) {
		return ErrWeakPassword
	}
	if !specialRegex.MatchString(password) {
		return ErrWeakPassword
	}
	return nil
}
