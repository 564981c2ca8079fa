package services

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"

	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"

	"gameworth/internal/logger"
	"gameworth/internal/models"
	"gameworth/internal/repositories"
)

// Error variables
var (
	ErrUsernameLength     = errors.New("username must be between 3 and 20 characters")
	ErrUsernameCharset    = errors.New("username may only contain letters, digits and underscores")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const minPasswordLen = 6

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error)
}

// TokenGenerator defines an interface for issuing session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuthService handles signup and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
	events KafkaWriter // optional, nil disables publishing
}

// NewAuthService creates a new AuthService instance. events may be nil.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator, events KafkaWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		events: events,
	}
}

// Signup validates the input, checks username and email uniqueness, hashes
// the password and inserts the user. The two uniqueness lookups run before
// the insert; a duplicate-key failure from the insert itself covers the race
// between check and insert.
func (svc *AuthService) Signup(ctx context.Context, username, email, password string) (*models.UserDB, error) {
	if len(username) < 3 || len(username) > 20 {
		return nil, ErrUsernameLength
	}
	if !usernameRe.MatchString(username) {
		return nil, ErrUsernameCharset
	}
	if !emailRe.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	existing, err = svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Create(ctx, username, email, string(hashedPassword))
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateUsername):
			return nil, ErrUsernameExists
		case errors.Is(err, repositories.ErrDuplicateEmail):
			return nil, ErrEmailExists
		}
		logger.Log.Errorw("failed to create user", "err", err)
		return nil, err
	}

	svc.publishRegistered(ctx, user)

	return user, nil
}

// Login authenticates a user and returns the user plus a JWT token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// publishRegistered emits a user.registered event. Failures are logged and
// never surfaced; the signup has already committed.
func (svc *AuthService) publishRegistered(ctx context.Context, user *models.UserDB) {
	if svc.events == nil {
		return
	}

	payload, err := json.Marshal(models.UserSummary{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
	if err != nil {
		logger.Log.Errorw("failed to marshal registered event", "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(user.Username),
		Value: payload,
	}
	if err := svc.events.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish registered event", "err", err)
	}
}
