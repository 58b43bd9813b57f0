// Package services contains the server-side business logic: accounts and
// sessions, the contact graph, the message store and history exports.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/privachat/internal/common"
	"github.com/dmitrijs2005/privachat/internal/dbx"
	"github.com/dmitrijs2005/privachat/internal/server/auth"
	"github.com/dmitrijs2005/privachat/internal/server/config"
	"github.com/dmitrijs2005/privachat/internal/server/models"
	"github.com/dmitrijs2005/privachat/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a single-use refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterInput is everything a client uploads when creating an identity.
// The private key only ever arrives wrapped.
type RegisterInput struct {
	Username    string
	Password    string
	PublicKey   []byte
	WrappedKey  models.WrappedKey
	DisplayName string
}

const (
	publicKeySize     = 32
	maxDisplayNameLen = 64
	maxAboutLen       = 256
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)

// UserService handles registration, login, token refresh and profiles.
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates a new identity. The public key is fixed from here on.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.Identity, error) {
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	displayName := strings.TrimSpace(in.DisplayName)
	if displayName == "" {
		displayName = in.Username
	}

	identity := &models.Identity{
		Username:     in.Username,
		PasswordHash: hash,
		PublicKey:    in.PublicKey,
		WrappedKey:   in.WrappedKey,
		DisplayName:  displayName,
		About:        common.DefaultAbout,
	}

	created, err := s.repomanager.Identities(s.db).Create(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("error creating identity: %w", err)
	}
	return created, nil
}

// Login checks the password and issues a token pair. The returned identity
// carries the wrapped private key so a fresh client can unwrap it.
func (s *UserService) Login(ctx context.Context, username, password string) (*TokenPair, *models.Identity, error) {
	identity, err := s.repomanager.Identities(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// keep timing close to the found path
			auth.CheckPassword(dummyHash, password)
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}
	if !auth.CheckPassword(identity.PasswordHash, password) {
		return nil, nil, common.ErrorUnauthorized
	}

	pair, err := s.generateTokenPair(ctx, identity, s.db)
	if err != nil {
		return nil, nil, err
	}
	return pair, identity, nil
}

// RefreshToken exchanges a refresh token for a new pair. The old token is
// consumed in the same transaction as the new one is stored, so concurrent
// refreshes with one token cannot both succeed.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	return dbx.InTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) (*TokenPair, error) {
		token, err := s.repomanager.RefreshTokens(tx).Consume(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, common.ErrInvalidToken
			}
			return nil, fmt.Errorf("error consuming refresh token: %w", err)
		}
		if token.Expires.Before(time.Now()) {
			return nil, common.ErrRefreshTokenExpired
		}

		identity, err := s.repomanager.Identities(tx).GetByID(ctx, token.UserID)
		if err != nil {
			return nil, fmt.Errorf("error loading identity: %w", err)
		}
		return s.generateTokenPair(ctx, identity, tx)
	})
}

// GetPublicKey returns the identity key published for username.
func (s *UserService) GetPublicKey(ctx context.Context, username string) ([]byte, error) {
	identity, err := s.repomanager.Identities(s.db).GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return identity.PublicKey, nil
}

func (s *UserService) GetProfile(ctx context.Context, username string) (*models.Profile, error) {
	identity, err := s.repomanager.Identities(s.db).GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return identity.Profile(), nil
}

// UpdateProfile changes the caller's own display name and status text.
// There is no way to change somebody else's profile: userID always comes
// from the session token.
func (s *UserService) UpdateProfile(ctx context.Context, userID, displayName, about string) (*models.Profile, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" || utf8.RuneCountInString(displayName) > maxDisplayNameLen {
		return nil, fmt.Errorf("display name must be 1-%d characters: %w", maxDisplayNameLen, common.ErrorValidation)
	}
	if utf8.RuneCountInString(about) > maxAboutLen {
		return nil, fmt.Errorf("about must be at most %d characters: %w", maxAboutLen, common.ErrorValidation)
	}

	identity, err := s.repomanager.Identities(s.db).UpdateProfile(ctx, userID, displayName, about)
	if err != nil {
		return nil, err
	}
	return identity.Profile(), nil
}

// --- helpers below ---

// dummyHash is compared against on unknown usernames.
var dummyHash, _ = auth.HashPassword("privachat-dummy-password")

func validateRegistration(in RegisterInput) error {
	switch {
	case !usernamePattern.MatchString(in.Username):
		return fmt.Errorf("username must be 3-32 letters, digits, '_', '.' or '-': %w", common.ErrorValidation)
	case in.Password == "":
		return fmt.Errorf("password is required: %w", common.ErrorValidation)
	case len(in.PublicKey) != publicKeySize:
		return fmt.Errorf("public key must be %d bytes: %w", publicKeySize, common.ErrorValidation)
	case len(in.WrappedKey.Salt) == 0 || len(in.WrappedKey.IV) == 0 || len(in.WrappedKey.Ciphertext) == 0:
		return fmt.Errorf("wrapped private key is incomplete: %w", common.ErrorValidation)
	}
	return nil
}

func (s *UserService) generateTokenPair(ctx context.Context, identity *models.Identity, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(auth.Principal{UserID: identity.ID, Username: identity.Username},
		s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	tokens := s.repomanager.RefreshTokens(tx)
	if _, err := tokens.PurgeExpired(ctx, identity.ID); err != nil {
		return nil, common.ErrorInternal
	}
	if err := tokens.Create(ctx, identity.ID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
