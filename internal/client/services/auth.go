// Package services contains application services for the chat client.
// This file defines the authentication service: registration with a fresh
// identity keypair, online/offline login that unlocks the private key, a
// liveness check and housekeeping of local (offline) account data.
package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/privachat/internal/client/client"
	"github.com/dmitrijs2005/privachat/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/privachat/internal/client/repositories/peerkeys"
	"github.com/dmitrijs2005/privachat/internal/common"
	"github.com/dmitrijs2005/privachat/internal/cryptox"
	"github.com/dmitrijs2005/privachat/internal/dbx"
	pb "github.com/dmitrijs2005/privachat/internal/proto"
)

// ErrKeyMismatch means the unlocked private key does not belong to the
// public key the server has on record.
var ErrKeyMismatch = errors.New("private key does not match published public key")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: generate a keypair, wrap the private key under the password
//     and create the account on the server.
//   - OnlineLogin: authenticate, unwrap the private key and cache the
//     wrapped bundle for offline use.
//   - OfflineLogin: unwrap the locally cached bundle.
//   - Logout: wipe the session and forget tokens and cached data.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte, displayName string) error
	OnlineLogin(ctx context.Context, username string, password []byte) (*Session, error)
	OfflineLogin(ctx context.Context, username string, password []byte) (*Session, error)
	Logout(ctx context.Context, s *Session) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	ClearOfflineData(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getMetadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Register creates the identity locally and publishes the public key with
// the wrapped private key. The plaintext private key never leaves memory.
func (a *authService) Register(ctx context.Context, username string, password []byte, displayName string) error {
	publicKey, privateKey, err := cryptox.GenerateIdentityKeypair()
	if err != nil {
		return fmt.Errorf("generate keypair: %w", err)
	}
	defer common.WipeByteArray(privateKey)

	bundle, err := cryptox.WrapPrivateKey(privateKey, password)
	if err != nil {
		return err
	}

	_, err = a.client.Register(ctx, &pb.RegisterRequest{
		Username:    username,
		Password:    string(password),
		PublicKey:   publicKey,
		WrappedKey:  &pb.WrappedKey{Salt: bundle.Salt, Iv: bundle.IV, Ciphertext: bundle.Ciphertext},
		DisplayName: displayName,
	})
	return err
}

// OnlineLogin authenticates against the server, unlocks the returned
// bundle and saves it for offline login.
func (a *authService) OnlineLogin(ctx context.Context, username string, password []byte) (*Session, error) {
	resp, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	wk := resp.GetWrappedKey()
	bundle := &cryptox.WrappedBundle{Salt: wk.GetSalt(), IV: wk.GetIv(), Ciphertext: wk.GetCiphertext()}
	s, err := unlock(resp.GetProfile().GetUsername(), resp.GetProfile().GetPublicKey(), bundle, password)
	if err != nil {
		a.client.Logout()
		return nil, err
	}

	if err := a.saveOfflineData(ctx, s, bundle); err != nil {
		s.Wipe()
		a.client.Logout()
		return nil, fmt.Errorf("offline data saving error: %w", err)
	}
	return s, nil
}

// OfflineLogin unlocks the bundle cached by the last online login. Missing
// data yields client.ErrLocalDataNotAvailable; a wrong password or another
// user's cache yields client.ErrUnauthorized.
func (a *authService) OfflineLogin(ctx context.Context, username string, password []byte) (*Session, error) {
	cached, err := a.getMetadataRepo(a.db).Account(ctx)
	if err != nil {
		return nil, err
	}
	if cached == nil {
		return nil, client.ErrLocalDataNotAvailable
	}
	if cached.Username != username {
		return nil, client.ErrUnauthorized
	}

	bundle, err := cryptox.ParseWrappedBundle(cached.WrappedKey)
	if err != nil {
		return nil, client.ErrLocalDataNotAvailable
	}

	s, err := unlock(username, cached.PublicKey, bundle, password)
	if err != nil {
		return nil, err
	}
	s.Offline = true
	return s, nil
}

func unlock(username string, publicKey []byte, bundle *cryptox.WrappedBundle, password []byte) (*Session, error) {
	privateKey, err := cryptox.UnwrapPrivateKey(bundle, password)
	if err != nil {
		if errors.Is(err, cryptox.ErrAuthentication) {
			return nil, client.ErrUnauthorized
		}
		return nil, err
	}

	derived, err := cryptox.PublicKeyFromPrivate(privateKey)
	if err != nil || !bytes.Equal(derived, publicKey) {
		common.WipeByteArray(privateKey)
		return nil, ErrKeyMismatch
	}

	return &Session{Username: username, PublicKey: publicKey, PrivateKey: privateKey}, nil
}

// saveOfflineData persists what offline login needs in a single
// transaction. Switching accounts drops the previous account's peer keys.
func (a *authService) saveOfflineData(ctx context.Context, s *Session, bundle *cryptox.WrappedBundle) error {
	raw, err := bundle.Marshal()
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getMetadataRepo(tx)

		previous, err := repo.Value(ctx, metadata.KeyUsername)
		if err != nil {
			return err
		}
		if previous != nil && string(previous) != s.Username {
			if err := peerkeys.NewSQLiteRepository(tx).Clear(ctx); err != nil {
				return err
			}
		}

		return repo.SaveAccount(ctx, &metadata.Account{
			Username:   s.Username,
			PublicKey:  s.PublicKey,
			WrappedKey: raw,
		})
	})
}

// Logout wipes the in-memory key and drops the token pair. Cached data is
// kept so that offline login keeps working.
func (a *authService) Logout(ctx context.Context, s *Session) error {
	s.Wipe()
	a.client.Logout()
	return nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// ClearOfflineData wipes locally cached account data and peer keys.
func (a *authService) ClearOfflineData(ctx context.Context) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := a.getMetadataRepo(tx).Clear(ctx); err != nil {
			return err
		}
		return peerkeys.NewSQLiteRepository(tx).Clear(ctx)
	})
}
