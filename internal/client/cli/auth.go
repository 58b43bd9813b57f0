package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/privachat/internal/client/client"
	"github.com/dmitrijs2005/privachat/internal/client/services"
	"github.com/dmitrijs2005/privachat/internal/common"
)

// Interactive input seams, swapped in tests.
var (
	getSimpleText  = GetSimpleText
	getPassword    = GetPassword
	getNewPassword = GetNewPassword
)

var errNotLoggedIn = errors.New("please login first")
var errOffline = errors.New("not available in offline mode")

// Register prompts for a username, display name and password and creates
// the account together with a fresh identity keypair.
//
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	displayName, err := getSimpleText(a.reader, "Display name (optional)", a.out)
	if err != nil {
		return err
	}

	password, err := getNewPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password, displayName); err != nil {
		return err
	}

	a.printf("Success! You can now login as %s", userName)
	return nil
}

// Login prompts the user for credentials and unlocks the identity.
//
// The method first attempts an online login. If the server is unavailable
// (errors.Is(err, client.ErrUnavailable)), it falls back to offline login,
// which unlocks the key but cannot send or receive. An online login also
// opens the live event stream.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if a.isLoggedIn() {
		_ = a.Logout(ctx)
	}

	var (
		session *services.Session
		mode    Mode
	)

	session, err = a.authService.OnlineLogin(ctx, userName, password)
	switch {
	case err == nil:
		log.Printf("Login successful")
		mode = ModeOnline
	case errors.Is(err, client.ErrUnavailable):
		log.Printf("Server unavailable, trying offline login...")
		session, err = a.authService.OfflineLogin(ctx, userName, password)
		if err != nil {
			a.setMode(ModeDisabled)
			return fmt.Errorf("offline login unsuccessful: %w", err)
		}
		log.Printf("Offline login successful")
		mode = ModeOffline
	default:
		return fmt.Errorf("login unsuccessful: %w", err)
	}

	a.mu.Lock()
	a.session = session
	a.mu.Unlock()
	a.setMode(mode)

	if mode == ModeOnline {
		if err := a.startStream(ctx); err != nil {
			a.printf("Live updates unavailable: %s", err.Error())
		}
	}
	return nil
}

// Logout closes the stream, wipes the private key and forgets the open
// conversation. The offline cache is kept.
func (a *App) Logout(ctx context.Context) error {
	a.closeStream()

	a.mu.Lock()
	session := a.session
	a.session = nil
	a.peer = ""
	a.view = nil
	a.typing = map[string]bool{}
	a.mu.Unlock()

	if session == nil {
		return nil
	}
	return a.authService.Logout(ctx, session)
}

// Forget wipes the offline cache on top of Logout.
func (a *App) Forget(ctx context.Context) error {
	if err := a.Logout(ctx); err != nil {
		return err
	}
	return a.authService.ClearOfflineData(ctx)
}

// onlineSession returns the session when the user is logged in online.
func (a *App) onlineSession() (*services.Session, error) {
	s := a.currentSession()
	if s == nil {
		return nil, errNotLoggedIn
	}
	if s.Offline {
		return nil, errOffline
	}
	return s, nil
}
