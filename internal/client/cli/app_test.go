package cli

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/privachat/internal/client/services"
)

func TestIsLoggedIn(t *testing.T) {
	app := &App{}
	if app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == false without a session")
	}

	app.session = &services.Session{Username: "alice"}
	if !app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == true with a session")
	}
}

func TestSetMode_ChangesAndLogsOnce(t *testing.T) {
	app := &App{}
	var buf bytes.Buffer

	old := log.Default().Writer()
	defer log.SetOutput(old)
	log.SetOutput(&buf)

	app.setMode(ModeOnline)
	if app.Mode != ModeOnline {
		t.Fatalf("expected mode to be %q, got %q", ModeOnline, app.Mode)
	}
	if got := buf.String(); got == "" {
		t.Fatalf("expected log output on mode change, got empty")
	}

	buf.Reset()

	app.setMode(ModeOnline)
	if got := buf.String(); got != "" {
		t.Fatalf("expected no log output when mode doesn't change, got: %q", got)
	}

	app.setMode(ModeOffline)
	if app.Mode != ModeOffline {
		t.Fatalf("expected mode to be %q, got %q", ModeOffline, app.Mode)
	}
	if got := buf.String(); got == "" {
		t.Fatalf("expected log output on mode change to offline, got empty")
	}
}

func TestGetStatus(t *testing.T) {
	app := &App{}
	if got := app.getStatus(); got != "" {
		t.Fatalf("empty status = %q", got)
	}

	app.session = &services.Session{Username: "alice"}
	app.peer = "bob"
	app.Mode = ModeOnline
	if got := app.getStatus(); got != "(alice @bob online)" {
		t.Fatalf("status = %q", got)
	}
}

func TestStartOnlineStatusWatcher_TracksPing(t *testing.T) {
	old := log.Default().Writer()
	defer log.SetOutput(old)
	log.SetOutput(&bytes.Buffer{})

	ta := newTestApp("")
	ta.session = &services.Session{Username: "alice", Offline: true}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		ta.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
	}()

	waitFor(t, func() bool { return ta.mode() == ModeOnline })
	waitFor(t, func() bool { return strings.Contains(ta.output.String(), "run login to reconnect") })

	ta.auth.setPingErr(errors.New("down"))
	waitFor(t, func() bool { return ta.mode() == ModeOffline })

	cancel()
	<-done
}
