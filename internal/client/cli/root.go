package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := ""
	if a.session != nil {
		s = a.session.Username + " "
	}
	if a.peer != "" {
		s += "@" + a.peer + " "
	}
	s += string(a.Mode)
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the REPL on stdin until the user exits.
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to PrivaChat (type 'help' for commands)")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	runREPL(ctx, a, a.getStatus, a.reader)
}

var _ execIface = (*App)(nil)
