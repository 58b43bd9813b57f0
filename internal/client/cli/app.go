package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/privachat/internal/client/client"
	"github.com/dmitrijs2005/privachat/internal/client/config"
	"github.com/dmitrijs2005/privachat/internal/client/models"
	"github.com/dmitrijs2005/privachat/internal/client/services"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

// streamer opens the live event stream.
type streamer interface {
	Connect(ctx context.Context) (client.EventStream, error)
}

type App struct {
	config          *config.Config
	authService     services.AuthService
	chatService     services.ChatService
	contactsService services.ContactService
	events          streamer

	reader *bufio.Reader
	out    io.Writer
	outMu  sync.Mutex

	mu      sync.Mutex
	session *services.Session
	Mode    Mode
	peer    string
	view    []*models.Message
	online  []string
	typing  map[string]bool

	stream     client.EventStream
	stopStream context.CancelFunc
	streamDone chan struct{}
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewChatClient(c.ServerEndpointAddr)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		config:          c,
		authService:     services.NewAuthService(apiClient, db),
		chatService:     services.NewChatService(apiClient, db, c.ExportDir()),
		contactsService: services.NewContactService(apiClient),
		events:          apiClient,
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
		typing:          map[string]bool{},
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Mode
}

// historyPageSize is 0 (service default) when no config is attached.
func (a *App) historyPageSize() int {
	if a.config == nil {
		return 0
	}
	return a.config.HistoryPageSize
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	defer a.closeStream()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session != nil
}

func (a *App) currentSession() *services.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.authService.Ping(pctx)
			cancel()

			if err != nil {
				if a.mode() == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else if a.mode() != ModeOnline {
				a.setMode(ModeOnline)
				if s := a.currentSession(); s != nil && s.Offline {
					a.printf("Server is reachable again, run login to reconnect")
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
