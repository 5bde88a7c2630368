package firebaseapp

import (
	"log/slog"
	"sync"

	"kanakku/config"
)

// Lazy initializes the Firebase app on first use and shares it afterwards.
// Deployments that use neither Firestore nor Firebase auth never touch it.
type Lazy struct {
	cfg    *config.Config
	logger *slog.Logger

	once sync.Once
	app  *App
	err  error
}

// NewLazy is the fx constructor for Lazy.
func NewLazy(cfg *config.Config, logger *slog.Logger) *Lazy {
	return &Lazy{cfg: cfg, logger: logger}
}

// Get returns the shared app, initializing it on the first call.
func (l *Lazy) Get() (*App, error) {
	l.once.Do(func() {
		l.app, l.err = New(l.cfg, l.logger)
	})

	return l.app, l.err
}
