package app

import (
	"time"

	"github.com/cordobarg/note-portal/internal/chart"
	"github.com/cordobarg/note-portal/internal/common"
	"github.com/cordobarg/note-portal/internal/config"
	"github.com/cordobarg/note-portal/internal/content"
	"github.com/cordobarg/note-portal/internal/handlers"
	"github.com/cordobarg/note-portal/internal/mail"
	"github.com/cordobarg/note-portal/internal/marketdata"
	"github.com/cordobarg/note-portal/internal/render"
	"github.com/cordobarg/note-portal/internal/session"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Sessions *session.Store

	// HTTP handlers
	PageHandler    *handlers.PageHandler
	NoteHandler    *handlers.NoteHandler
	ChartHandler   *handlers.ChartHandler
	HealthHandler  *handlers.HealthHandler
	VersionHandler *handlers.VersionHandler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	a.Sessions = session.NewStore(
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
		cfg.Session.MaxEntries,
	)

	a.initHandlers()

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.PageHandler = handlers.NewPageHandler(a.Logger)
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)

	market := marketdata.New(
		a.Config.Market.BaseURL,
		a.Config.Market.DefaultSuffix,
		time.Duration(a.Config.Market.TimeoutSeconds)*time.Second,
	)
	a.ChartHandler = handlers.NewChartHandler(a.Logger, market, chart.NewPNGRenderer(), a.Sessions)

	composer := mail.NewComposer(a.Config.Mail.Recipient, a.Config.Mail.CC)
	docOpts := content.Options{
		Organization: a.Config.Document.Organization,
		FooterText:   a.Config.Document.FooterText,
		BodyFont:     a.Config.Document.BodyFont,
		BodySize:     a.Config.Document.BodySize,
	}
	a.NoteHandler = handlers.NewNoteHandler(
		a.Logger,
		render.NewDocxSerializer(),
		render.NewHTMLSerializer(),
		a.Sessions,
		composer,
		docOpts,
	)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
