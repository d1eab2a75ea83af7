package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/mediaonstake/agencysite/client"
	"github.com/mediaonstake/agencysite/internal/config"
	"github.com/mediaonstake/agencysite/internal/content"
	"github.com/mediaonstake/agencysite/internal/site"
	"github.com/mediaonstake/agencysite/pkg/clock"
	"github.com/mediaonstake/agencysite/pkg/health"
	"github.com/mediaonstake/agencysite/pkg/limits"
	"github.com/mediaonstake/agencysite/pkg/logging"
	"github.com/mediaonstake/agencysite/pkg/metrics"
	"github.com/mediaonstake/agencysite/pkg/router"
	"github.com/mediaonstake/agencysite/pkg/shutdown"
)

func serveCmd() *cobra.Command {
	var (
		addr      string
		publicURL string
		contentIn string
		watch     bool
		logLevel  string
		assets    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the site server",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if f.Changed("addr") {
				cfg.Server.Address = addr
			}
			if f.Changed("public-url") {
				cfg.Server.PublicURL = publicURL
			}
			if f.Changed("content") {
				cfg.Content.Path = contentIn
			}
			if f.Changed("watch") {
				cfg.Content.Watch = watch
			}
			if f.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration:\n%w", err)
			}
			return runServe(cmd.Context(), cfg, assets)
		},
	}

	f := cmd.Flags()
	f.StringVar(&addr, "addr", "", "listen address (overrides server.address)")
	f.StringVar(&publicURL, "public-url", "", "canonical site URL (overrides server.public_url)")
	f.StringVar(&contentIn, "content", "", "site copy YAML replacing the embedded copy")
	f.BoolVar(&watch, "watch", false, "reload --content when it changes")
	f.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	f.StringVar(&assets, "assets", "", "directory served under /assets/ (team photos, logo)")
	return cmd
}

func newLogger(c config.LogConfig) (logging.Logger, error) {
	level, err := logging.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	opts := []logging.LoggerOption{logging.WithLevel(level), logging.WithOutput(os.Stderr)}
	if c.JSON {
		opts = append(opts, logging.WithJSON())
	}
	return logging.NewSlogLogger(opts...), nil
}

// server is everything serve wires together.
type server struct {
	router  *router.Router
	store   *content.Store
	watcher *content.Watcher
	health  *health.Checker
	metrics *metrics.Metrics
}

func loadContent(c config.ContentConfig) (*content.Site, error) {
	if c.Path == "" {
		return content.Default()
	}
	return content.LoadFile(c.Path)
}

// newServer builds the routes. It starts nothing.
func newServer(c config.Config, log logging.Logger, assetsDir string) (*server, error) {
	s, err := loadContent(c.Content)
	if err != nil {
		return nil, err
	}
	srv := &server{store: content.NewStore(s), metrics: metrics.New("agencysite")}

	if c.Content.Watch {
		srv.watcher, err = content.NewWatcher(srv.store, c.Content.Path, log)
		if err != nil {
			return nil, err
		}
	}

	r := router.New(
		router.WithLogger(log),
		router.WithTransportConfig(c.Transport()),
		router.WithEventLimit(c.Live.EventsPerSecond, c.Live.EventBurst),
		router.WithMaxConnectionsPerIP(c.Live.MaxConnectionsPerIP),
		router.WithMetrics(srv.metrics),
		router.WithTrustProxyHeaders(c.Server.TrustProxyHeaders),
	)
	r.Use(router.Recovery(log))
	r.Use(logging.RequestLogger(log))
	r.Use(router.SecureHeaders(router.DefaultSecureHeadersConfig()))
	if c.Server.RequestsPerSecond > 0 {
		r.Use(limits.NewKeyedLimiter(c.Server.RequestsPerSecond, c.Server.RequestBurst).Middleware(c.Server.TrustProxyHeaders))
	}
	srv.router = r

	hc := health.NewChecker(Version)
	hc.AddCriticalCheck("content", srv.store.Ready, 0)
	hc.AddCheck("live_sessions", health.CapacityCheck("live sessions", r.ActiveSessions, c.Live.MaxSessions), 0)
	srv.health = hc

	r.Handle("/healthz", hc.LivenessHandler())
	r.Handle("/readyz", hc.ReadinessHandler())
	r.Handle("/metrics", srv.metrics.Handler())
	r.Handle("/live.js", client.Handler())
	r.Handle("/robots.txt", site.RobotsHandler(c.Server.PublicURL))
	r.Handle("/sitemap.xml", site.SitemapHandler(c.Server.PublicURL, clock.System{}))
	if assetsDir != "" {
		r.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir))))
	}

	r.Live("/{$}", site.NewFactory(site.Options{
		Store:          srv.store,
		Clock:          clock.System{},
		Wizard:         c.Wizard(),
		Style:          c.Timeline,
		SwipeThreshold: c.Live.SwipeThreshold,
		PublicURL:      c.Server.PublicURL,
		Metrics:        srv.metrics,
	}))
	return srv, nil
}

func runServe(ctx context.Context, c config.Config, assetsDir string) error {
	log, err := newLogger(c.Log)
	if err != nil {
		return err
	}
	logging.SetDefault(log)

	srv, err := newServer(c, log, assetsDir)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:         c.Server.Address,
		Handler:      srv.router,
		ReadTimeout:  c.Server.ReadTimeout,
		WriteTimeout: c.Server.WriteTimeout,
		IdleTimeout:  c.Server.IdleTimeout,
	}

	sh := shutdown.NewHandler(shutdown.WithTimeout(c.Server.ShutdownTimeout), shutdown.WithLogger(log))
	sh.RegisterFunc("http", shutdown.PriorityHTTP, httpSrv.Shutdown)
	sh.RegisterFunc("live", shutdown.PriorityLive, srv.router.Shutdown)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if srv.watcher != nil {
		sh.RegisterCloser("content-watcher", shutdown.PriorityContent, srv.watcher)
		go srv.watcher.Run(runCtx)
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("listening",
			logging.String("addr", c.Server.Address),
			logging.String("public_url", c.Server.PublicURL),
			logging.String("version", Version))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", logging.Err(err))
			serveErr <- err
			cancel()
		}
	}()

	err = sh.Wait(runCtx)
	if errors.Is(err, shutdown.ErrAlreadyClosed) {
		err = nil
	}
	select {
	case lerr := <-serveErr:
		return errors.Join(fmt.Errorf("listen %s: %w", c.Server.Address, lerr), err)
	default:
		return err
	}
}
