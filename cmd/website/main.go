package main

import (
	"context"
	"embed"
	"encoding/gob"
	"io/fs"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/sessions"
	"github.com/adampresley/catplayground/cmd/website/internal/configuration"
	"github.com/adampresley/catplayground/cmd/website/internal/home"
	"github.com/adampresley/catplayground/cmd/website/internal/playground"
	"github.com/adampresley/catplayground/pkg/locator"
	"github.com/adampresley/catplayground/pkg/models"
	"github.com/adampresley/catplayground/pkg/services"
	_ "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rfberaldo/sqlz"
	"github.com/rfberaldo/sqlz/binds"
	"github.com/shouni/go-http-kit/pkg/httpkit"
)

var (
	Version string = "development"
	appName string = "catplayground"

	//go:embed app
	appFS embed.FS

	//go:embed sql-migrations
	sqlMigrationsFs embed.FS

	config configuration.Config

	/* Services */
	catalog          models.CatalogSnapshot
	catalogService   services.CatalogServicer
	db               *sqlz.DB
	galleryService   services.GalleryServicer
	renderer         rendering.TemplateRenderer
	sessionService   sessions.Session[*models.Visitor]
	thumbnailService services.ThumbnailServicer

	/* Controllers */
	galleryController playground.GalleryController
	homeController    home.HomeHandlers
)

func main() {
	var (
		err error
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("cataasBaseURL", config.CataasBaseURL),
	)

	slog.Debug("setting up...")

	shutdownCtx, cancel := context.WithCancel(context.Background())

	/*
	 * Setup services
	 */
	binds.Register("sqlite", binds.BindByDriver("sqlite3"))
	if db, err = sqlz.Connect("sqlite", config.DSN); err != nil {
		panic(err)
	}

	migrateDatabase()
	gob.Register(&models.Visitor{})

	cookieStore := sessions.NewCookieStore(config.CookieSecret)
	sessionService = sessions.NewSessionWrapper[*models.Visitor](cookieStore, "catplaygroundvisitors", "visitor")

	httpClient := httpkit.New(time.Duration(config.HttpTimeoutSeconds) * time.Second)

	builder := locator.NewBuilder(locator.BuilderConfig{
		BaseURL: config.CataasBaseURL,
	})

	renderer, err = rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        appFS,
		PagesDir:          "pages",
	})

	if err != nil {
		panic(err)
	}

	catalogService = services.NewCatalogService(services.CatalogServiceConfig{
		APIURL:      strings.TrimSuffix(config.CataasBaseURL, "/") + "/api",
		Fetcher:     httpClient,
		MaxWorkers:  config.MaxCatalogWorkers,
		SampleLimit: config.CatalogSampleLimit,
	})

	galleryService = services.NewGalleryService(services.GalleryServiceConfig{
		Builder: builder,
		DB:      db,
		NewID:   uuid.NewString,
	})

	thumbnailService = services.NewThumbnailService(services.ThumbnailServiceConfig{
		Builder: builder,
		Fetcher: httpClient,
		MaxSize: uint(max(config.ThumbnailSize, 0)),
	})

	/*
	 * The catalog is fetched once. Failures leave parts of it empty and
	 * the site keeps working with what arrived.
	 */
	catalog = catalogService.Load(shutdownCtx)

	pageBuilder := home.NewPageBuilder(home.PageBuilderConfig{
		Builder:       builder,
		Catalog:       &catalog,
		QuickTagCount: config.QuickTagCount,
	})

	/*
	 * Setup controllers
	 */
	galleryController = playground.NewGalleryController(playground.GalleryControllerConfig{
		GalleryService: galleryService,
		PageBuilder:    pageBuilder,
		Renderer:       renderer,
	})

	homeController = home.NewHomeController(home.HomeControllerConfig{
		Builder:          builder,
		GalleryService:   galleryService,
		PageBuilder:      pageBuilder,
		Renderer:         renderer,
		ThumbnailService: thumbnailService,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	visitorMiddleware := newVisitorMiddleware(
		sessionService,
		[]string{
			"/static",
			"/heartbeat",
		},
		uuid.NewString,
	)

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /", HandlerFunc: homeController.HomePage, Middlewares: []mux.MiddlewareFunc{visitorMiddleware}},
		{Path: "GET /catalog/{id}/thumbnail", HandlerFunc: homeController.Thumbnail},
		{Path: "POST /catalog/{id}/add", HandlerFunc: galleryController.InsertByDatabaseID, Middlewares: []mux.MiddlewareFunc{visitorMiddleware}},
		{Path: "POST /gallery/{kind}/random", HandlerFunc: galleryController.InsertRandom, Middlewares: []mux.MiddlewareFunc{visitorMiddleware}},
		{Path: "POST /gallery/{kind}/text", HandlerFunc: galleryController.InsertWithText, Middlewares: []mux.MiddlewareFunc{visitorMiddleware}},
		{Path: "POST /gallery/{kind}/tag", HandlerFunc: galleryController.InsertWithTag, Middlewares: []mux.MiddlewareFunc{visitorMiddleware}},
		{Path: "POST /gallery/{kind}/tag-text", HandlerFunc: galleryController.InsertWithTagAndText, Middlewares: []mux.MiddlewareFunc{visitorMiddleware}},
		{Path: "POST /gallery/{kind}/clear", HandlerFunc: galleryController.Clear, Middlewares: []mux.MiddlewareFunc{visitorMiddleware}},
		{Path: "POST /gallery/{kind}/{entryid}/refresh", HandlerFunc: galleryController.Refresh, Middlewares: []mux.MiddlewareFunc{visitorMiddleware}},
	}

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
		HttpWriteTimeout:     60,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit

	cancel()
	mux.Shutdown(httpServer)
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}

func migrateDatabase() {
	var (
		err  error
		dirs []fs.DirEntry
		b    []byte
	)

	if dirs, err = sqlMigrationsFs.ReadDir("sql-migrations"); err != nil {
		panic(err)
	}

	for _, d := range dirs {
		if d.IsDir() {
			continue
		}

		if strings.HasPrefix(d.Name(), "commit") {
			if b, err = fs.ReadFile(sqlMigrationsFs, filepath.Join("sql-migrations", d.Name())); err != nil {
				panic(err)
			}

			if err = runSqlScript(b); err != nil {
				if !isIgnorableError(err) {
					panic(err)
				}
			}
		}
	}
}

func runSqlScript(script []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	_, err := db.Exec(ctx, string(script))
	return err
}

func isIgnorableError(err error) bool {
	if strings.Contains(err.Error(), "duplicate column") {
		return true
	}

	return false
}
