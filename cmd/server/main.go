package main // Entry point package

import (
    "log"
    "time"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"

    "github.com/workora/job-board-gateway/internal/apiclient"
    "github.com/workora/job-board-gateway/internal/config"
    "github.com/workora/job-board-gateway/internal/handler"
    "github.com/workora/job-board-gateway/internal/middleware"
    "github.com/workora/job-board-gateway/internal/notify"
    "github.com/workora/job-board-gateway/internal/queue"
    "github.com/workora/job-board-gateway/internal/router"
    "github.com/workora/job-board-gateway/internal/session"
    "github.com/workora/job-board-gateway/internal/token"
)

func main() {
    _ = godotenv.Load() // .env is optional; real deployments set env vars directly
    cfg := config.Load()

    // Typed client for the core platform API.  All durable state lives
    // behind it; the gateway only holds cookies and short-lived caches.
    api := apiclient.New(cfg.APIBaseURL, cfg.APITimeout, config.LoadRetryConfig())

    // Two credential stores: the site cookie (user/company) carries a
    // profile snapshot companion, the admin cookie does not.
    siteStore := &token.Store{
        Name:         cfg.AuthCookie,
        SnapshotName: cfg.SnapshotCookie,
        TTLDays:      cfg.CookieTTLDays,
        Secure:       cfg.CookieSecure,
    }
    adminStore := &token.Store{
        Name:    cfg.AdminCookie,
        TTLDays: cfg.CookieTTLDays,
        Secure:  cfg.CookieSecure,
    }

    // Redis is optional: without it the gateway still works, just without
    // response caching, rate limiting, the principal fast path or the
    // notification feed.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Printf("redis unavailable; cache, rate limiting and notifications disabled")
    }
    var cache session.ProfileCache
    if rc := session.NewRedisCache(rdb, time.Minute); rc != nil {
        cache = rc
    }

    site := session.NewManager(api, siteStore, cache)
    admin := session.NewManager(api, adminStore, cache)

    authHandler := handler.NewAuthHandler(site, admin)
    jobHandler := handler.NewJobHandler(api)
    appHandler := handler.NewApplicationHandler(api)
    mktHandler := handler.NewMarketplaceHandler(api)
    adminHandler := handler.NewAdminHandler(api)

    var notifHandler *handler.NotificationHandler
    if feed := notify.NewRedisStore(rdb, 0); feed != nil {
        notifHandler = handler.NewNotificationHandler(feed)
        go func() {
            if err := queue.StartNotificationConsumer(feed); err != nil {
                log.Printf("notification consumer stopped: %v", err)
            }
        }()
    }

    e := echo.New()
    e.Use(echomw.Recover())
    e.Use(echomw.Logger())
    e.Use(middleware.Maintenance(cfg.MaintenanceFlag, "/maintenance", "/v1/admin", "/admin"))

    siteResolve := middleware.Resolve(site)
    adminResolve := middleware.Resolve(admin)
    limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
    browseCache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb, cfg.AuthCookie, cfg.AdminCookie)

    router.RegisterRoutes(e)
    router.RegisterAuth(e, authHandler, siteResolve, limiter)
    router.RegisterPublic(e, jobHandler, mktHandler, siteResolve, browseCache)
    router.RegisterUser(e, appHandler, mktHandler, notifHandler, siteResolve)
    router.RegisterCompany(e, jobHandler, appHandler, siteResolve)
    router.RegisterAdmin(e, authHandler, adminHandler, adminStore, adminResolve, limiter)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s, upstream=%s)", addr, cfg.Env, cfg.APIBaseURL)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
