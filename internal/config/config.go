package config // package config loads application configuration from environment variables

import (
    "log"  // log is used to report configuration errors and halt execution
    "os"   // os provides access to environment variables
    "time" // time is used for request timeout durations
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The gateway holds no durable state of its own:
// every data operation is forwarded to the core platform API, so most of the
// configuration describes how to reach that API and how session cookies are
// issued to the browser.
type Config struct {
    Env             string        // application environment (e.g. "dev", "prod")
    Port            string        // HTTP port to listen on
    APIBaseURL      string        // base URL of the core platform REST API
    APITimeout      time.Duration // per-request timeout for upstream calls
    AuthCookie      string        // cookie name holding the user/company credential
    AdminCookie     string        // cookie name holding the admin credential
    SnapshotCookie  string        // cookie name holding the serialized profile snapshot
    MaintenanceFlag string        // cookie name that switches the site into maintenance mode
    CookieTTLDays   int           // credential cookie lifetime in days
    CookieSecure    bool          // mark session cookies Secure (HTTPS only)
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Cookie names have
// defaults so a plain deployment only needs APP_ENV, APP_PORT and
// API_BASE_URL.
func Load() Config {
    return Config{
        Env:             must("APP_ENV"),      // environment (dev/test/prod)
        Port:            must("APP_PORT"),     // port to bind the HTTP server
        APIBaseURL:      must("API_BASE_URL"), // core API origin, e.g. https://api.example.com
        APITimeout:      envDur("API_TIMEOUT", 10*time.Second),
        AuthCookie:      envStr("AUTH_COOKIE_NAME", "auth_token"),
        AdminCookie:     envStr("ADMIN_COOKIE_NAME", "admin_token"),
        SnapshotCookie:  envStr("SNAPSHOT_COOKIE_NAME", "profile_snapshot"),
        MaintenanceFlag: envStr("MAINTENANCE_COOKIE_NAME", "maintenance_mode"),
        CookieTTLDays:   envInt("COOKIE_TTL_DAYS", 7),
        CookieSecure:    envBool("COOKIE_SECURE", false),
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}
