package config

import (
    "os"
    "strconv"
    "time"
)

// RetryConfig controls the bounded retry policy applied to upstream GET
// requests.  Only idempotent reads are ever retried; mutating calls go out
// exactly once.  Attempts counts the total number of tries including the
// first one, so Attempts=1 disables retries entirely.
type RetryConfig struct {
    Attempts  int
    BaseDelay time.Duration
    MaxDelay  time.Duration
}

// LoadRetryConfig reads environment variables to build a RetryConfig.
// Defaults give three attempts with a 200ms base delay doubling per try.
func LoadRetryConfig() RetryConfig {
    def := RetryConfig{
        Attempts:  envInt("RETRY_ATTEMPTS", 3),
        BaseDelay: envDur("RETRY_BASE_DELAY", 200*time.Millisecond),
        MaxDelay:  envDur("RETRY_MAX_DELAY", 2*time.Second),
    }
    if def.Attempts < 1 {
        def.Attempts = 1
    }
    if def.BaseDelay <= 0 {
        def.BaseDelay = 200 * time.Millisecond
    }
    if def.MaxDelay < def.BaseDelay {
        def.MaxDelay = def.BaseDelay
    }
    return def
}

func envStr(k, d string) string {
    if v := os.Getenv(k); v != "" {
        return v
    }
    return d
}

func envBool(k string, d bool) bool {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    switch v {
    case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
        return true
    case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
        return false
    }
    return d
}

func envInt(k string, d int) int {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    if n, err := strconv.Atoi(v); err == nil {
        return n
    }
    return d
}

func envDur(k string, d time.Duration) time.Duration {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    if dur, err := time.ParseDuration(v); err == nil {
        return dur
    }
    return d
}
