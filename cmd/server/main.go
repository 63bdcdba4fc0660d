package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invenpro/backend/internal/cache"
	"invenpro/backend/internal/config"
	"invenpro/backend/internal/httpapi"
	"invenpro/backend/internal/ledger"
	"invenpro/backend/internal/snapshot"
	"invenpro/backend/internal/snapshot/badgerdb"
	pgsnap "invenpro/backend/internal/snapshot/postgres"
	"invenpro/backend/internal/snapshot/redisdb"
)

func main() {
	cfg := config.Load()
	if err := validateSecurityConfig(cfg); err != nil {
		log.Fatalf("invalid security configuration: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	closers := make([]func() error, 0, 2)

	archive, archiveName, err := openArchive(ctx, cfg)
	if err != nil {
		log.Fatalf("archive unavailable: %v", err)
	}
	closers = append(closers, archive.Close)
	log.Printf("archive: %s", archiveName)

	store, err := ledger.Open(ctx, archive)
	if err != nil {
		log.Fatalf("open ledger store: %v", err)
	}

	overviewCache := cache.OverviewCache(cache.NoopOverviewCache{})
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisOverviewCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("redis unavailable (%v), using noop cache", err)
		} else {
			overviewCache = redisCache
			closers = append(closers, redisCache.Close)
			log.Println("cache: redis")
		}
	} else {
		log.Println("cache: noop")
	}

	auth := httpapi.NewAuthManager(cfg.AuthSecret, time.Duration(cfg.AccessTokenTTLMinutes)*time.Minute)
	seedUsers(auth, cfg)

	api := httpapi.New(store, auth, overviewCache, time.Duration(cfg.OverviewCacheTTLSeconds)*time.Second, cfg.AllowedOrigin)

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("inventory backend listening on %s", cfg.Address())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}

	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			log.Printf("close error: %v", err)
		}
	}

	log.Println("server stopped")
}

// openArchive picks the snapshot backend from configuration: postgres when
// DATABASE_URL is set, redis when REDIS_ADDR is set, otherwise an embedded
// badger database under DATA_DIR.
func openArchive(ctx context.Context, cfg config.Config) (snapshot.Archive, string, error) {
	if cfg.DatabaseURL != "" {
		archive, err := pgsnap.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, "", fmt.Errorf("postgres unavailable (%w) and DATABASE_URL is set; refusing to start with a fallback", err)
		}
		return archive, "postgres", nil
	}
	if cfg.RedisAddr != "" {
		archive := redisdb.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := archive.Ping(ctx); err != nil {
			return nil, "", fmt.Errorf("redis unavailable (%w) and REDIS_ADDR is set; refusing to start with a fallback", err)
		}
		return archive, "redis", nil
	}
	archive, err := badgerdb.Open(cfg.DataDir)
	if err != nil {
		return nil, "", fmt.Errorf("open badger at %s: %w", cfg.DataDir, err)
	}
	return archive, "badger:" + cfg.DataDir, nil
}

func seedUsers(auth *httpapi.AuthManager, cfg config.Config) {
	adminPassword := cfg.SeedAdminPassword
	if adminPassword == "" {
		adminPassword = "admin123"
		log.Println("WARN: SEED_ADMIN_PASSWORD not set, using development default")
	}
	staffPassword := cfg.SeedStaffPassword
	if staffPassword == "" {
		staffPassword = "staff123"
		log.Println("WARN: SEED_STAFF_PASSWORD not set, using development default")
	}

	if err := auth.SeedUser("admin", adminPassword, "admin"); err != nil {
		log.Fatalf("seed admin user: %v", err)
	}
	if err := auth.SeedUser("staff", staffPassword, "staff"); err != nil {
		log.Fatalf("seed staff user: %v", err)
	}
}

func validateSecurityConfig(cfg config.Config) error {
	if len(cfg.AuthSecret) < 32 {
		return fmt.Errorf("AUTH_SECRET must be set and at least 32 characters")
	}
	return nil
}
