package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/sync/errgroup"

	"folio/internal/mail"
	"folio/internal/relay"
)

// delivered submissions are kept this long
const retention = 90 * 24 * time.Hour

func main() {
	port := getenv("PORT", "8080")
	dbPath := getenv("FOLIO_DB", "folio-relay.db")
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := relay.OpenStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	mailer := mail.SMTPMailer{
		Host:     getenv("SMTP_HOST", "smtp.gmail.com"),
		Port:     getenv("SMTP_PORT", "587"),
		User:     os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASS"),
		To:       os.Getenv("TO_EMAIL"),
	}
	if mailer.User == "" || mailer.Password == "" {
		log.Printf("SMTP credentials not configured; deliveries will fail")
	}

	srv := relay.NewServer(store, mailer, os.Getenv("FOLIO_ADMIN_TOKEN"), os.Getenv("FOLIO_IP_SALT"))
	httpSrv := &http.Server{
		Addr:              ":" + port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("folio-relay listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			if n, err := store.Cleanup(ctx, retention); err != nil {
				log.Printf("Cleanup failed: %v", err)
			} else if n > 0 {
				log.Printf("Cleanup removed %d delivered submissions", n)
			}
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("folio-relay: %v", err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
