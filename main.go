package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tour-packages-backend/internal/cache"
	intconfig "tour-packages-backend/internal/config"
	router "tour-packages-backend/internal/http"
	"tour-packages-backend/internal/notify"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	intconfig.ConnectDB()
	defer intconfig.CloseDB()

	// Outbound transports are constructed once here and injected; channels
	// without configuration stay nil and the dispatcher records them as
	// skipped.
	dispatcher := notify.Dispatcher{
		OwnerEmail:  env.OwnerEmail,
		OwnerPhone:  env.OwnerPhone,
		FromPhone:   env.TwilioWhatsAppNumber,
		CountryCode: env.CountryCode,
	}
	if env.SMTPHost != "" {
		dispatcher.Email = notify.NewSMTPEmailSender(env.SMTPHost, env.SMTPPort, env.SMTPUser, env.SMTPPass, env.EmailFrom)
	} else {
		log.Println("SMTP_HOST not set, email notifications disabled")
	}
	if env.TwilioAccountSID != "" {
		dispatcher.Messages = notify.NewTwilioMessageSender(env.TwilioAccountSID, env.TwilioAuthToken)
	} else {
		log.Println("TWILIO_ACCOUNT_SID not set, WhatsApp notifications disabled")
	}

	statsCache := cache.NewStatsCache(env.RedisAddr)
	if statsCache == nil {
		log.Println("REDIS_ADDR not set, destination stats served without cache")
	}

	r := router.NewRouter(env, router.Deps{
		Notifier:   dispatcher,
		StatsCache: statsCache,
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
