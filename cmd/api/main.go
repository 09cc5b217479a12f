package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/Majncz/MVOP-Q14/internal/auth"
	"github.com/Majncz/MVOP-Q14/internal/config"
	"github.com/Majncz/MVOP-Q14/internal/db"
	"github.com/Majncz/MVOP-Q14/internal/handlers"
	"github.com/Majncz/MVOP-Q14/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	dbConn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn, "migrations"); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	st := store.NewPostgres(dbConn)
	defer st.Close()

	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTExpiration)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handlers.NewRouter(st, tokens),
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
