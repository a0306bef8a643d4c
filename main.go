package main

import (
	"embed"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/lib/pq"

	"github.com/GinsengJuice/CalendarApp/internal/api"
	"github.com/GinsengJuice/CalendarApp/internal/janitor"
)

//go:embed sql/schema/*.sql
var embedMigrations embed.FS

func main() {
	cfg := &api.APIConfig{}
	cfg.Init(".env", "")
	cfg.ConnectToDB(embedMigrations, "sql/schema")

	sweeper := janitor.New(cfg.Queries(), os.Getenv("JANITOR_SCHEDULE"))
	if err := sweeper.Start(); err != nil {
		slog.Error("could not start janitor: " + err.Error())
		os.Exit(1)
	}
	defer sweeper.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: api.SetupMux(cfg),
	}

	slog.Info("server listening", slog.String("port", port))
	if err := server.ListenAndServe(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
