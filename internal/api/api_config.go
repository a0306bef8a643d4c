package api

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/GinsengJuice/CalendarApp/internal/access"
	"github.com/GinsengJuice/CalendarApp/internal/assistant"
	"github.com/GinsengJuice/CalendarApp/internal/database"
)

type APIConfig struct {
	db       *database.Queries
	sqlDB    *sql.DB
	dbURL    string
	platform string
	secret   string
	access   *access.Evaluator
	oracle   assistant.Oracle
	logger   *slog.Logger
}

func (cfg *APIConfig) Init(envPath string, altDBUrl string) {
	// get environment variables
	if len(envPath) != 0 {
		_ = godotenv.Load(envPath)
	}

	cfg.platform = os.Getenv("PLATFORM")
	cfg.secret = os.Getenv("SECRET")

	if len(altDBUrl) != 0 {
		cfg.dbURL = altDBUrl
	} else if envURL := os.Getenv("DB_URL"); len(envURL) != 0 {
		cfg.dbURL = envURL
	} else {
		cfg.GenerateDBConnectionString()
	}

	{
		slogLevel := os.Getenv("SLOG_LEVEL")
		switch slogLevel {
		case "DEBUG":
			cfg.NewLogger(slog.LevelDebug)
		case "WARN":
			cfg.NewLogger(slog.LevelWarn)
		case "ERROR":
			cfg.NewLogger(slog.LevelError)
		default:
			cfg.NewLogger(slog.LevelInfo)
		}
	}

	if key := os.Getenv("GEMINI_API_KEY"); len(key) != 0 {
		cfg.oracle = assistant.NewGeminiOracle(key, os.Getenv("ASSISTANT_MODEL"))
	}
}

func (cfg *APIConfig) NewLogger(level slog.Level) {
	cfg.logger = slog.New(slog.NewJSONHandler(os.Stdout,
		&slog.HandlerOptions{Level: level}))
	slog.SetDefault(cfg.logger)
}

func (cfg *APIConfig) GenerateDBConnectionString() *string {
	envOrDefault := func(envVar string, defaultVal string) string {
		envVal := os.Getenv(envVar)
		if len(envVal) == 0 {
			envVal = defaultVal
		}
		return envVal
	}

	dbUser := envOrDefault("DB_USER", "postgres")
	dbPassword := envOrDefault("DB_PASSWORD", "postgres")
	dbHost := envOrDefault("DB_HOST", "localhost")
	dbPort := envOrDefault("DB_PORT", "5432")
	dbName := envOrDefault("DB_NAME", "calendar")

	cfg.dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser,
		dbPassword,
		dbHost,
		dbPort,
		dbName,
	)
	return &cfg.dbURL
}

func (cfg *APIConfig) ConnectToDB(fs embed.FS, migrationsDir string) {
	db, err := sql.Open("postgres", cfg.dbURL)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// Default to relative directory so tests know where to find migrations
	// Otherwise, use embedded directory in a compiled binary context
	if len(migrationsDir) == 0 {
		migrationsDir = "../../sql/schema"
	} else {
		goose.SetBaseFS(fs)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		panic(err)
	}

	if err = goose.Up(db, migrationsDir); err != nil {
		slog.Error("could not apply database migrations with goose; " + err.Error())
		panic(err)
	}

	cfg.sqlDB = db
	cfg.db = database.New(db)
	cfg.access = access.NewEvaluator(dbGrantSource{q: cfg.db})
}

// DB exposes the raw handle for background workers (janitor sweep).
func (cfg *APIConfig) DB() *sql.DB {
	return cfg.sqlDB
}

// Queries exposes the query layer for background workers.
func (cfg *APIConfig) Queries() *database.Queries {
	return cfg.db
}

// SetOracle swaps the assistant backend; tests install a canned oracle here.
func (cfg *APIConfig) SetOracle(o assistant.Oracle) {
	cfg.oracle = o
}
