package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"inkwell/app/config"
	"inkwell/app/repositories"
	"inkwell/app/routes"
	"inkwell/app/seed"
	"inkwell/app/services"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve()
	case "migrate":
		migrate()
	case "seed":
		runSeed()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command>
Commands:
  help       Display this help message.
  version    Show version information.
  migrate    Create or update the database schema.
  seed       Fill the database with demo users, authors, posts and comments.
  serve      Run the blog API server.

Configuration comes from the environment: DATABASE_URL, HTTP_PORT,
ALLOW_MULTIPLE_AUTHOR_PROFILES.
`
	fmt.Println(helpText)
}

func serve() {
	cfg := config.Load()
	db := mustOpenDatabase(cfg)

	if err := repositories.AutoMigrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	authorRepo := repositories.NewGormAuthorRepository(db)
	postRepo := repositories.NewGormPostRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)
	userRepo := repositories.NewGormUserRepository(db)
	tokenRepo := repositories.NewGormTokenRepository(db)

	router := routes.SetupRoutes(routes.Deps{
		Auth:     services.NewAuthService(userRepo, tokenRepo),
		Authors:  services.NewAuthorService(authorRepo, cfg.AllowMultipleAuthorProfiles),
		Posts:    services.NewPostService(postRepo, authorRepo, commentRepo),
		Comments: services.NewCommentService(commentRepo, postRepo),
	})

	addr := ":" + cfg.HTTPPort
	slog.Info("inkwell api listening", "addr", addr)
	if err := routes.StartServer(addr, router); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func migrate() {
	cfg := config.Load()
	db := mustOpenDatabase(cfg)
	if err := repositories.AutoMigrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("schema up to date")
}

func runSeed() {
	cfg := config.Load()
	db := mustOpenDatabase(cfg)
	if err := repositories.AutoMigrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if err := seed.Run(db); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}

func mustOpenDatabase(cfg config.Config) *gorm.DB {
	db, err := openDatabase(cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	return db
}

func openDatabase(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("resolve sql db handle: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
