package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lizexpress.backend/internal/config"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	domainrepo "lizexpress.backend/internal/domain/repositories"
	"lizexpress.backend/internal/infrastructure/repositories"
	"lizexpress.backend/pkg/crypto"
)

var openBootstrapDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

var openBootstrapSQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

type bootstrapDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (domainrepo.UserRepository, io.Closer, error)
	out     io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultBootstrapDeps() bootstrapDeps {
	return bootstrapDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (domainrepo.UserRepository, io.Closer, error) {
			db, err := openBootstrapDB(cfg.Database.URL())
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}
			sqlDB, err := openBootstrapSQLDB(db)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}
			return repositories.NewUserRepository(db), sqlDB, nil
		},
		out: os.Stdout,
	}
}

func validateBootstrapInput(email, password string) error {
	if email == "" {
		return fmt.Errorf("--email is required")
	}
	if len(password) < 8 {
		return fmt.Errorf("--password must be at least 8 characters")
	}
	return nil
}

// runBootstrap creates an ADMIN account, or promotes the account to
// ADMIN if the email is already registered.
func runBootstrap(args []string, deps bootstrapDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.prepare == nil {
		def := defaultBootstrapDeps()
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("admin-bootstrap", flag.ContinueOnError)
	emailFlag := fs.String("email", "", "admin email (required)")
	passwordFlag := fs.String("password", "", "admin password (required, min 8 chars)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := validateBootstrapInput(*emailFlag, *passwordFlag); err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	userRepo, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx := context.Background()

	existing, err := userRepo.GetByEmail(ctx, *emailFlag)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return fmt.Errorf("failed to look up account: %w", err)
	}
	if existing != nil {
		if existing.Role == entities.UserRoleAdmin {
			_, _ = fmt.Fprintf(deps.out, "account %s is already ADMIN (id=%s)\n", existing.Email, existing.ID)
			return nil
		}
		existing.Role = entities.UserRoleAdmin
		if err := userRepo.Update(ctx, existing); err != nil {
			return fmt.Errorf("failed to promote account: %w", err)
		}
		_, _ = fmt.Fprintf(deps.out, "promoted %s to ADMIN (id=%s)\n", existing.Email, existing.ID)
		return nil
	}

	hash, err := crypto.HashPassword(*passwordFlag)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		ID:           uuid.New(),
		Email:        *emailFlag,
		PasswordHash: hash,
		Role:         entities.UserRoleAdmin,
		Status:       entities.UserStatusActive,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "Created ADMIN account")
	_, _ = fmt.Fprintf(deps.out, "user_id=%s\n", user.ID)
	_, _ = fmt.Fprintf(deps.out, "email=%s\n", user.Email)
	return nil
}

func main() {
	if err := runBootstrap(os.Args[1:], defaultBootstrapDeps()); err != nil {
		log.Fatal(err)
	}
}
