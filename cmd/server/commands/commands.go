package commands

import (
	"context"
	"errors"
	"fmt"

	"taskflow/internal/config"
	"taskflow/internal/database"
	"taskflow/internal/logger"
	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/server"
	"taskflow/internal/service"
	"taskflow/internal/session"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// env is the loaded configuration and logger shared by every command.
type env struct {
	cfg *config.Config
	log *logger.Logger
}

func load() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	log, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return &env{cfg: cfg, log: log}, nil
}

func (e *env) close() {
	_ = e.log.Close()
}

// withStorage opens the configured store for the duration of fn.
func (e *env) withStorage(fn func(repository.Storage) error) error {
	store, db, err := server.OpenStorage(e.cfg, e.log)
	if err != nil {
		return err
	}
	if db != nil {
		defer database.Close(db)
	}
	return fn(store)
}

// withDB opens a postgres connection for the duration of fn.
func (e *env) withDB(fn func(*gorm.DB) error) error {
	if e.cfg.Storage.Driver != config.StorageDriverPostgres {
		return errors.New("this command requires STORAGE_DRIVER=postgres")
	}
	db, err := database.Open(e.cfg.Database, e.log)
	if err != nil {
		return err
	}
	defer database.Close(db)
	return fn(db)
}

func run(fn func(*env) error) func(*cobra.Command, []string) error {
	return func(*cobra.Command, []string) error {
		e, err := load()
		if err != nil {
			return err
		}
		defer e.close()
		return fn(e)
	}
}

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: run(func(e *env) error {
			s, err := server.Init(e.cfg, e.log)
			if err != nil {
				return fmt.Errorf("server initialization failed: %w", err)
			}
			return s.Run()
		}),
	}
}

// NewMigrateCommand creates the migrate command with subcommands
func NewMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
		Long:  "Manage database migrations (up, down, version)",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Run all up migrations",
		RunE: run(func(e *env) error {
			return e.withMigrator(func(m *database.Migrator) error {
				changed, err := m.Up()
				if err != nil {
					return err
				}
				if !changed {
					e.log.Infow("No migrations to apply")
					return nil
				}
				e.log.Infow("Migrations applied")
				return nil
			})
		}),
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Run all down migrations",
		RunE: run(func(e *env) error {
			return e.withMigrator(func(m *database.Migrator) error {
				changed, err := m.Down()
				if err != nil {
					return err
				}
				if !changed {
					e.log.Infow("No migrations to roll back")
					return nil
				}
				e.log.Infow("Migrations rolled back")
				return nil
			})
		}),
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print current migration version",
		RunE: run(func(e *env) error {
			return e.withMigrator(func(m *database.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Printf("version=%d dirty=%t\n", version, dirty)
				return nil
			})
		}),
	})

	return migrateCmd
}

func (e *env) withMigrator(fn func(*database.Migrator) error) error {
	return e.withDB(func(db *gorm.DB) error {
		m, err := database.NewMigrator(db)
		if err != nil {
			return err
		}
		return fn(m)
	})
}

func NewSeedCommand() *cobra.Command {
	var sample bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the default team members",
		RunE: run(func(e *env) error {
			return e.withStorage(func(store repository.Storage) error {
				ctx := context.Background()
				if err := store.SeedDefaultTeamMembers(ctx); err != nil {
					return err
				}
				e.log.Infow("Default team members seeded")
				if !sample {
					return nil
				}
				tasks := service.NewTaskService(store, nil, e.log)
				return service.NewDataService(store, tasks, e.log).SeedSample(ctx)
			})
		}),
	}
	cmd.Flags().BoolVar(&sample, "sample", false, "Also add sample categories and tasks")
	return cmd
}

func NewClearAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-all",
		Short: "Delete all tasks, categories, time entries and activities, then restore the default team",
		RunE: run(func(e *env) error {
			return e.withStorage(func(store repository.Storage) error {
				tasks := service.NewTaskService(store, nil, e.log)
				return service.NewDataService(store, tasks, e.log).ClearAllData(context.Background())
			})
		}),
	}
}

// NewUserCommand creates the user management command
func NewUserCommand() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "User management commands",
	}

	var in service.UpsertUserInput
	createUserCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user, or reset the password and role of an existing one",
		RunE: run(func(e *env) error {
			return e.withStorage(func(store repository.Storage) error {
				user, err := service.NewAuthService(store).EnsureUser(context.Background(), in)
				if err != nil {
					return err
				}
				e.log.Infow("User saved", "user_id", user.ID, "username", user.Username, "role", user.Role)
				return nil
			})
		}),
	}

	createUserCmd.Flags().StringVar(&in.Username, "username", "", "Username (required)")
	createUserCmd.Flags().StringVar(&in.Password, "password", "", "Password (required)")
	createUserCmd.Flags().StringVar(&in.Role, "role", model.RoleMember, "Role (guest, member, admin, super_admin)")
	createUserCmd.Flags().StringVar(&in.Email, "email", "", "Email")
	createUserCmd.Flags().StringVar(&in.FirstName, "first-name", "", "First name")
	createUserCmd.Flags().StringVar(&in.LastName, "last-name", "", "Last name")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")

	userCmd.AddCommand(createUserCmd)
	return userCmd
}

func NewSessionsCommand() *cobra.Command {
	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "Session maintenance commands",
	}

	sessionsCmd.AddCommand(&cobra.Command{
		Use:   "prune",
		Short: "Delete expired sessions from the database store",
		RunE: run(func(e *env) error {
			return e.withDB(func(db *gorm.DB) error {
				n, err := session.NewGormStore(db).Prune(context.Background())
				if err != nil {
					return err
				}
				e.log.Infow("Expired sessions pruned", "count", n)
				return nil
			})
		}),
	})

	return sessionsCmd
}
