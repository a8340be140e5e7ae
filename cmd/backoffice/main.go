// cmd/backoffice/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bitvara/backoffice/internal/auth"
	"github.com/bitvara/backoffice/internal/config"
	"github.com/bitvara/backoffice/internal/db"
	"github.com/bitvara/backoffice/internal/repository"
	"github.com/bitvara/backoffice/internal/service"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbConnString string

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (defaults to environment configuration)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(superadminCmd)
}

var rootCmd = &cobra.Command{
	Use:   "backoffice",
	Short: "Back office administration tool",
	Long:  `Administrative commands for the back office: schema migrations, seed data and account management.`,
}

func connString() string {
	if dbConnString != "" {
		return dbConnString
	}
	return config.Load().DSN()
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := db.Migrate(ctx, connString()); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		fmt.Println("Migrations applied")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the module catalog and plan matrix",
	Run: func(cmd *cobra.Command, args []string) {
		gdb, err := openGorm()
		if err != nil {
			log.Fatalf("Connecting to database: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := db.Seed(ctx, gdb); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		fmt.Println("Seed data applied")
	},
}

var superadminCmd = &cobra.Command{
	Use:   "make-superadmin [email]",
	Short: "Grant the superadmin flag to an existing account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		gdb, err := openGorm()
		if err != nil {
			log.Fatalf("Connecting to database: %v", err)
		}

		cfg := config.Load()
		userRepo := repository.NewUserRepository(gdb)
		userService := service.NewUserService(
			userRepo,
			auth.NewPasswordHasher(),
			auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod),
			nil,
			cfg,
		)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		user, err := userService.PromoteSuperadmin(ctx, args[0])
		if err != nil {
			log.Fatalf("Promoting user: %v", err)
		}
		fmt.Printf("%s is now a superadmin\n", user.Email)
	},
}

func openGorm() (*gorm.DB, error) {
	return gorm.Open(postgres.Open(connString()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
