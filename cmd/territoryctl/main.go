package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fieldworks/territory/internal/config"
	"github.com/fieldworks/territory/internal/identity"
	"github.com/fieldworks/territory/internal/repository"
	"github.com/fieldworks/territory/internal/seed"
	"github.com/fieldworks/territory/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	backfillEmail   string
	backfillCompany string
)

func init() {
	backfillCmd.Flags().StringVarP(&backfillEmail, "email", "e", "", "Email of the user owning the migrated records")
	backfillCmd.Flags().StringVarP(&backfillCompany, "company", "c", "", "Target company id")
	backfillCmd.MarkFlagRequired("email")
	backfillCmd.MarkFlagRequired("company")

	rootCmd.AddCommand(backfillCmd)
	rootCmd.AddCommand(seedCheckCmd)
}

var rootCmd = &cobra.Command{
	Use:   "territoryctl",
	Short: "territoryctl is the operator CLI for the territory service",
	Long:  `territoryctl runs one-off administrative tasks against the territory database.`,
}

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Assign a company id to legacy records",
	Long: `Backfill assigns the given company id to every record that has none,
collection by collection, and links the user's profile to that company.
Safe to re-run: migrated records are never selected again.`,
	Run: func(cmd *cobra.Command, args []string) {
		companyID, err := uuid.Parse(backfillCompany)
		if err != nil {
			log.Fatalf("Invalid company id: %v", err)
		}

		cfg := config.Load()
		db, err := openDatabase(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		backfill := service.NewBackfillService(
			identity.NewStore(db),
			repository.NewBackfillRepository(db),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		result := backfill.Backfill(ctx, service.BackfillInput{
			UserEmail: backfillEmail,
			CompanyID: companyID,
		})
		if !result.Success {
			log.Fatalf("Backfill failed after %d records: %s", result.Updated, result.Message)
		}

		fmt.Println(result.Message)
	},
}

var seedCheckCmd = &cobra.Command{
	Use:   "seed-check",
	Short: "Verify the template dataset is internally consistent",
	Long:  `Checks every template record's account references against the template accounts.`,
	Run: func(cmd *cobra.Command, args []string) {
		bundle := seed.DefaultBundle()

		accounts := make(map[uuid.UUID]bool, len(bundle.Accounts))
		numbers := make(map[string]bool, len(bundle.Accounts))
		for _, a := range bundle.Accounts {
			accounts[a.ID] = true
			numbers[a.AccountNumber] = true
		}

		broken := 0
		for _, ap := range bundle.AccountProducts {
			if !accounts[ap.AccountID] {
				fmt.Printf("account product %s references unknown account %s\n", ap.ID, ap.AccountID)
				broken++
			}
		}
		for _, sl := range bundle.ShippingLocations {
			if !accounts[sl.OriginalAccountID] || !accounts[sl.RelatedAccountID] {
				fmt.Printf("shipping location %s references an unknown account\n", sl.ID)
				broken++
			}
		}
		for _, cn := range bundle.CallNotes {
			if !accounts[cn.AccountID] {
				fmt.Printf("call note %s references unknown account %s\n", cn.ID, cn.AccountID)
				broken++
			}
		}
		for _, c := range bundle.Contacts {
			if c.AccountNumber != "" && !numbers[c.AccountNumber] {
				fmt.Printf("contact %s references unknown account number %s\n", c.ID, c.AccountNumber)
				broken++
			}
		}

		if broken > 0 {
			fmt.Printf("%d broken references\n", broken)
			os.Exit(1)
		}

		fmt.Printf("Template dataset is consistent: %d accounts, %d contacts, %d products\n",
			len(bundle.Accounts), len(bundle.Contacts), len(bundle.Products))
	},
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return db, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
