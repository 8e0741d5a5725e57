package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"fdrates/internal/domain/service/rates"
	"fdrates/internal/domain/value"
	"fdrates/internal/viewer"
)

var (
	flagServer      string
	flagAmount      string
	flagBank        string
	flagMinTerm     int
	flagFDType      string
	flagPayout      string
	flagInstitution string
	flagSort        string
	flagTimeout     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "fdq",
	Short: "Fixed deposit rate viewer",
	Long:  "Compare fixed deposit offers: filter by bank, term and payout schedule, see the compounded payout for your amount.",
	RunE:  runView,
}

func init() {
	rootCmd.Flags().StringVarP(&flagServer, "server", "s", "http://localhost:8080", "Rates server URL")
	rootCmd.Flags().StringVarP(&flagAmount, "amount", "a", "100000", "Investment amount")
	rootCmd.Flags().StringVarP(&flagBank, "bank", "b", "", "Filter by bank name (substring match)")
	rootCmd.Flags().IntVar(&flagMinTerm, "min-term", 0, "Minimum term in months")
	rootCmd.Flags().StringVar(&flagFDType, "fd-type", "", `Filter by FD type ("Standard", "Senior Citizen")`)
	rootCmd.Flags().StringVar(&flagPayout, "payout", "", `Filter by payout schedule ("At Maturity", "Monthly", "Annually")`)
	rootCmd.Flags().StringVar(&flagInstitution, "institution", "", `Filter by institution type ("Bank", "Finance Company")`)
	rootCmd.Flags().StringVar(&flagSort, "sort", "payout", `Sort order: "payout" (highest first) or "term" (shortest first)`)
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "Request timeout")
}

func runView(cmd *cobra.Command, _ []string) error {
	// Zero or negative amounts are not rejected: the payout comes out
	// degenerate but the math still holds.
	amount, err := decimal.NewFromString(flagAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: expected a number", flagAmount)
	}

	sortKey, err := rates.ParseSortKey(flagSort)
	if err != nil {
		return fmt.Errorf("invalid sort %q: expected \"payout\" or \"term\"", flagSort)
	}

	opts := viewer.Options{
		Amount: amount,
		Filter: rates.Filter{
			BankName:        flagBank,
			MinTermMonths:   flagMinTerm,
			FDType:          value.FDType(flagFDType),
			PayoutSchedule:  value.PayoutSchedule(flagPayout),
			InstitutionType: value.InstitutionType(flagInstitution),
		},
		Sort: sortKey,
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
	defer cancel()

	v := viewer.New(viewer.NewClient(flagServer, flagTimeout), os.Stdout)

	if err := v.Run(ctx, opts); err != nil {
		// Баннер уже на экране, детали не показываем
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return err
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
