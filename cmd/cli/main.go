package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/bankrecon/internal/adapter/fuzzy"
	"github.com/iho/bankrecon/internal/adapter/idgen"
	"github.com/iho/bankrecon/internal/adapter/loader"
	"github.com/iho/bankrecon/internal/domain"
	"github.com/iho/bankrecon/internal/usecase"
)

var (
	ledgerFile string
	bankFile   string

	ledgerDateCol  string
	ledgerDescCol  string
	ledgerDebitCol string
	ledgerRefCol   string
	bankDateCol    string
	bankDescCol    string
	bankDebitCol   string
	bankRefCol     string

	dateTolerance   int
	amountTolerance string
	separator       string
	useFuzzy        bool
	fuzzySimilarity float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bankrecon-cli",
		Short: "BankRecon CLI tool",
		Long:  `A command line interface for reconciling ledger and bank statement files.`,
	}

	reconcileCmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile a ledger file against a bank statement file",
		Run: func(cmd *cobra.Command, args []string) {
			runReconcile()
		},
	}
	reconcileCmd.Flags().StringVar(&ledgerFile, "ledger", "", "Ledger file (csv or xlsx)")
	reconcileCmd.Flags().StringVar(&bankFile, "bank", "", "Bank statement file (csv or xlsx)")
	reconcileCmd.Flags().StringVar(&ledgerDateCol, "ledger-date", "Date", "Ledger date column")
	reconcileCmd.Flags().StringVar(&ledgerDescCol, "ledger-description", "", "Ledger description column")
	reconcileCmd.Flags().StringVar(&ledgerDebitCol, "ledger-debit", "Debit", "Ledger debit column")
	reconcileCmd.Flags().StringVar(&ledgerRefCol, "ledger-reference", "", "Ledger reference number column")
	reconcileCmd.Flags().StringVar(&bankDateCol, "bank-date", "Date", "Bank date column")
	reconcileCmd.Flags().StringVar(&bankDescCol, "bank-description", "", "Bank description column")
	reconcileCmd.Flags().StringVar(&bankDebitCol, "bank-debit", "Debit", "Bank debit column")
	reconcileCmd.Flags().StringVar(&bankRefCol, "bank-reference", "", "Bank reference number column")
	reconcileCmd.Flags().IntVar(&dateTolerance, "date-tolerance", 1, "Base date tolerance in days")
	reconcileCmd.Flags().StringVar(&amountTolerance, "amount-tolerance", "0.5", "Base amount tolerance in percent")
	reconcileCmd.Flags().StringVar(&separator, "separator", ",", "Thousands separator (\",\" or \".\")")
	reconcileCmd.Flags().BoolVar(&useFuzzy, "fuzzy", false, "Enable fuzzy description matching")
	reconcileCmd.Flags().Float64Var(&fuzzySimilarity, "fuzzy-similarity", fuzzy.DefaultSimilarityThreshold, "Fuzzy similarity threshold")
	_ = reconcileCmd.MarkFlagRequired("ledger")
	_ = reconcileCmd.MarkFlagRequired("bank")
	rootCmd.AddCommand(reconcileCmd)

	benfordCmd := &cobra.Command{
		Use:   "benford",
		Short: "Run a leading-digit analysis over a ledger file",
		Run: func(cmd *cobra.Command, args []string) {
			runBenford()
		},
	}
	benfordCmd.Flags().StringVar(&ledgerFile, "ledger", "", "Ledger file (csv or xlsx)")
	benfordCmd.Flags().StringVar(&ledgerDebitCol, "debit", "Debit", "Debit column")
	_ = benfordCmd.MarkFlagRequired("ledger")
	rootCmd.AddCommand(benfordCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadRecords(path string) ([]domain.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loader.ReadXLSX(path)
	default:
		return loader.ReadCSVFile(path)
	}
}

func runReconcile() {
	ledgerRecords, err := loadRecords(ledgerFile)
	if err != nil {
		fmt.Printf("Failed to load ledger file: %v\n", err)
		os.Exit(1)
	}
	bankRecords, err := loadRecords(bankFile)
	if err != nil {
		fmt.Printf("Failed to load bank file: %v\n", err)
		os.Exit(1)
	}

	amountPct, err := decimal.NewFromString(amountTolerance)
	if err != nil {
		fmt.Printf("Invalid amount tolerance: %v\n", err)
		os.Exit(1)
	}

	var matcher usecase.FuzzyMatcher
	if useFuzzy {
		matcher = fuzzy.NewLevenshteinMatcher(fuzzySimilarity)
	}

	uc := usecase.NewReconciliationUseCase(matcher, idgen.NewULIDGenerator(), zerolog.Nop())

	result, err := uc.Reconcile(context.Background(), usecase.ReconcileInput{
		LedgerRecords: ledgerRecords,
		BankRecords:   bankRecords,
		LedgerMapping: domain.ColumnMapping{
			Date:        ledgerDateCol,
			Description: ledgerDescCol,
			Debit:       ledgerDebitCol,
			Reference:   ledgerRefCol,
		},
		BankMapping: domain.ColumnMapping{
			Date:        bankDateCol,
			Description: bankDescCol,
			Debit:       bankDebitCol,
			Reference:   bankRefCol,
		},
		Tolerances: domain.Tolerances{
			DateDays:      dateTolerance,
			AmountPercent: amountPct,
		},
		Separator:        domain.ThousandsSeparator(separator),
		UseFuzzyMatching: useFuzzy,
		FuzzyTimeout:     30 * time.Second,
	})
	if err != nil {
		fmt.Printf("Reconciliation failed: %v\n", err)
		os.Exit(1)
	}

	printJSON(result)
}

func runBenford() {
	records, err := loadRecords(ledgerFile)
	if err != nil {
		fmt.Printf("Failed to load ledger file: %v\n", err)
		os.Exit(1)
	}

	points := usecase.AnalyzeLeadingDigits(records, domain.ColumnMapping{Debit: ledgerDebitCol})
	printJSON(map[string]any{"points": points})
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
