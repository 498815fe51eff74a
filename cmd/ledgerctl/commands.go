package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"joinerypro/internal/adapter/persistence/kvstore"
	"joinerypro/internal/adapter/persistence/repository"
	"joinerypro/internal/config"
	"joinerypro/internal/usecase"
	"joinerypro/internal/usecase/interfaces"

	"github.com/google/subcommands"
)

var commands = []subcommands.Command{
	&exportCmd{},
	&importCmd{},
	&statsCmd{},
	&lowStockCmd{},
}

func openLedger(ctx context.Context) (interfaces.ILedgerRepository, error) {
	store, err := kvstore.Open(ctx, config.FromEnv())
	if err != nil {
		return nil, err
	}
	return repository.NewLedgerRepository(ctx, store)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a full backup of the ledger as JSON" }
func (*exportCmd) Usage() string {
	return `ledgerctl export [-o <file>]

  Dumps every collection and the settings in the backup format accepted
  by "ledgerctl import" and POST /v1/backup/restore.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	raw, err := usecase.NewBackupUseCase(repo).ExportJSON(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.output == "" {
		fmt.Println(string(raw))
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, raw, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the ledger with a JSON backup" }
func (*importCmd) Usage() string {
	return `ledgerctl import -i <file>

  Replaces every collection and the settings with the content of the
  backup file. Only version "1.0" backups are accepted.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Backup file to restore.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	raw, err := os.ReadFile(c.input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	repo, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := usecase.NewBackupUseCase(repo).ImportJSON(ctx, raw); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("restored %s\n", c.input)
	return subcommands.ExitSuccess
}

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "print revenue, expenses, profit and the outstanding balance" }
func (*statsCmd) Usage() string {
	return `ledgerctl stats
`
}

func (*statsCmd) SetFlags(*flag.FlagSet) {}

func (*statsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	analytics := usecase.NewAnalyticsUseCase(repo)
	stats, err := analytics.FinancialStatsWithTrends(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	outstanding, err := analytics.OutstandingBalance(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Revenue:     %12.2f MAD (%+.1f%%)\n", stats.Revenue.Value, stats.Revenue.Trend)
	fmt.Printf("Expenses:    %12.2f MAD (%+.1f%%)\n", stats.Expenses.Value, stats.Expenses.Trend)
	fmt.Printf("Profit:      %12.2f MAD (margin %.1f%%)\n", stats.Profit.Value, stats.Profit.Trend)
	fmt.Printf("Outstanding: %12.2f MAD\n", outstanding)
	return subcommands.ExitSuccess
}

type lowStockCmd struct {
	asJSON bool
}

func (*lowStockCmd) Name() string     { return "low-stock" }
func (*lowStockCmd) Synopsis() string { return "list materials at or below their minimum level" }
func (*lowStockCmd) Usage() string {
	return `ledgerctl low-stock [-json]
`
}

func (c *lowStockCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "Print the materials as JSON.")
}

func (c *lowStockCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	low, err := usecase.NewInventoryUseCase(repo).LowStockMaterials(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.asJSON {
		if err := printJSON(os.Stdout, low); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	for _, m := range low {
		fmt.Printf("%-30s %10.2f %-6s (min %.2f)\n", m.Name, m.CurrentStock, m.Unit, m.MinStockLevel)
	}
	return subcommands.ExitSuccess
}
