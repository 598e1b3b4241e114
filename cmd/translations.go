package cmd

import (
	"fmt"
	"os"

	"pot-portal/core/storage"
	"pot-portal/feature/translation"
	"pot-portal/feature/translation/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importLanguage    string
	importCategory    string
	importFromObject  bool
	importApply       bool
	importDryRun      bool
	importOffline     bool
	importConcurrency int
	translationsYes   bool
	listOffline       bool
)

var translationsCmd = &cobra.Command{
	Use:   "translations",
	Short: "Manage localization entries",
}

var translationsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a localization file",
	Long: `Parse a localization file and create the entries the backend does not have yet.
Existing entries are never overwritten.

Without --apply the command only reports what would be created.

Examples:
  # Report only
  translations import ru-RU/Affixes.hjson --language ru-RU --category Affixes

  # Create missing entries (with interactive confirmation)
  translations import ru-RU/Affixes.hjson --language ru-RU --category Affixes --apply

  # Read the file from the storage bucket and auto-confirm
  translations import Localization/ru-RU/Affixes.hjson --object --language ru-RU --category Affixes --apply --yes

  # Plan against the last local snapshot without contacting the backend
  translations import ru-RU/Affixes.hjson --language ru-RU --category Affixes --offline`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runTranslationsImport),
}

var translationsListCmd = &cobra.Command{
	Use:   "list <language>",
	Short: "List the entries of a language",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		language, err := translation.ValidateLanguage(args[0])
		if err != nil {
			return err
		}
		var entries models.TranslationEntries
		if listOffline {
			repo, err := openRepository(cmd, a)
			if err != nil {
				return err
			}
			entries, err = newTranslationService(a, repo).LocalEntries(cmd.Context(), language)
			if err != nil {
				return err
			}
		} else {
			entries, err = newTranslationService(a, nil).GetByLanguage(cmd.Context(), language)
			if err != nil {
				return err
			}
		}
		return a.printer.Print(entries)
	}),
}

var translationsCheckCmd = &cobra.Command{
	Use:   "check <language>",
	Short: "Report missing, orphaned and inconsistent translations",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		report, err := newTranslationService(a, nil).Check(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		a.logger.Info("Coverage report",
			zap.String("language", report.Language),
			zap.Int("english_total", report.EnglishTotal),
			zap.Int("translated", report.Translated),
			zap.Int("missing", len(report.Missing)),
			zap.Int("orphans", len(report.Orphans)),
			zap.Int("placeholder_mismatches", len(report.PlaceholderMismatches)),
		)
		return a.printer.Print(report)
	}),
}

var translationsSnapshotCmd = &cobra.Command{
	Use:   "snapshot <language>",
	Short: "Store the keys of a language locally for offline imports",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		language, err := translation.ValidateLanguage(args[0])
		if err != nil {
			return err
		}
		repo, err := openRepository(cmd, a)
		if err != nil {
			return err
		}
		n, err := newTranslationService(a, repo).SaveSnapshot(cmd.Context(), language)
		if err != nil {
			return err
		}
		a.success(fmt.Sprintf("Saved %d %s entries", n, language))
		return nil
	}),
}

var translationsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		if !confirmAction(translationsYes, "Entry "+args[0]+" will be deleted.") {
			a.logger.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
		if err := newTranslationService(a, nil).Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		a.success("Entry deleted")
		return nil
	}),
}

func newTranslationService(a *app, repo *translation.Repository) *translation.Service {
	return translation.NewService(a.client, repo, a.logger, translation.DefaultKeyCacheTTL)
}

func openRepository(cmd *cobra.Command, a *app) (*translation.Repository, error) {
	db, err := a.database()
	if err != nil {
		return nil, err
	}
	repo := translation.NewRepository(db)
	if err := repo.Migrate(cmd.Context()); err != nil {
		return nil, err
	}
	return repo, nil
}

func readImportSource(cmd *cobra.Command, a *app, name string) (string, error) {
	if !importFromObject {
		data, err := os.ReadFile(name)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", name, err)
		}
		return string(data), nil
	}

	client, err := a.storage()
	if err != nil {
		return "", err
	}
	data, err := storage.ReadObject(cmd.Context(), client, a.cfg.Storage.Bucket, name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runTranslationsImport(cmd *cobra.Command, args []string, a *app) error {
	ctx := cmd.Context()

	text, err := readImportSource(cmd, a, args[0])
	if err != nil {
		return err
	}

	var repo *translation.Repository
	if importOffline {
		if repo, err = openRepository(cmd, a); err != nil {
			return err
		}
	}
	svc := newTranslationService(a, repo)

	req := translation.ImportRequest{
		Text:        text,
		Language:    importLanguage,
		Category:    importCategory,
		DryRun:      importDryRun,
		Concurrency: importConcurrency,
		Offline:     importOffline,
	}

	// Step 1: Plan (always runs)
	plan, err := svc.Import(ctx, req)
	if err != nil {
		return err
	}
	printImportPlan(a.logger, plan)

	// Step 2: Apply only when requested
	if !importApply {
		a.logger.Info("No changes requested. Use --apply to create the new entries.")
		return a.printer.Print(plan)
	}
	if importDryRun {
		a.logger.Info("Dry-run mode: No changes were made.")
		return a.printer.Print(plan)
	}
	if plan.Stats.Added == 0 {
		a.logger.Info("Nothing to create, every key already exists.")
		return nil
	}
	if !confirmAction(translationsYes, fmt.Sprintf("%d entries will be created for %s.", plan.Stats.Added, plan.Language)) {
		a.logger.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	req.Confirmed = true
	result, err := svc.Import(ctx, req)
	if result != nil && result.Created > 0 {
		a.logger.Info("Entries created before stopping", zap.Int("count", result.Created))
	}
	if err != nil {
		return err
	}

	a.success(result.Summary())
	return nil
}

// printImportPlan logs the plan counts and a sample of new keys.
func printImportPlan(l *zap.Logger, plan *models.ImportResult) {
	l.Info("Import report",
		zap.String("language", plan.Language),
		zap.String("category", plan.Category),
		zap.Int("total", plan.Stats.Total),
		zap.Int("new", plan.Stats.Added),
		zap.Int("existing", plan.Stats.Skipped),
	)

	maxShow := min(5, len(plan.Entries))
	for _, e := range plan.Entries[:maxShow] {
		l.Info("New entry", zap.String("key", e.Key), zap.String("value", e.Value))
	}
	if len(plan.Entries) > maxShow {
		l.Info("Additional entries not shown", zap.Int("count", len(plan.Entries)-maxShow))
	}
}

func init() {
	fl := translationsImportCmd.Flags()
	fl.StringVar(&importLanguage, "language", "", "Target language code, e.g. ru-RU")
	fl.StringVar(&importCategory, "category", "", "Category the file belongs to, e.g. Affixes")
	fl.BoolVar(&importFromObject, "object", false, "Read <file> from the storage bucket")
	fl.BoolVar(&importApply, "apply", false, "Create the new entries")
	fl.BoolVar(&importDryRun, "dry-run", false, "Force dry-run (no changes even with --apply --yes)")
	fl.BoolVar(&importOffline, "offline", false, "Plan against the local snapshot")
	fl.IntVar(&importConcurrency, "concurrency", 4, "Parallel create requests")
	fl.BoolVar(&translationsYes, "yes", false, "Auto-confirm (non-interactive)")
	_ = translationsImportCmd.MarkFlagRequired("language")
	_ = translationsImportCmd.MarkFlagRequired("category")
	translationsImportCmd.MarkFlagsMutuallyExclusive("offline", "apply")

	translationsListCmd.Flags().BoolVar(&listOffline, "offline", false, "List the last local snapshot instead of the backend entries")
	translationsDeleteCmd.Flags().BoolVar(&translationsYes, "yes", false, "Skip the confirmation prompt")

	translationsCmd.AddCommand(
		translationsImportCmd,
		translationsListCmd,
		translationsCheckCmd,
		translationsSnapshotCmd,
		translationsDeleteCmd,
	)
	RootCmd.AddCommand(translationsCmd)
}
