package cmd

import (
	"fmt"

	"pot-portal/core/storage"
	"pot-portal/feature/moddata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportDest   string
	exportObject string
)

var mobsCmd = &cobra.Command{
	Use:   "mobs",
	Short: "Inspect and export mob spawn data",
}

var mobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List mobs and their entries",
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		mobs, err := moddata.NewService(a.client, nil, "", a.logger).GetMobData(cmd.Context())
		if err != nil {
			return err
		}
		return a.printer.Print(mobs)
	}),
}

var mobsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export mob data as the archive the mod loads",
	Long: `Fetches the current mob data, asks the backend to build the export archive
and saves it locally (mob_data.zip by default) or uploads it to object storage.

Examples:
  mobs export
  mobs export --dest ./build
  mobs export --object exports/mob_data.zip`,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		ctx := cmd.Context()

		var store storage.Client
		if exportObject != "" {
			s, err := a.storage()
			if err != nil {
				return err
			}
			store = s
		}
		svc := moddata.NewService(a.client, store, a.cfg.Storage.Bucket, a.logger)

		mobs, err := svc.GetMobData(ctx)
		if err != nil {
			return err
		}
		blob, err := svc.ExportMobData(ctx, mobs)
		if err != nil {
			return err
		}

		entries, err := moddata.ArchiveEntries(blob)
		if err != nil {
			return err
		}
		a.logger.Info("Export archive built", zap.Int("mobs", len(mobs)), zap.Int("files", len(entries)))

		location, err := svc.SaveExport(ctx, blob, moddata.Destination{Path: exportDest, Object: exportObject})
		if err != nil {
			return err
		}
		a.success(fmt.Sprintf("Exported %d mobs to %s", len(mobs), location))
		return a.printer.Print(entries)
	}),
}

func init() {
	mobsExportCmd.Flags().StringVar(&exportDest, "dest", "", "Local file or directory (default ./mob_data.zip)")
	mobsExportCmd.Flags().StringVar(&exportObject, "object", "", "Upload to this object in the storage bucket instead")
	mobsExportCmd.MarkFlagsMutuallyExclusive("dest", "object")

	mobsCmd.AddCommand(mobsListCmd, mobsExportCmd)
	RootCmd.AddCommand(mobsCmd)
}
