package cmd

import (
	"pot-portal/feature/player"

	"github.com/spf13/cobra"
)

var (
	leaderboardCount int
	leaderboardSkip  int
	deletePlayerYes  bool
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Browse the leaderboard and manage characters",
}

var playersLeaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the leaderboard",
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		players, err := player.NewService(a.client, a.logger).GetLeaderboards(cmd.Context(), leaderboardCount, leaderboardSkip)
		if err != nil {
			return err
		}
		return a.printer.Print(players)
	}),
}

var playersShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a character",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		p, err := player.NewService(a.client, a.logger).GetPlayer(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return a.printer.Print(p)
	}),
}

var playersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one of your characters",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		if !confirmAction(deletePlayerYes, "The character "+args[0]+" will be deleted permanently.") {
			a.logger.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
		if err := player.NewService(a.client, a.logger).DeletePlayer(cmd.Context(), args[0]); err != nil {
			return err
		}
		a.success("Character deleted")
		return nil
	}),
}

func init() {
	playersLeaderboardCmd.Flags().IntVar(&leaderboardCount, "count", player.DefaultLeaderboardCount, "Number of entries")
	playersLeaderboardCmd.Flags().IntVar(&leaderboardSkip, "skip", 0, "Entries to skip")
	playersDeleteCmd.Flags().BoolVar(&deletePlayerYes, "yes", false, "Skip the confirmation prompt")

	playersCmd.AddCommand(playersLeaderboardCmd, playersShowCmd, playersDeleteCmd)
	RootCmd.AddCommand(playersCmd)
}
