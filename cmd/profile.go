package cmd

import (
	"errors"

	"pot-portal/feature/user"

	"github.com/spf13/cobra"
)

var (
	newProfileName string
	unlinkYes      bool
)

var errNotLoggedIn = errors.New("not logged in, run 'pot-portal login' first")

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and manage your profile",
	RunE:  runProfileShow,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the logged-in profile",
	RunE:  runProfileShow,
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change your public profile name",
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		name, err := prompt(newProfileName, "Profile name")
		if err != nil {
			return err
		}
		svc := user.NewService(a.client, a.session, nil, a.logger)
		u, err := svc.UpdateProfile(cmd.Context(), name)
		if err != nil {
			return err
		}
		a.success("Profile updated")
		return a.printer.Print(u)
	}),
}

var profileUnlinkSteamCmd = &cobra.Command{
	Use:   "unlink-steam",
	Short: "Detach your Steam account",
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		if !confirmAction(unlinkYes, "Your characters will no longer sync until you link Steam again.") {
			a.logger.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
		svc := user.NewService(a.client, a.session, nil, a.logger)
		if _, err := svc.UnlinkSteam(cmd.Context()); err != nil {
			return err
		}
		a.success("Steam account unlinked")
		return nil
	}),
}

var profilePlayersCmd = &cobra.Command{
	Use:   "players [profile-name]",
	Short: "List the characters of a profile (yours by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		svc := user.NewService(a.client, a.session, nil, a.logger)

		name := ""
		if len(args) == 1 {
			name = args[0]
		} else {
			u, err := svc.GetProfile(cmd.Context())
			if err != nil {
				return err
			}
			if u == nil {
				return errNotLoggedIn
			}
			name = u.ProfileName
		}

		players, err := svc.GetPlayers(cmd.Context(), name)
		if err != nil {
			return err
		}
		return a.printer.Print(players)
	}),
}

var runProfileShow = withApp(func(cmd *cobra.Command, args []string, a *app) error {
	u, err := user.NewService(a.client, a.session, nil, a.logger).GetProfile(cmd.Context())
	if err != nil {
		return err
	}
	if u == nil {
		return errNotLoggedIn
	}
	return a.printer.Print(u)
})

func init() {
	profileUpdateCmd.Flags().StringVar(&newProfileName, "profile-name", "", "New profile name (prompted when empty)")
	profileUnlinkSteamCmd.Flags().BoolVar(&unlinkYes, "yes", false, "Skip the confirmation prompt")

	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd, profileUnlinkSteamCmd, profilePlayersCmd)
	RootCmd.AddCommand(profileCmd)
}
