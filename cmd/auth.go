package cmd

import (
	"pot-portal/feature/user"

	"github.com/spf13/cobra"
)

var (
	authEmail       string
	authPassword    string
	authProfileName string
	resetToken      string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session token",
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		email, err := prompt(authEmail, "Email")
		if err != nil {
			return err
		}
		password, err := prompt(authPassword, "Password")
		if err != nil {
			return err
		}

		svc := user.NewService(a.client, a.session, nil, a.logger)
		u, err := svc.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}
		a.success("Logged in as " + u.ProfileName)
		return a.printer.Print(u)
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		if err := user.NewService(a.client, a.session, nil, a.logger).Signout(); err != nil {
			return err
		}
		a.success("Logged out")
		return nil
	}),
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account",
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		email, err := prompt(authEmail, "Email")
		if err != nil {
			return err
		}
		password, err := prompt(authPassword, "Password")
		if err != nil {
			return err
		}
		profileName, err := prompt(authProfileName, "Profile name")
		if err != nil {
			return err
		}

		svc := user.NewService(a.client, a.session, nil, a.logger)
		u, err := svc.Signup(cmd.Context(), email, password, profileName)
		if err != nil {
			return err
		}
		if u == nil {
			a.success("Account created, check your inbox before logging in")
			return nil
		}
		a.success("Account created, logged in as " + u.ProfileName)
		return a.printer.Print(u)
	}),
}

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Reset a forgotten password",
}

var passwordForgotCmd = &cobra.Command{
	Use:   "forgot",
	Short: "Request a password reset mail",
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		email, err := prompt(authEmail, "Email")
		if err != nil {
			return err
		}
		if err := user.NewService(a.client, a.session, nil, a.logger).ForgotPassword(cmd.Context(), email); err != nil {
			return err
		}
		a.success("If the address is registered, a reset mail is on its way")
		return nil
	}),
}

var passwordResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Set a new password with the token from the reset mail",
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		email, err := prompt(authEmail, "Email")
		if err != nil {
			return err
		}
		token, err := prompt(resetToken, "Reset token")
		if err != nil {
			return err
		}
		password, err := prompt(authPassword, "New password")
		if err != nil {
			return err
		}
		if err := user.NewService(a.client, a.session, nil, a.logger).ResetPassword(cmd.Context(), email, token, password); err != nil {
			return err
		}
		a.success("Password changed, you can log in now")
		return nil
	}),
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, signupCmd, passwordForgotCmd, passwordResetCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "Account email (prompted when empty)")
	}
	for _, c := range []*cobra.Command{loginCmd, signupCmd, passwordResetCmd} {
		c.Flags().StringVar(&authPassword, "password", "", "Password (prompted when empty)")
	}
	signupCmd.Flags().StringVar(&authProfileName, "profile-name", "", "Public profile name (prompted when empty)")
	passwordResetCmd.Flags().StringVar(&resetToken, "token", "", "Token from the reset mail (prompted when empty)")

	passwordCmd.AddCommand(passwordForgotCmd, passwordResetCmd)
	RootCmd.AddCommand(loginCmd, logoutCmd, signupCmd, passwordCmd)
}
