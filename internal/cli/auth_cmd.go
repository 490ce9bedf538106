package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSignupCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := collectCredentials(app, &username, &password, true); err != nil {
				return err
			}
			if err := app.Auth.SignUp(context.Background(), username, password); err != nil {
				return err
			}
			fmt.Printf("환영합니다, %s님! 기본 시간표로 3주가 준비되었습니다.\n", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password")

	return cmd
}

func newLoginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as an existing user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := collectCredentials(app, &username, &password, false); err != nil {
				return err
			}
			if err := app.Auth.LogIn(context.Background(), username, password); err != nil {
				return err
			}
			fmt.Printf("환영합니다, %s님!\n", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.LogOut(context.Background()); err != nil {
				return err
			}
			fmt.Println("로그아웃 되었습니다.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(context.Background(), app)
			if err != nil {
				return err
			}
			fmt.Println(user)
			return nil
		},
	}
}

// collectCredentials fills missing credentials from an interactive form, or
// fails when not attached to a terminal.
func collectCredentials(app *App, username, password *string, confirm bool) error {
	if *username != "" && *password != "" {
		return nil
	}
	if !app.interactive() {
		return fmt.Errorf("--username and --password are required in non-interactive mode")
	}
	return credentialsForm(username, password, confirm).Run()
}
