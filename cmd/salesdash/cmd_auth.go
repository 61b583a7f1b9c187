package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagEmail    string
	flagPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the ERP and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		email := flagEmail
		password := flagPassword
		if email == "" {
			email = prompt("Email: ")
		}
		if password == "" {
			password = prompt("Password: ")
		}

		mgr, _ := newSession(cfg)
		if err := mgr.Login(context.Background(), email, password); err != nil {
			logger.Warn("login failed", zap.String("email", email))
			return err
		}
		sess := mgr.Current()
		logger.Info("logged in", zap.String("email", sess.User.Email), zap.String("role", sess.User.Role))
		fmt.Printf("logged in as %s (%s)\n", sess.User.Name, sess.User.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, _ := newSession(cfg)
		if !mgr.LoggedIn() {
			fmt.Println("not logged in")
			return nil
		}
		mgr.Logout(context.Background())
		fmt.Println("logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, _ := newSession(cfg)
		sess := mgr.Current()
		if sess == nil {
			fmt.Println("not logged in")
			return nil
		}
		fmt.Printf("%s <%s> role=%s\n", sess.User.Name, sess.User.Email, sess.User.Role)
		return nil
	},
}

func prompt(label string) string {
	fmt.Print(label)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}

func init() {
	loginCmd.Flags().StringVar(&flagEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&flagPassword, "password", "", "account password")
}
