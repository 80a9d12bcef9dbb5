// Command storefrontctl is a small console client for the storefront API. It
// keeps a login session so successive invocations stay authenticated, the
// same way the web client keeps its auth state in local storage. The session
// lives in a JSON file by default, or in Redis when SESSION_BACKEND=redis.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yu-shop/storefront-api/internal/core/domain"
	"github.com/yu-shop/storefront-api/internal/core/ports"
	"github.com/yu-shop/storefront-api/internal/infrastructure/sessionstore"
	"github.com/yu-shop/storefront-api/internal/pkg/config"
	"github.com/yu-shop/storefront-api/internal/session"
	"github.com/yu-shop/storefront-api/pkg/apiclient"
	"github.com/yu-shop/storefront-api/pkg/logger"
)

var (
	serverURL string
	statePath string

	sessions *session.Manager
	client   *apiclient.Client
)

// newSessionStore picks the persistence backend from config. The --state flag
// overrides the configured file path but never forces the file backend.
func newSessionStore(ctx context.Context, cfg *config.Config) (ports.SessionStore, error) {
	if cfg.Session.Backend == "redis" {
		rdb, err := sessionstore.Connect(ctx, sessionstore.ConnectConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("session backend: %w", err)
		}
		return sessionstore.NewRedisStore(rdb), nil
	}

	path := cfg.Session.FilePath
	if statePath != "" {
		path = statePath
	}
	return sessionstore.NewFileStore(path), nil
}

var rootCmd = &cobra.Command{
	Use:   "storefrontctl",
	Short: "Console client for the storefront API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := logger.Init(logger.Options{Level: "warn", Pretty: true, Output: os.Stderr})

		store, err := newSessionStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		client = apiclient.New(serverURL)
		sessions = session.NewManager(client, store, log)
		sessions.Initialize()
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in as a member",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, msg := sessions.Login(cmd.Context(), args[0], args[1])
		fmt.Println(msg)
		if !ok {
			os.Exit(1)
		}
		return nil
	},
}

var adminLoginCmd = &cobra.Command{
	Use:   "admin-login <account> <password>",
	Short: "Log in as a back-office user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, msg := sessions.AdminLogin(cmd.Context(), args[0], args[1])
		fmt.Println(msg)
		if !ok {
			os.Exit(1)
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		sessions.Logout()
		fmt.Println("logged out")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(describeSession(sessions.State()))
	},
}

// describeSession renders a state line. A state claiming isLoggedIn while
// missing user or userType (a hand-edited state file can produce one) is
// treated as logged out instead of dereferenced.
func describeSession(state domain.AuthState) string {
	if !state.IsLoggedIn || state.User == nil || state.UserType == nil {
		return "not logged in"
	}
	return fmt.Sprintf("%s (%s)", state.User.Name, *state.UserType)
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp := client.Get(cmd.Context(), "/product", nil)
		if resp.Code != 200 {
			fmt.Println(resp.Message)
			os.Exit(1)
		}
		out, err := json.MarshalIndent(resp.Data, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func main() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", envOr("STOREFRONT_URL", "http://localhost:8080"), "API base URL")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "session state file (default from SESSION_FILE)")

	rootCmd.AddCommand(loginCmd, adminLoginCmd, logoutCmd, whoamiCmd, productsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
