package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/internal/credstore"
	"github.com/intentops/intentctl/internal/gateway"
)

// keyCmd groups API key commands.
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Issue, store and inspect the API key",
	Long: `Manage the API key used to authenticate against the intent analytics service.

The key and the tenant it was issued for are persisted together in the local
credential store, so later invocations authenticate without flags. A key given
through --api-key or INTENTCTL_API_KEY wins over the stored one for that
invocation.

Subcommands:
  generate - Issue a new key for a tenant and store it
  set      - Store an existing key
  clear    - Remove the stored key
  status   - Show credential store details

Examples:
  # Issue and persist a key for a tenant
  intentctl key generate --tenant t-42

  # Store a key obtained elsewhere
  intentctl key set sk-abc123 --tenant t-42`,
}

// keyGenerateCmd issues a key through the service and stores it.
var keyGenerateCmd = &cobra.Command{
	Use:     "generate",
	Short:   "Issue a new API key for the tenant and store it",
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		name := viper.GetString("key-name")
		rateLimit := viper.GetInt("rate-limit")

		key, err := gw.CreateAPIKey(rootCtx, cfg.TenantID, name, rateLimit)
		if err != nil {
			return err
		}
		if store := credentialStore(); store != nil {
			if err := store.Set(key.Key, cfg.TenantID); err != nil {
				return fmt.Errorf("key issued but could not be stored: %w", err)
			}
			fmt.Printf("API key %s issued for tenant %s and stored.\n", contract.MaskKey(key.Key), cfg.TenantID)
			return nil
		}
		// No store configured; print the key once so it is not lost.
		fmt.Printf("API key issued for tenant %s: %s\n", cfg.TenantID, key.Key)
		return nil
	},
}

// keySetCmd stores a key obtained out of band.
var keySetCmd = &cobra.Command{
	Use:     "set <api-key>",
	Short:   "Store an existing API key for the configured tenant",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, args []string) error {
		if cfg.TenantID == "" {
			return gateway.NewInputError("tenant id")
		}
		store := credentialStore()
		if store == nil {
			return fmt.Errorf("no credential store configured (cred-backend is none)")
		}
		if err := store.Set(args[0], cfg.TenantID); err != nil {
			return fmt.Errorf("failed to store key: %w", err)
		}
		fmt.Printf("API key %s stored for tenant %s.\n", contract.MaskKey(args[0]), cfg.TenantID)
		return nil
	},
}

// keyClearCmd removes the stored credential pair.
var keyClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Remove the stored API key and its tenant",
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		store := credentialStore()
		if store == nil {
			return fmt.Errorf("no credential store configured (cred-backend is none)")
		}
		if err := store.Clear(); err != nil {
			return fmt.Errorf("failed to clear credentials: %w", err)
		}
		fmt.Println("Stored credentials cleared.")
		return nil
	},
}

// keyStatusCmd shows credential store status.
var keyStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display credential store details and the masked key",
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		store := credentialStore()
		if store == nil {
			fmt.Println("No credential store configured (cred-backend is none).")
			return
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get credential status", err)
		}
		credstore.PrintCredentialStatus(status)
	},
}
