package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/intentops/intentctl/internal/contract"
)

// tenantCmd groups tenant lifecycle commands.
var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Create tenants and select the one to work in",
	Long: `Manage tenants (workspaces) on the intent analytics service.

A tenant owns companies, API keys and all derived analytics. Most commands
take the tenant id through --tenant or the INTENTCTL_TENANT environment
variable.

Subcommands:
  create - Create a new tenant
  use    - Verify a tenant id against the stored API key

Examples:
  # Create a workspace and note its id
  intentctl tenant create "My Workspace"

  # Check that the stored key belongs to this tenant
  intentctl tenant use t-42`,
}

// tenantCreateCmd creates a new tenant.
var tenantCreateCmd = &cobra.Command{
	Use:     "create <name>",
	Short:   "Create a new tenant and print its id",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		tenant, err := gw.CreateTenant(rootCtx, args[0])
		if err != nil {
			contract.LogFatal("Failed to create tenant", err)
		}
		fmt.Printf("Tenant %q created (id %s).\n", tenant.Name, tenant.ID)
		fmt.Printf("Pass --tenant %s (or set INTENTCTL_TENANT) for tenant-scoped commands.\n", tenant.ID)
	},
}

// tenantUseCmd checks a tenant id against the stored credential. A stored key
// issued for a different tenant is refused rather than silently sent.
var tenantUseCmd = &cobra.Command{
	Use:     "use <tenant-id>",
	Short:   "Verify that the stored API key was issued for this tenant",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, args []string) error {
		tenantID := args[0]
		store := credentialStore()
		if store == nil {
			return fmt.Errorf("no credential store configured (cred-backend is none)")
		}
		creds, err := store.Get()
		if err != nil {
			return fmt.Errorf("failed to read stored credentials: %w", err)
		}
		if creds.APIKey == "" {
			fmt.Printf("No API key stored yet. Run 'intentctl key generate --tenant %s' to issue one.\n", tenantID)
			return nil
		}
		if creds.TenantID != "" && creds.TenantID != tenantID {
			return fmt.Errorf("stored API key was issued for tenant %s, not %s; run 'intentctl key generate --tenant %s' or 'intentctl key clear' first",
				creds.TenantID, tenantID, tenantID)
		}
		fmt.Printf("Stored API key (%s) matches tenant %s.\n", contract.MaskKey(creds.APIKey), tenantID)
		return nil
	},
}
