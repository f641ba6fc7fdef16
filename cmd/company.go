package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/intentops/intentctl/core"
	"github.com/intentops/intentctl/schema"
)

// companyCmd groups company commands.
var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Register companies and load their dashboards",
	Long: `Manage tracked companies inside a tenant.

Subcommands:
  create - Register a company by name and domain
  load   - Load the full dashboard for a company id

Examples:
  # Register a company
  intentctl company create "Acme AI" acme-ai.com --tenant t-42

  # Load its dashboard
  intentctl company load c-7 --tenant t-42`,
}

// companyCreateCmd registers a company.
var companyCreateCmd = &cobra.Command{
	Use:     "create <name> <domain>",
	Short:   "Register a company inside the tenant",
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, args []string) error {
		req := schema.CompanyRequest{
			Name:   args[0],
			Domain: args[1],
		}
		if board := viper.GetString("greenhouse-board"); board != "" {
			req.GreenhouseBoard = &board
		}
		company, err := gw.CreateCompany(rootCtx, cfg.TenantID, req)
		if err != nil {
			return err
		}
		fmt.Printf("Company %q created (id %s).\n", company.Name, company.ID)
		fmt.Printf("Pass --company %s for company-scoped commands.\n", company.ID)
		return nil
	},
}

// companyLoadCmd loads the dashboard for an explicit company id. It is the
// positional-argument form of the dashboard command.
var companyLoadCmd = &cobra.Command{
	Use:     "load <company-id>",
	Short:   "Load the full dashboard for a company",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, args []string) error {
		cfg.CompanyID = args[0]
		view, err := core.LoadCompanyView(rootCtx, gw, journalStore(), cfg)
		if err != nil {
			return err
		}
		return writer.WriteCompanyView(view, cfg)
	},
}
