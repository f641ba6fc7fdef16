package credstore

import (
	"fmt"

	"github.com/intentops/intentctl/schema"
)

// PrintCredentialStatus prints credential store status information.
func PrintCredentialStatus(status schema.CredentialStatus) {
	fmt.Printf("Credential Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Key Stored: %t\n", status.HasKey)
	if status.HasKey {
		fmt.Printf("Key: %s\n", status.KeyMasked)
		fmt.Printf("Issued For Tenant: %s\n", status.TenantID)
		if !status.StoredAt.IsZero() {
			fmt.Printf("Stored At: %s\n", status.StoredAt.Format("2006-01-02 15:04:05"))
		}
	}
	if status.StorePath != "" {
		fmt.Printf("Store Path: %s\n", status.StorePath)
	}
}
