// Package credstore persists the API key and its issuing tenant across runs.
package credstore

import (
	"fmt"
	"sync"

	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/internal/journal"
	"github.com/intentops/intentctl/schema"
)

// StoreManagerImpl manages the credential and journal store instances.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	credentials  contract.CredentialStore
	journal      contract.JournalStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetCredentialStore returns the credential store.
func (mgr *StoreManagerImpl) GetCredentialStore() contract.CredentialStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.credentials
}

// GetJournalStore returns the journal store.
func (mgr *StoreManagerImpl) GetJournalStore() contract.JournalStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.journal
}

// Global Manager instance for main logic.
var (
	Manager   = &StoreManagerImpl{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStores initializes the global store manager with separate credential and
// journal stores. An empty backend disables the corresponding store.
func InitStores(credBackend schema.DatabaseBackend, credConnStr string, journalBackend schema.DatabaseBackend, journalConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		var err error

		var credentials contract.CredentialStore
		if credBackend != "" {
			credentials, err = NewCredentialStore(credBackend, credConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize credential store: %w", err)
				return
			}
		}

		var journalStore contract.JournalStore
		if journalBackend != "" && journalBackend != schema.NoneBackend {
			journalStore, err = journal.NewJournalStore(journalBackend, journalConnStr)
			if err != nil {
				if credentials != nil {
					_ = credentials.Close()
				}
				initErr = fmt.Errorf("failed to initialize journal store: %w", err)
				return
			}
		}

		Manager.credentials = credentials
		Manager.journal = journalStore
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.credentials != nil {
			_ = Manager.credentials.Close()
		}
		if Manager.journal != nil {
			_ = Manager.journal.Close()
		}
	})
}
