// main is the entry point for the intentctl CLI.
package main

import (
	"github.com/intentops/intentctl/cmd"
	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/internal/credstore"
)

func main() {
	defer credstore.CloseStores()

	err := cmd.Execute()

	if profErr := cmd.StopProfiling(); profErr != nil {
		contract.LogWarn("stopping profiler", profErr)
	}

	if err != nil {
		// LogFatal exits, so the deferred close must run first.
		credstore.CloseStores()
		contract.LogFatal("command failed", err)
	}
}
