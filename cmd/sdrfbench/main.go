// main is the entry point for the sdrfbench CLI.
package main

import (
	"os"

	"github.com/huangsam/sdrfbench/cmd"
	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/huangsam/sdrfbench/internal/iocache"
)

func main() {
	// Commands resolve their persistence stores through the global manager
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()
	iocache.CloseStores()
	if err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
