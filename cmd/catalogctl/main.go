// Command catalogctl inspects and edits the persisted catalog directly,
// without the simulated latency of the API.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"libraryapp/internal/config"
	"libraryapp/internal/store"
)

func main() {
	config.LoadEnvFiles()

	root := newRootCmd(openConfiguredStore)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openConfiguredStore(ctx context.Context) (*store.Store, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	st, p, err := store.Open(ctx, cfg.Storage, zap.NewNop())
	if err != nil {
		return nil, nil, err
	}
	return st, p.Close, nil
}
