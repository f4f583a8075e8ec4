package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pagesmith/pagesmith/internal/server"
	"github.com/pagesmith/pagesmith/pkg/cache"
)

// previewCommand creates the preview command for local authoring.
// Pages are re-read from disk per request, so edits show up on refresh.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		configPath string
		addr       string
		contentDir string
		redisAddr  string
		keys       bool
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve the content directory over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr
			}
			if contentDir == "" {
				contentDir = cfg.ContentDir
			}
			if redisAddr == "" {
				redisAddr = cfg.Redis
			}

			store, err := c.previewCache(cmd.Context(), noCache, redisAddr)
			if err != nil {
				return err
			}

			srv, err := server.New(server.Config{
				Addr:       addr,
				ContentDir: contentDir,
				Cache:      store,
				Keys:       keys || cfg.Keys,
				Logger:     c.Logger,
			})
			if err != nil {
				return err
			}

			printInfo("Previewing %s", contentDir)
			printNextStep("Open", "http://localhost"+addr)
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "site config file (default pagesmith.toml)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&contentDir, "content", "", "content directory (default content)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address or URL for the artifact cache")
	cmd.Flags().BoolVar(&keys, "keys", false, "emit stable child keys as data-key attributes")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// previewCache selects the cache backend for the preview server.
// Redis wins when configured; otherwise the shared file cache is used.
func (c *CLI) previewCache(ctx context.Context, noCache bool, redisAddr string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		store, err := cache.NewRedisCache(ctx, redisAddr)
		if err != nil {
			return nil, err
		}
		c.Logger.Info("using redis cache", "addr", redisAddr)
		return store, nil
	}
	return newCache(false)
}
