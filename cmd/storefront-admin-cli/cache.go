package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	redisadapter "github.com/target/storefront-admin/internal/adapters/redis"
	"github.com/target/storefront-admin/internal/bootstrap"
	"github.com/target/storefront-admin/internal/service"
)

func newCacheCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Resource query cache tools",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "purge [family...]",
		Short: "Drop cached store API reads; no families purges everything",
		Long: "Drop cached store API reads. Known families: " +
			strings.Join(service.CacheFamilies, ", "),
		Args: validateFamilies,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			client, err := bootstrap.ConnectRedis(ctx, bootstrap.DatabaseConfig{
				RedisConfig: a.cfg.Redis,
				Logger:      a.logger,
			})
			if err != nil {
				return fmt.Errorf("connect redis: %w", err)
			}
			defer client.Close()

			cache := redisadapter.NewQueryCache(client, a.cfg.Cache.Prefix)
			if err := cache.Invalidate(ctx, args...); err != nil {
				return fmt.Errorf("purge cache: %w", err)
			}

			purged := "all families"
			if len(args) > 0 {
				purged = strings.Join(args, ", ")
			}
			return writef(cmd.OutOrStdout(), "purged %s\n", purged)
		},
	})
	return cmd
}

func validateFamilies(_ *cobra.Command, args []string) error {
	for _, f := range args {
		if !service.IsCacheFamily(f) {
			return fmt.Errorf("unknown cache family %q (known: %s)", f, strings.Join(service.CacheFamilies, ", "))
		}
	}
	return nil
}
