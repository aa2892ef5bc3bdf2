package main

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/target/storefront-admin/internal/bootstrap"
	domainauth "github.com/target/storefront-admin/internal/domain/auth"
	"github.com/target/storefront-admin/internal/domain/routing"
	"github.com/target/storefront-admin/internal/ports"
)

func newTokenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Session token tools",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "inspect <token>",
		Short: "Decode a token with the configured verify mode and show the console it opens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			decoder, err := bootstrap.BuildDecoder(ctx, a.cfg.Auth, a.logger)
			if err != nil {
				return err
			}
			return inspectToken(ctx, cmd.OutOrStdout(), decoder, strings.TrimSpace(args[0]), time.Now())
		},
	})
	return cmd
}

// inspectToken prints the decoded identity. An undecodable token is an error;
// an expired one is reported but still printed.
func inspectToken(ctx context.Context, w io.Writer, decoder ports.TokenDecoder, token string, now time.Time) error {
	claims, err := decoder.Decode(ctx, token)
	if err != nil {
		return err
	}

	state := domainauth.Unauthenticated()
	if !claims.ExpiredAt(now) {
		state = domainauth.Authenticated(claims.Identity)
	}
	return printInspection(w, claims, routing.PresentationFor(state), now)
}

func printInspection(w io.Writer, claims domainauth.Claims, p routing.Presentation, now time.Time) error {
	status := "valid"
	if claims.ExpiredAt(now) {
		status = "expired"
	}
	var errs []error
	errs = append(errs,
		writef(w, "name:         %s\n", claims.Identity.Name),
		writef(w, "user id:      %s\n", claims.Identity.UserID),
		writef(w, "role:         %s\n", claims.Identity.Role),
		writef(w, "expires:      %s (%s)\n", claims.ExpiresAt.UTC().Format(time.RFC3339), status),
		writef(w, "presentation: %s\n", p),
		writef(w, "home:         %s\n", routing.Home(p)),
	)
	return errors.Join(errs...)
}
