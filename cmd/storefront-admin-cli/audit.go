package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/target/storefront-admin/internal/data"
	"github.com/target/storefront-admin/internal/domain/model"
)

func newAuditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit trail tools",
	}

	var q data.AuditQuery
	tail := &cobra.Command{
		Use:   "tail",
		Short: "Show the most recent console actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if q.Limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", q.Limit)
			}
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			db, err := a.openDB(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			events, err := data.NewAuditRepo(db).List(ctx, q)
			if err != nil {
				return err
			}
			return printAuditEvents(cmd.OutOrStdout(), events)
		},
	}
	tail.Flags().IntVarP(&q.Limit, "limit", "n", 20, "number of events to show")
	tail.Flags().StringVar(&q.Actor, "actor", "", "only events by this actor")
	tail.Flags().StringVar(&q.ActionPrefix, "action", "", "only actions starting with this prefix (e.g. product.)")

	cmd.AddCommand(tail)
	return cmd
}

func printAuditEvents(w io.Writer, events []model.AuditEvent) error {
	if len(events) == 0 {
		return writef(w, "no audit events\n")
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writef(tw, "TIME\tACTOR\tROLE\tACTION\tSUBJECT\n"); err != nil {
		return err
	}
	for _, ev := range events {
		if err := writef(tw, "%s\t%s\t%s\t%s\t%s\n",
			ev.OccurredAt.UTC().Format(time.RFC3339), ev.Actor, ev.Role, ev.Action, ev.Subject); err != nil {
			return err
		}
	}
	return tw.Flush()
}
