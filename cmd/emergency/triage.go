package main

import (
	"fmt"
	"medvault-client/internal/app/delivery/terminal"
	"medvault-client/internal/app/models"
	"medvault-client/internal/app/services/core/triage"
	doctorEmergencies "medvault-client/internal/app/services/medvault/doctor_emergencies"
	"strconv"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type triageQueryFlags struct {
	search   string
	urgency  string
	time     string
	sortBy   string
	order    string
	page     int
	pageSize int
}

func (q *triageQueryFlags) bind(f *pflag.FlagSet) {
	f.StringVar(&q.search, "search", "", "Match patient name, symptoms or contact number")
	f.StringVar(&q.urgency, "urgency", "ALL", "Urgency filter: ALL, HIGH, MEDIUM or LOW")
	f.StringVar(&q.time, "time", "ALL", "Received within: ALL, LAST_HOUR, LAST_6_HOURS, TODAY or LAST_3_DAYS")
	f.StringVar(&q.sortBy, "sort", "urgency", "Sort by: urgency, time or name")
	f.StringVar(&q.order, "order", "desc", "Sort order: asc or desc")
	f.IntVar(&q.page, "page", 1, "Page number")
	f.IntVar(&q.pageSize, "page-size", 0, "Requests per page (overrides TRIAGE_PAGE_SIZE)")
}

func (q *triageQueryFlags) query() models.TriageQuery {
	return models.TriageQuery{
		Search:   q.search,
		Urgency:  q.urgency,
		Time:     q.time,
		SortBy:   q.sortBy,
		Order:    q.order,
		Page:     q.page,
		PageSize: q.pageSize,
	}
}

func newTriageCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triage",
		Short: "Review the emergency queue as the signed-in doctor",
	}
	cmd.AddCommand(newTriageListCmd(root))
	cmd.AddCommand(newTriageAcceptCmd(root))
	cmd.AddCommand(newTriageWatchCmd(root))
	return cmd
}

func newTriageListCmd(root *rootOptions) *cobra.Command {
	flags := &triageQueryFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List emergency requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			b := root.bootstrap

			provider, err := root.sessionProvider(ctx, b.InternalConfig.Session.DoctorRole)
			if err != nil {
				return err
			}
			usecase := triage.NewTriageUsecase(doctorEmergencies.NewTriageClient(b.InternalConfig, b.Logger), provider, b.InternalConfig, b.Logger)

			page, err := usecase.Board(ctx, flags.query())
			if err != nil {
				return err
			}
			terminal.NewTriageView(cmd.OutOrStdout()).Render(page, time.Now())
			return nil
		},
	}
	flags.bind(cmd.Flags())
	return cmd
}

func newTriageAcceptCmd(root *rootOptions) *cobra.Command {
	var proposedTime string
	cmd := &cobra.Command{
		Use:   "accept <id>",
		Short: "Accept an emergency request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			b := root.bootstrap

			emergencyID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid emergency request id %q", args[0])
			}

			provider, err := root.sessionProvider(ctx, b.InternalConfig.Session.DoctorRole)
			if err != nil {
				return err
			}
			usecase := triage.NewTriageUsecase(doctorEmergencies.NewTriageClient(b.InternalConfig, b.Logger), provider, b.InternalConfig, b.Logger)

			var proposed *string
			if cmd.Flags().Changed("proposed-time") {
				proposed = &proposedTime
			}
			message, err := usecase.Accept(ctx, emergencyID, proposed)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
	cmd.Flags().StringVar(&proposedTime, "proposed-time", "", "Proposed consultation time, e.g. 2025-03-01T10:30")
	return cmd
}

func newTriageWatchCmd(root *rootOptions) *cobra.Command {
	flags := &triageQueryFlags{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep printing the emergency queue until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			b := root.bootstrap

			provider, err := root.sessionProvider(ctx, b.InternalConfig.Session.DoctorRole)
			if err != nil {
				return err
			}

			// Refuse to poll without a usable doctor session.
			if _, err := provider.CurrentUser(ctx); err != nil {
				return err
			}

			view := terminal.NewTriageView(cmd.OutOrStdout())
			query := triage.NormalizeQuery(flags.query(), b.InternalConfig.Triage.PageSize)
			var mu sync.Mutex

			worker := triage.NewWorker(b.Logger, b.InternalConfig, doctorEmergencies.NewTriageClient(b.InternalConfig, b.Logger), provider, root.recorder)
			worker.OnRefresh(func(items []models.EmergencyRequestSummary) {
				mu.Lock()
				defer mu.Unlock()
				now := time.Now()
				view.Render(triage.BuildTriagePage(items, query, now), now)
			})
			worker.Start(ctx)
			b.WorkerStop = worker.Stop

			<-ctx.Done()
			return nil
		},
	}
	flags.bind(cmd.Flags())
	return cmd
}
