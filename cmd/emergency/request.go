package main

import (
	"fmt"
	"medvault-client/internal/app/contracts"
	"medvault-client/internal/app/delivery/terminal"
	"medvault-client/internal/app/models"
	"medvault-client/internal/app/services/core/emergency"
	emergencyRequests "medvault-client/internal/app/services/medvault/emergency_requests"
	"strings"

	"github.com/spf13/cobra"
)

type requestOptions struct {
	urgency     string
	symptoms    string
	contact     string
	location    string
	history     string
	notes       string
	allergies   string
	medications string
	yes         bool
}

func newRequestCmd(root *rootOptions) *cobra.Command {
	opts := &requestOptions{}
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Send an emergency request as the signed-in patient",
		Long: `Fill the emergency request from flags, confirm it and send it to the care
team. Symptoms and a contact number are required. The command exits non-zero
when the request could not be sent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.urgency, "urgency", "", "Urgency level: HIGH, MEDIUM or LOW (default MEDIUM)")
	f.StringVar(&opts.symptoms, "symptoms", "", "Current symptoms")
	f.StringVar(&opts.contact, "contact", "", "Contact number")
	f.StringVar(&opts.location, "location", "", "Current location")
	f.StringVar(&opts.history, "history", "", "Relevant medical history")
	f.StringVar(&opts.notes, "notes", "", "Additional notes for the care team")
	f.StringVar(&opts.allergies, "allergies", "", "Known allergies")
	f.StringVar(&opts.medications, "medications", "", "Current medications")
	f.BoolVarP(&opts.yes, "yes", "y", false, "Send without asking for confirmation")

	return cmd
}

func runRequest(cmd *cobra.Command, root *rootOptions, opts *requestOptions) error {
	ctx := cmd.Context()
	b := root.bootstrap

	provider, err := root.sessionProvider(ctx, b.InternalConfig.Session.PatientRole)
	if err != nil {
		return err
	}

	renderer := terminal.NewDialogRenderer(cmd.OutOrStdout())
	var gate contracts.ConfirmationGate
	if opts.yes {
		gate = terminal.NewStaticGate(true, renderer)
	} else {
		gate = terminal.NewPromptGate(cmd.InOrStdin(), cmd.OutOrStdout(), renderer)
	}

	workflow := emergency.NewEmergencyWorkflow(
		emergency.NewEmergencyFormStore(),
		emergency.NewEmergencyDraftValidator(),
		gate,
		renderer,
		provider,
		emergencyRequests.NewEmergencyRequestClient(b.InternalConfig, b.Logger),
		root.recorder,
		b.InternalConfig,
		b.Logger,
	)

	workflow.Open()
	fields := []struct {
		flag  string
		field models.DraftField
		value string
	}{
		{"urgency", models.FieldUrgencyLevel, opts.urgency},
		{"symptoms", models.FieldSymptoms, opts.symptoms},
		{"contact", models.FieldContactNumber, opts.contact},
		{"location", models.FieldLocation, opts.location},
		{"history", models.FieldMedicalHistory, opts.history},
		{"notes", models.FieldPatientNotes, opts.notes},
		{"allergies", models.FieldAllergies, opts.allergies},
		{"medications", models.FieldCurrentMedications, opts.medications},
	}
	for _, f := range fields {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		if err := workflow.Store().Set(f.field, f.value); err != nil {
			return fmt.Errorf("--%s: %w", f.flag, err)
		}
	}

	outcome := workflow.Submit(ctx)
	switch outcome.Kind {
	case models.OutcomeSubmitted:
		return nil
	case models.OutcomeDeclined:
		fmt.Fprintln(cmd.OutOrStdout(), "Emergency request not sent.")
		return nil
	default:
		return &outcomeError{outcome: outcome}
	}
}

// outcomeError reports a submission attempt that ended without sending.
type outcomeError struct {
	outcome models.WorkflowOutcome
}

func (e *outcomeError) Error() string {
	if e.outcome.Kind == models.OutcomeValidationFailed {
		labels := make([]string, 0, len(e.outcome.MissingFields))
		for _, field := range e.outcome.MissingFields {
			labels = append(labels, field.Label())
		}
		return fmt.Sprintf("emergency request not sent: missing %s", strings.Join(labels, ", "))
	}
	if e.outcome.Message != "" {
		return "emergency request not sent: " + e.outcome.Message
	}
	return "emergency request not sent: " + string(e.outcome.Kind)
}

func (e *outcomeError) Unwrap() error { return e.outcome.Err }
