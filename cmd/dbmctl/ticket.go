package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"terraform-provider-dbm/pkg/client/entities"
	"terraform-provider-dbm/pkg/client/sources"
)

type ticketOutput struct {
	*entities.Ticket
	CreateAtDisplay string            `json:"create_at_display"`
	Details         json.RawMessage   `json:"details"`
	Summary         map[string]string `json:"summary"`
}

func newTicketCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Tickets",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get ID",
		Short: "Show a ticket with its details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid ticket id %q: %w", args[0], err)
			}
			ticket, err := sources.GetTicket(cmd.Context(), a.session, id)
			if err != nil {
				return err
			}
			if _, ok := ticket.Details.(entities.UnknownDetails); ok {
				a.logger.Info("ticket details are not modelled", zap.String("ticket_type", string(ticket.TicketType)))
			}

			details := ticket.RawDetails
			if len(details) == 0 {
				details = json.RawMessage("null")
			}
			return a.print(ticketOutput{
				Ticket:          ticket,
				CreateAtDisplay: ticket.CreateAtDisplay(a.session.Location),
				Details:         details,
				Summary:         entities.SummarizeTicketDetails(ticket.Details),
			})
		},
	})
	return cmd
}
