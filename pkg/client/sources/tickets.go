package sources

import (
	"context"
	"fmt"

	"terraform-provider-dbm/pkg/client/entities"
	"terraform-provider-dbm/pkg/client/session"
)

func GetTicket(ctx context.Context, s *session.Session, id int) (*entities.Ticket, error) {

	uri := fmt.Sprintf("/apis/tickets/%d/", id)
	var ticket entities.Ticket
	err := s.Requester.Get(ctx, uri, nil, &ticket)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
