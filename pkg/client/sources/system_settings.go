package sources

import (
	"context"

	"terraform-provider-dbm/pkg/client/entities"
	"terraform-provider-dbm/pkg/client/session"
)

const systemEnvironURI = "/apis/conf/system_settings/environ/"

// GetSystemEnviron is not scoped to a business unit.
func GetSystemEnviron(ctx context.Context, s *session.Session) (entities.SystemEnviron, error) {

	var environ entities.SystemEnviron
	err := s.Requester.Get(ctx, systemEnvironURI, nil, &environ)
	if err != nil {
		return entities.SystemEnviron{}, err
	}
	return environ, nil
}
