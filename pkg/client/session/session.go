package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"terraform-provider-dbm/pkg/client/auth"
	"terraform-provider-dbm/pkg/client/env"
	"terraform-provider-dbm/pkg/client/requests"
)

// Session carries everything a service call needs: the transport, the
// business unit the call is scoped to and the zone used for display values.
type Session struct {
	Requester *requests.Requester
	BizID     int64
	Location  *time.Location
}

func New(cfg *env.Config) (*Session, error) {
	if cfg.APIURL == "" {
		return nil, errors.New("DBM api url is empty")
	}

	creds, err := auth.NewCredentials(cfg.AppCode, cfg.AppSecret, cfg.Username)
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return &Session{
		Requester: requests.New(cfg.APIURL, creds, cfg.Timeout),
		BizID:     cfg.BizID,
		Location:  loc,
	}, nil
}

// BizURI renders /apis/<module>/bizs/<bizId>/<resource>/[<part>/...].
func (s *Session) BizURI(module, resource string, parts ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "/apis/%s/bizs/%d/%s/", module, s.BizID, resource)
	for _, p := range parts {
		b.WriteString(p)
		b.WriteString("/")
	}
	return b.String()
}
