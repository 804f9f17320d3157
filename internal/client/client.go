package client

import (
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/diag"

	"terraform-provider-dbm/internal/consts"
	"terraform-provider-dbm/pkg/client/env"
	"terraform-provider-dbm/pkg/client/environ"
	"terraform-provider-dbm/pkg/client/session"
)

// DBMClient is the provider data handed to every data source.
type DBMClient struct {
	Session *session.Session
	Environ *environ.Store
}

func NewDBMClient(cfg *env.Config) (*DBMClient, error) {
	s, err := session.New(cfg)
	if err != nil {
		return nil, err
	}

	return &DBMClient{
		Session: s,
		Environ: environ.NewStore(environ.FromSession(s)),
	}, nil
}

// FromProviderData unpacks the provider data given to Configure. It returns
// nil before the provider is configured.
func FromProviderData(data any, diags *diag.Diagnostics) *DBMClient {
	if data == nil {
		return nil
	}

	c, ok := data.(*DBMClient)
	if !ok {
		diags.AddError(
			"unexpected data source configure type",
			fmt.Sprintf("Expected *client.DBMClient, got: %T. Please report this issue to the provider developers.", data),
		)
		return nil
	}
	return c
}

// AddUnconfiguredError reports a Read that ran before the provider was
// configured.
func AddUnconfiguredError(diags *diag.Diagnostics) {
	diags.AddError(
		consts.UNCONFIGURED_CLIENT,
		"The DBM client is not set up. Configure the dbm provider before reading its data sources.",
	)
}
