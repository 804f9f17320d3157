package ticket

import (
	"context"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/datasource"

	"terraform-provider-dbm/internal/consts"
)

func TestReadWithoutConfiguredClient(t *testing.T) {
	for _, newDataSource := range []func() datasource.DataSource{
		NewTicketDataSource,
	} {
		ds := newDataSource()

		var meta datasource.MetadataResponse
		ds.Metadata(context.Background(), datasource.MetadataRequest{ProviderTypeName: "dbm"}, &meta)

		var configure datasource.ConfigureResponse
		ds.(datasource.DataSourceWithConfigure).Configure(context.Background(), datasource.ConfigureRequest{}, &configure)
		if configure.Diagnostics.HasError() {
			t.Fatalf("%s: Configure without provider data: %v", meta.TypeName, configure.Diagnostics)
		}

		var resp datasource.ReadResponse
		ds.Read(context.Background(), datasource.ReadRequest{}, &resp)
		if !resp.Diagnostics.HasError() {
			t.Fatalf("%s: Read must fail before the provider is configured", meta.TypeName)
		}
		if got := resp.Diagnostics.Errors()[0].Summary(); got != consts.UNCONFIGURED_CLIENT {
			t.Errorf("%s: summary = %q", meta.TypeName, got)
		}
	}
}
