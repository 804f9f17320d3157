package environ

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"terraform-provider-dbm/internal/client"
	"terraform-provider-dbm/internal/consts"
)

var (
	_ datasource.DataSource              = &SystemEnvironDataSource{}
	_ datasource.DataSourceWithConfigure = &SystemEnvironDataSource{}
)

type SystemEnvironDataSource struct {
	client *client.DBMClient
}

func NewSystemEnvironDataSource() datasource.DataSource {
	return &SystemEnvironDataSource{}
}

func (d *SystemEnvironDataSource) Metadata(
	ctx context.Context,
	req datasource.MetadataRequest,
	resp *datasource.MetadataResponse,
) {
	resp.TypeName = req.ProviderTypeName + "_system_environ"
}

func (d *SystemEnvironDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.client = client.FromProviderData(req.ProviderData, &resp.Diagnostics)
}

func (d *SystemEnvironDataSource) Schema(
	ctx context.Context,
	req datasource.SchemaRequest,
	resp *datasource.SchemaResponse,
) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "URLs of the systems DBM links to, keyed by environment variable name.",
		Attributes: map[string]schema.Attribute{
			"urls": schema.MapAttribute{
				Computed:            true,
				ElementType:         types.StringType,
				MarkdownDescription: "Environment variable name to URL, e.g. `BK_CMDB_URL`.",
			},
			"affinity": schema.ListNestedAttribute{
				Computed:            true,
				MarkdownDescription: "Deploy affinity options.",
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"label": schema.StringAttribute{
							Computed: true,
						},
						"value": schema.StringAttribute{
							Computed: true,
						},
					},
				},
			},
		},
	}
}

func (d *SystemEnvironDataSource) Read(
	ctx context.Context,
	req datasource.ReadRequest,
	resp *datasource.ReadResponse,
) {
	if d.client == nil {
		client.AddUnconfiguredError(&resp.Diagnostics)
		return
	}

	store := d.client.Environ
	if err := store.Fetch(ctx); err != nil {
		if !store.Populated() {
			resp.Diagnostics.AddError(
				fmt.Sprintln(consts.READ_RES_FAIL, "system environ fetch error"),
				err.Error(),
			)
			return
		}
		resp.Diagnostics.AddWarning(
			"System environ refresh failed, previous values are kept",
			err.Error(),
		)
	}

	data := SystemEnvironModel{
		URLs:     store.URLs(),
		Affinity: newAffinityModels(store.Affinity()),
	}
	tflog.Info(ctx, "system environ read", map[string]interface{}{
		"urls":     len(data.URLs),
		"affinity": len(data.Affinity),
	})

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
