package spider

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"terraform-provider-dbm/internal/client"
	"terraform-provider-dbm/internal/consts"
	"terraform-provider-dbm/internal/utils"
	"terraform-provider-dbm/pkg/client/sources"
)

var (
	_ datasource.DataSource              = &SpiderClusterDataSource{}
	_ datasource.DataSourceWithConfigure = &SpiderClusterDataSource{}
)

type SpiderClusterDataSource struct {
	client *client.DBMClient
}

func NewSpiderClusterDataSource() datasource.DataSource {
	return &SpiderClusterDataSource{}
}

func (d *SpiderClusterDataSource) Metadata(
	ctx context.Context,
	req datasource.MetadataRequest,
	resp *datasource.MetadataResponse,
) {
	resp.TypeName = req.ProviderTypeName + "_spider_cluster"
}

func (d *SpiderClusterDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.client = client.FromProviderData(req.ProviderData, &resp.Diagnostics)
}

func (d *SpiderClusterDataSource) Schema(
	ctx context.Context,
	req datasource.SchemaRequest,
	resp *datasource.SchemaResponse,
) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Details of a single spider (TenDB cluster) cluster.",
		Attributes:          spiderClusterAttributes(true),
	}
}

func (d *SpiderClusterDataSource) Read(
	ctx context.Context,
	req datasource.ReadRequest,
	resp *datasource.ReadResponse,
) {
	if d.client == nil {
		client.AddUnconfiguredError(&resp.Diagnostics)
		return
	}

	var data SpiderClusterModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	id := int(data.ID.ValueInt64())
	tflog.Debug(ctx, "reading spider cluster", map[string]interface{}{"id": id})

	cluster, err := sources.GetSpiderDetails(ctx, d.client.Session, id)
	if err != nil {
		resp.Diagnostics.AddAttributeError(
			path.Root("id"),
			fmt.Sprintln(consts.READ_RES_FAIL, "spider cluster fetch error"),
			err.Error(),
		)
		return
	}
	utils.WarnIfInvalid(&resp.Diagnostics, cluster)

	state := newSpiderClusterModel(*cluster, d.client.Session.Location)
	state.ID = data.ID
	resp.Diagnostics.Append(resp.State.Set(ctx, &state)...)
}
