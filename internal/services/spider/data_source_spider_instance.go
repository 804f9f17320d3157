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
	_ datasource.DataSource              = &SpiderInstanceDataSource{}
	_ datasource.DataSourceWithConfigure = &SpiderInstanceDataSource{}
)

type SpiderInstanceDataSource struct {
	client *client.DBMClient
}

func NewSpiderInstanceDataSource() datasource.DataSource {
	return &SpiderInstanceDataSource{}
}

func (d *SpiderInstanceDataSource) Metadata(
	ctx context.Context,
	req datasource.MetadataRequest,
	resp *datasource.MetadataResponse,
) {
	resp.TypeName = req.ProviderTypeName + "_spider_instance"
}

func (d *SpiderInstanceDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.client = client.FromProviderData(req.ProviderData, &resp.Diagnostics)
}

func (d *SpiderInstanceDataSource) Schema(
	ctx context.Context,
	req datasource.SchemaRequest,
	resp *datasource.SchemaResponse,
) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Details of a single spider or remote instance.",
		Attributes:          spiderInstanceAttributes(true),
	}
}

func (d *SpiderInstanceDataSource) Read(
	ctx context.Context,
	req datasource.ReadRequest,
	resp *datasource.ReadResponse,
) {
	if d.client == nil {
		client.AddUnconfiguredError(&resp.Diagnostics)
		return
	}

	var data SpiderInstanceModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	address := data.InstanceAddress.ValueString()
	clusterID := int(data.ClusterID.ValueInt64())
	tflog.Debug(ctx, "reading spider instance", map[string]interface{}{
		"instance_address": address,
		"cluster_id":       clusterID,
	})

	inst, err := sources.GetSpiderInstanceDetails(ctx, d.client.Session, address, clusterID)
	if err != nil {
		resp.Diagnostics.AddAttributeError(
			path.Root("instance_address"),
			fmt.Sprintln(consts.READ_RES_FAIL, "spider instance fetch error"),
			err.Error(),
		)
		return
	}
	utils.WarnIfInvalid(&resp.Diagnostics, inst)

	state := newSpiderInstanceModel(*inst, d.client.Session.Location)
	state.InstanceAddress = data.InstanceAddress
	state.ClusterID = data.ClusterID
	resp.Diagnostics.Append(resp.State.Set(ctx, &state)...)
}
