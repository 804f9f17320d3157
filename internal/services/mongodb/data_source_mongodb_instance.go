package mongodb

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"terraform-provider-dbm/internal/client"
	"terraform-provider-dbm/internal/common"
	"terraform-provider-dbm/internal/consts"
	"terraform-provider-dbm/internal/utils"
	"terraform-provider-dbm/pkg/client/sources"
)

var (
	_ datasource.DataSource              = &MongodbInstanceDataSource{}
	_ datasource.DataSourceWithConfigure = &MongodbInstanceDataSource{}
)

type MongodbInstanceDataSource struct {
	client *client.DBMClient
}

func NewMongodbInstanceDataSource() datasource.DataSource {
	return &MongodbInstanceDataSource{}
}

func (d *MongodbInstanceDataSource) Metadata(
	ctx context.Context,
	req datasource.MetadataRequest,
	resp *datasource.MetadataResponse,
) {
	resp.TypeName = req.ProviderTypeName + "_mongodb_instance"
}

func (d *MongodbInstanceDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.client = client.FromProviderData(req.ProviderData, &resp.Diagnostics)
}

func (d *MongodbInstanceDataSource) Schema(
	ctx context.Context,
	req datasource.SchemaRequest,
	resp *datasource.SchemaResponse,
) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Details of a single MongoDB instance.",
		Attributes: common.MergeAttributes(map[string]schema.Attribute{
			"id": schema.Int64Attribute{
				Computed:            true,
				MarkdownDescription: "Instance ID.",
			},
			"ip": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Host IP.",
			},
			"port": schema.Int64Attribute{
				Computed:            true,
				MarkdownDescription: "Instance port.",
			},
			"role": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Instance role, e.g. `m0` or `backup`.",
			},
			"shard": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Shard the instance belongs to.",
			},
			"status": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Instance status.",
			},
			"machine_type": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Machine type.",
			},
			"cluster_name": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Cluster name.",
			},
			"cluster_type": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Cluster type, e.g. `MongoReplicaSet`.",
			},
			"master_domain": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Domain of the cluster.",
			},
			"slave_domain": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Slave domain of the cluster.",
			},
			"db_module_id": schema.Int64Attribute{
				Computed:            true,
				MarkdownDescription: "DB module ID.",
			},
			"db_version": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "MongoDB version. Null when the backend does not report one.",
			},
			"version": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Package version.",
			},
			"spec_config": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Spec configuration as reported by the backend.",
			},
			"bk_cloud_id": schema.Int64Attribute{
				Computed:            true,
				MarkdownDescription: "Cloud area ID.",
			},
			"bk_cloud_name": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Cloud area name.",
			},
			"bk_agent_id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Agent ID.",
			},
			"bk_idc_id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "IDC ID.",
			},
		}, common.DataHostSchema, common.DataCreateAtSchema, common.DataInstanceLookupSchema),
	}
}

func (d *MongodbInstanceDataSource) Read(
	ctx context.Context,
	req datasource.ReadRequest,
	resp *datasource.ReadResponse,
) {
	if d.client == nil {
		client.AddUnconfiguredError(&resp.Diagnostics)
		return
	}

	var data MongodbInstanceModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	address := data.InstanceAddress.ValueString()
	clusterID := int(data.ClusterID.ValueInt64())
	tflog.Debug(ctx, "reading mongodb instance", map[string]interface{}{
		"instance_address": address,
		"cluster_id":       clusterID,
	})

	inst, err := sources.GetMongodbInstanceDetails(ctx, d.client.Session, address, clusterID)
	if err != nil {
		resp.Diagnostics.AddAttributeError(
			path.Root("instance_address"),
			fmt.Sprintln(consts.READ_RES_FAIL, "mongodb instance fetch error"),
			err.Error(),
		)
		return
	}
	utils.WarnIfInvalid(&resp.Diagnostics, inst)

	state := newMongodbInstanceModel(*inst, d.client.Session.Location)
	state.InstanceAddress = data.InstanceAddress
	state.ClusterID = data.ClusterID
	resp.Diagnostics.Append(resp.State.Set(ctx, &state)...)
}
