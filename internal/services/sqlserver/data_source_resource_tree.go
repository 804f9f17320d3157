package sqlserver

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"terraform-provider-dbm/internal/client"
	"terraform-provider-dbm/internal/consts"
	"terraform-provider-dbm/pkg/client/sources"
)

var (
	_ datasource.DataSource              = &ResourceTreeDataSource{}
	_ datasource.DataSourceWithConfigure = &ResourceTreeDataSource{}
)

type ResourceTreeDataSource struct {
	client *client.DBMClient
}

func NewResourceTreeDataSource() datasource.DataSource {
	return &ResourceTreeDataSource{}
}

func (d *ResourceTreeDataSource) Metadata(
	ctx context.Context,
	req datasource.MetadataRequest,
	resp *datasource.MetadataResponse,
) {
	resp.TypeName = req.ProviderTypeName + "_sqlserver_resource_tree"
}

func (d *ResourceTreeDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.client = client.FromProviderData(req.ProviderData, &resp.Diagnostics)
}

func (d *ResourceTreeDataSource) Schema(
	ctx context.Context,
	req datasource.SchemaRequest,
	resp *datasource.SchemaResponse,
) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Business resource tree (business, module, cluster) of SQLServer clusters.",
		Attributes: map[string]schema.Attribute{
			"cluster_type": schema.StringAttribute{
				Required:            true,
				MarkdownDescription: "SQLServer cluster type: `sqlserver_single` or `sqlserver_ha`.",
				Validators: []validator.String{
					stringvalidator.OneOf(consts.SQLSERVER_CLUSTER_TYPES...),
				},
			},
			"nodes": schema.ListNestedAttribute{
				Computed:            true,
				MarkdownDescription: "Tree nodes, depth first. Roots have an empty `parent`.",
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"key": schema.StringAttribute{
							Computed:            true,
							MarkdownDescription: "Node key `<obj_id>-<id>`, e.g. `module-12`.",
						},
						"id": schema.Int64Attribute{
							Computed: true,
						},
						"name": schema.StringAttribute{
							Computed: true,
						},
						"obj_id": schema.StringAttribute{
							Computed:            true,
							MarkdownDescription: "Object type: `biz`, `module` or `cluster`.",
						},
						"obj_name": schema.StringAttribute{
							Computed: true,
						},
						"instance_count": schema.Int64Attribute{
							Computed: true,
						},
						"domain": schema.StringAttribute{
							Computed:            true,
							MarkdownDescription: "Cluster domain, empty for non cluster nodes.",
						},
						"parent": schema.StringAttribute{
							Computed:            true,
							MarkdownDescription: "Key of the parent node.",
						},
						"depth": schema.Int64Attribute{
							Computed: true,
						},
					},
				},
			},
		},
	}
}

func (d *ResourceTreeDataSource) Read(
	ctx context.Context,
	req datasource.ReadRequest,
	resp *datasource.ReadResponse,
) {
	if d.client == nil {
		client.AddUnconfiguredError(&resp.Diagnostics)
		return
	}

	var data ResourceTreeModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	clusterType := data.ClusterType.ValueString()
	tflog.Debug(ctx, "reading sqlserver resource tree", map[string]interface{}{"cluster_type": clusterType})

	tree, err := sources.GetSqlserverResourceTree(ctx, d.client.Session, clusterType)
	if err != nil {
		resp.Diagnostics.AddError(
			fmt.Sprintln(consts.READ_RES_FAIL, "sqlserver resource tree fetch error"),
			err.Error(),
		)
		return
	}

	data.Nodes = flattenTree(tree)
	tflog.Info(ctx, "sqlserver resource tree read", map[string]interface{}{"nodes": len(data.Nodes)})

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
