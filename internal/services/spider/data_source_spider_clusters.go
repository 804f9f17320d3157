package spider

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"terraform-provider-dbm/internal/client"
	"terraform-provider-dbm/internal/consts"
	"terraform-provider-dbm/internal/utils"
	"terraform-provider-dbm/pkg/client/entities"
	"terraform-provider-dbm/pkg/client/requests"
	"terraform-provider-dbm/pkg/client/sources"
)

var (
	_ datasource.DataSource              = &SpiderClustersDataSource{}
	_ datasource.DataSourceWithConfigure = &SpiderClustersDataSource{}
)

type SpiderClustersDataSource struct {
	client *client.DBMClient
}

func NewSpiderClustersDataSource() datasource.DataSource {
	return &SpiderClustersDataSource{}
}

func (d *SpiderClustersDataSource) Metadata(
	ctx context.Context,
	req datasource.MetadataRequest,
	resp *datasource.MetadataResponse,
) {
	resp.TypeName = req.ProviderTypeName + "_spider_clusters"
}

func (d *SpiderClustersDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.client = client.FromProviderData(req.ProviderData, &resp.Diagnostics)
}

func (d *SpiderClustersDataSource) Schema(
	ctx context.Context,
	req datasource.SchemaRequest,
	resp *datasource.SchemaResponse,
) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Spider (TenDB cluster) clusters of the current business.",
		Attributes:          spiderClustersFilterAttributes(),
	}
}

func (d *SpiderClustersDataSource) Read(
	ctx context.Context,
	req datasource.ReadRequest,
	resp *datasource.ReadResponse,
) {
	if d.client == nil {
		client.AddUnconfiguredError(&resp.Diagnostics)
		return
	}

	var data SpiderClustersModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	params := requests.Params{}
	utils.SetParam(params, "name", data.Name)
	utils.SetParam(params, "domain", data.Domain)
	utils.SetParam(params, "status", data.Status)
	utils.SetParam(params, "db_module_id", data.DBModuleID)
	tflog.Debug(ctx, "listing spider clusters", map[string]interface{}{"params": params})

	s := d.client.Session
	count, clusters, err := utils.FetchAllPages(ctx, params,
		func(ctx context.Context, params requests.Params) (*entities.ListBase[entities.TendbCluster], error) {
			return sources.GetSpiderList(ctx, s, params)
		},
	)
	if err != nil {
		resp.Diagnostics.AddError(
			fmt.Sprintln(consts.READ_RES_FAIL, "spider clusters fetch error"),
			err.Error(),
		)
		return
	}
	tflog.Info(ctx, "spider clusters listed", map[string]interface{}{"count": count, "fetched": len(clusters)})

	data.Count = types.Int64Value(int64(count))
	data.Clusters = make([]SpiderClusterModel, 0, len(clusters))
	for _, cluster := range clusters {
		utils.WarnIfInvalid(&resp.Diagnostics, cluster)
		data.Clusters = append(data.Clusters, newSpiderClusterModel(cluster, s.Location))
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
