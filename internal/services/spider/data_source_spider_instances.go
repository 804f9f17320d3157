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
	_ datasource.DataSource              = &SpiderInstancesDataSource{}
	_ datasource.DataSourceWithConfigure = &SpiderInstancesDataSource{}
)

type SpiderInstancesDataSource struct {
	client *client.DBMClient
}

func NewSpiderInstancesDataSource() datasource.DataSource {
	return &SpiderInstancesDataSource{}
}

func (d *SpiderInstancesDataSource) Metadata(
	ctx context.Context,
	req datasource.MetadataRequest,
	resp *datasource.MetadataResponse,
) {
	resp.TypeName = req.ProviderTypeName + "_spider_instances"
}

func (d *SpiderInstancesDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.client = client.FromProviderData(req.ProviderData, &resp.Diagnostics)
}

func (d *SpiderInstancesDataSource) Schema(
	ctx context.Context,
	req datasource.SchemaRequest,
	resp *datasource.SchemaResponse,
) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Spider and remote instances of the current business.",
		Attributes:          spiderInstancesFilterAttributes(),
	}
}

func (d *SpiderInstancesDataSource) Read(
	ctx context.Context,
	req datasource.ReadRequest,
	resp *datasource.ReadResponse,
) {
	if d.client == nil {
		client.AddUnconfiguredError(&resp.Diagnostics)
		return
	}

	var data SpiderInstancesModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	params := requests.Params{}
	utils.SetParam(params, "cluster_id", data.ClusterID)
	utils.SetParam(params, "role", data.Role)
	utils.SetParam(params, "ip", data.IP)
	utils.SetParam(params, "status", data.Status)
	tflog.Debug(ctx, "listing spider instances", map[string]interface{}{"params": params})

	s := d.client.Session
	_, instances, err := utils.FetchAllPages(ctx, params,
		func(ctx context.Context, params requests.Params) (*entities.ListBase[entities.TendbInstance], error) {
			return sources.GetSpiderInstances(ctx, s, params)
		},
	)
	if err != nil {
		resp.Diagnostics.AddError(
			fmt.Sprintln(consts.READ_RES_FAIL, "spider instances fetch error"),
			err.Error(),
		)
		return
	}

	instances = filterByMinVersion(instances, data.MinVersion.ValueString())
	tflog.Info(ctx, "spider instances listed", map[string]interface{}{"count": len(instances)})

	data.Count = types.Int64Value(int64(len(instances)))
	data.Instances = make([]SpiderInstanceModel, 0, len(instances))
	for _, inst := range instances {
		utils.WarnIfInvalid(&resp.Diagnostics, inst)
		data.Instances = append(data.Instances, newSpiderInstanceModel(inst, s.Location))
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

// filterByMinVersion keeps instances whose db_version is at least min. An
// empty min keeps everything; instances without a parseable version are
// dropped otherwise.
func filterByMinVersion(instances []entities.TendbInstance, min string) []entities.TendbInstance {
	if min == "" {
		return instances
	}
	filtered := make([]entities.TendbInstance, 0, len(instances))
	for _, inst := range instances {
		if utils.AtLeastVersion(inst.DBVersion.String(), min) {
			filtered = append(filtered, inst)
		}
	}
	return filtered
}
