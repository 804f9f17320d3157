package sqlserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/terraform-plugin-framework-validators/listvalidator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
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
	_ datasource.DataSource              = &PermissionsDataSource{}
	_ datasource.DataSourceWithConfigure = &PermissionsDataSource{}
)

type PermissionsDataSource struct {
	client *client.DBMClient
}

func NewPermissionsDataSource() datasource.DataSource {
	return &PermissionsDataSource{}
}

func (d *PermissionsDataSource) Metadata(
	ctx context.Context,
	req datasource.MetadataRequest,
	resp *datasource.MetadataResponse,
) {
	resp.TypeName = req.ProviderTypeName + "_sqlserver_permissions"
}

func (d *PermissionsDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.client = client.FromProviderData(req.ProviderData, &resp.Diagnostics)
}

func (d *PermissionsDataSource) Schema(
	ctx context.Context,
	req datasource.SchemaRequest,
	resp *datasource.SchemaResponse,
) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "SQLServer accounts of the current business with their authorization rules.",
		Attributes: map[string]schema.Attribute{
			"user": schema.StringAttribute{
				Optional:            true,
				MarkdownDescription: "Exact account name to keep.",
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"access_dbs": schema.ListAttribute{
				Optional:            true,
				ElementType:         types.StringType,
				MarkdownDescription: "Keep only rules on these databases. Accounts without such rules are dropped.",
				Validators: []validator.List{
					listvalidator.SizeAtLeast(1),
					listvalidator.ValueStringsAre(stringvalidator.LengthAtLeast(1)),
				},
			},
			"count": schema.Int64Attribute{
				Computed:            true,
				MarkdownDescription: "Number of accounts in `permissions`.",
			},
			"permissions": schema.ListNestedAttribute{
				Computed: true,
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"account_id": schema.Int64Attribute{
							Computed: true,
						},
						"user": schema.StringAttribute{
							Computed: true,
						},
						"creator": schema.StringAttribute{
							Computed: true,
						},
						"create_at": schema.StringAttribute{
							Computed:            true,
							MarkdownDescription: "Creation time in the provider time zone, `--` when unknown.",
						},
						"access_dbs": schema.ListAttribute{
							Computed:            true,
							ElementType:         types.StringType,
							MarkdownDescription: "Distinct databases the account has rules on.",
						},
						"rules": schema.ListNestedAttribute{
							Computed: true,
							NestedObject: schema.NestedAttributeObject{
								Attributes: map[string]schema.Attribute{
									"rule_id": schema.Int64Attribute{
										Computed: true,
									},
									"access_db": schema.StringAttribute{
										Computed: true,
									},
									"privilege": schema.StringAttribute{
										Computed:            true,
										MarkdownDescription: "Comma separated database roles.",
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

func (d *PermissionsDataSource) Read(
	ctx context.Context,
	req datasource.ReadRequest,
	resp *datasource.ReadResponse,
) {
	if d.client == nil {
		client.AddUnconfiguredError(&resp.Diagnostics)
		return
	}

	var data PermissionsModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	var accessDBs []string
	if !data.AccessDBs.IsNull() {
		resp.Diagnostics.Append(data.AccessDBs.ElementsAs(ctx, &accessDBs, false)...)
		if resp.Diagnostics.HasError() {
			return
		}
	}

	params := requests.Params{}
	utils.SetParam(params, "user", data.User)
	if len(accessDBs) > 0 {
		params["access_db"] = strings.Join(accessDBs, ",")
	}
	tflog.Debug(ctx, "listing sqlserver permissions", map[string]interface{}{"params": params})

	s := d.client.Session
	_, permissions, err := utils.FetchAllPages(ctx, params,
		func(ctx context.Context, params requests.Params) (*entities.ListBase[entities.SqlserverPermission], error) {
			return sources.GetSqlserverPermissionRules(ctx, s, params)
		},
	)
	if err != nil {
		resp.Diagnostics.AddError(
			fmt.Sprintln(consts.READ_RES_FAIL, "sqlserver permissions fetch error"),
			err.Error(),
		)
		return
	}

	// user matching on the backend is a substring search
	permissions = sources.FilterPermissionRules(permissions, data.User.ValueString(), accessDBs)
	tflog.Info(ctx, "sqlserver permissions listed", map[string]interface{}{"count": len(permissions)})

	data.Count = types.Int64Value(int64(len(permissions)))
	data.Permissions = make([]PermissionModel, 0, len(permissions))
	for _, p := range permissions {
		utils.WarnIfInvalid(&resp.Diagnostics, p)
		data.Permissions = append(data.Permissions, newPermissionModel(p, s.Location))
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
