package provider

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework-validators/int64validator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"terraform-provider-dbm/internal/client"
	"terraform-provider-dbm/internal/consts"
	"terraform-provider-dbm/internal/services/environ"
	"terraform-provider-dbm/internal/services/mongodb"
	"terraform-provider-dbm/internal/services/spider"
	"terraform-provider-dbm/internal/services/sqlserver"
	"terraform-provider-dbm/internal/services/ticket"
	"terraform-provider-dbm/pkg/client/env"
)

var _ provider.Provider = &DBMProvider{}

type DBMProvider struct {
	version string
}

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &DBMProvider{
			version: version,
		}
	}
}

func (p *DBMProvider) Metadata(
	_ context.Context,
	_ provider.MetadataRequest,
	resp *provider.MetadataResponse,
) {
	resp.TypeName = "dbm"
	resp.Version = p.version
}

type DBMProviderModel struct {
	APIURL    types.String `tfsdk:"api_url"`
	AppCode   types.String `tfsdk:"app_code"`
	AppSecret types.String `tfsdk:"app_secret"`
	Username  types.String `tfsdk:"username"`
	BizID     types.Int64  `tfsdk:"biz_id"`
	TimeZone  types.String `tfsdk:"time_zone"`
}

func (p *DBMProvider) Schema(
	ctx context.Context,
	req provider.SchemaRequest,
	resp *provider.SchemaResponse,
) {
	resp.Schema = schema.Schema{
		Description:         "Reads clusters, instances, tickets and settings from BlueKing DBM.",
		MarkdownDescription: "Reads clusters, instances, tickets and settings from BlueKing DBM. Unset attributes fall back to the `DBM_*` and `BK_*` environment variables.",
		Attributes: map[string]schema.Attribute{
			"api_url": schema.StringAttribute{
				MarkdownDescription: "Base URL of the DBM API. Env: `DBM_API_URL`.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"app_code": schema.StringAttribute{
				MarkdownDescription: "BlueKing application code. Env: `BK_APP_CODE`.",
				Optional:            true,
			},
			"app_secret": schema.StringAttribute{
				MarkdownDescription: "BlueKing application secret. Env: `BK_APP_SECRET`.",
				Optional:            true,
				Sensitive:           true,
			},
			"username": schema.StringAttribute{
				MarkdownDescription: "User the requests are made for. Env: `BK_USERNAME`.",
				Optional:            true,
			},
			"biz_id": schema.Int64Attribute{
				MarkdownDescription: "Business ID every biz scoped request is made in. Env: `DBM_BIZ_ID`.",
				Optional:            true,
				Validators: []validator.Int64{
					int64validator.AtLeast(1),
				},
			},
			"time_zone": schema.StringAttribute{
				MarkdownDescription: "IANA time zone used to render timestamps, `Local` by default. Env: `DBM_TIME_ZONE`.",
				Optional:            true,
			},
		},
	}
}

func (p *DBMProvider) Configure(
	ctx context.Context,
	req provider.ConfigureRequest,
	resp *provider.ConfigureResponse,
) {
	var config DBMProviderModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &config)...)
	if resp.Diagnostics.HasError() {
		return
	}

	cfg, err := env.Load()
	if err != nil {
		resp.Diagnostics.AddError(consts.CONFIGURE_FAIL, err.Error())
		return
	}
	applyProviderModel(cfg, config)

	if cfg.APIURL == "" {
		resp.Diagnostics.AddAttributeError(
			path.Root("api_url"),
			consts.CONFIGURE_FAIL,
			"api_url is not set and DBM_API_URL is empty",
		)
	}
	if cfg.BizID <= 0 {
		resp.Diagnostics.AddAttributeError(
			path.Root("biz_id"),
			consts.CONFIGURE_FAIL,
			fmt.Sprintf("biz_id must be positive, got %d", cfg.BizID),
		)
	}
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Debug(ctx, "configuring dbm client", map[string]interface{}{"config": cfg.String()})

	c, err := client.NewDBMClient(cfg)
	if err != nil {
		resp.Diagnostics.AddError(consts.CONFIGURE_FAIL, err.Error())
		return
	}

	resp.DataSourceData = c
	resp.ResourceData = c
}

// applyProviderModel overrides cfg with every attribute set in the provider block.
func applyProviderModel(cfg *env.Config, m DBMProviderModel) {
	setString := func(dst *string, v types.String) {
		if !v.IsNull() && !v.IsUnknown() {
			*dst = v.ValueString()
		}
	}
	setString(&cfg.APIURL, m.APIURL)
	setString(&cfg.AppCode, m.AppCode)
	setString(&cfg.AppSecret, m.AppSecret)
	setString(&cfg.Username, m.Username)
	setString(&cfg.TimeZone, m.TimeZone)
	if !m.BizID.IsNull() && !m.BizID.IsUnknown() {
		cfg.BizID = m.BizID.ValueInt64()
	}
}

func (p *DBMProvider) Resources(_ context.Context) []func() resource.Resource {
	return []func() resource.Resource{}
}

func (p *DBMProvider) DataSources(_ context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		// Spider (TenDB cluster)
		spider.NewSpiderClustersDataSource,
		spider.NewSpiderClusterDataSource,
		spider.NewSpiderInstancesDataSource,
		spider.NewSpiderInstanceDataSource,

		// SQLServer
		sqlserver.NewResourceTreeDataSource,
		sqlserver.NewPermissionsDataSource,

		// MongoDB
		mongodb.NewMongodbInstanceDataSource,

		environ.NewSystemEnvironDataSource,
		ticket.NewTicketDataSource,
	}
}
