package ticket

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework-validators/int64validator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"terraform-provider-dbm/internal/client"
	"terraform-provider-dbm/internal/consts"
	"terraform-provider-dbm/internal/utils"
	"terraform-provider-dbm/pkg/client/entities"
	"terraform-provider-dbm/pkg/client/sources"
)

var (
	_ datasource.DataSource              = &TicketDataSource{}
	_ datasource.DataSourceWithConfigure = &TicketDataSource{}
)

type TicketDataSource struct {
	client *client.DBMClient
}

func NewTicketDataSource() datasource.DataSource {
	return &TicketDataSource{}
}

func (d *TicketDataSource) Metadata(
	ctx context.Context,
	req datasource.MetadataRequest,
	resp *datasource.MetadataResponse,
) {
	resp.TypeName = req.ProviderTypeName + "_ticket"
}

func (d *TicketDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.client = client.FromProviderData(req.ProviderData, &resp.Diagnostics)
}

func (d *TicketDataSource) Schema(
	ctx context.Context,
	req datasource.SchemaRequest,
	resp *datasource.SchemaResponse,
) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "A DBM ticket with its type specific details.",
		Attributes: map[string]schema.Attribute{
			"id": schema.Int64Attribute{
				Required:            true,
				MarkdownDescription: "Ticket ID.",
				Validators: []validator.Int64{
					int64validator.AtLeast(1),
				},
			},
			"bk_biz_id": schema.Int64Attribute{
				Computed: true,
			},
			"ticket_type": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Ticket type, e.g. `SQLSERVER_BACKUP_DBS`.",
			},
			"ticket_type_display": schema.StringAttribute{
				Computed: true,
			},
			"status": schema.StringAttribute{
				Computed: true,
			},
			"status_display": schema.StringAttribute{
				Computed: true,
			},
			"remark": schema.StringAttribute{
				Computed: true,
			},
			"creator": schema.StringAttribute{
				Computed: true,
			},
			"create_at": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Creation time in the provider time zone, `--` when unknown.",
			},
			"update_at": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Last update time in the provider time zone, `--` when unknown.",
			},
			"details_json": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Ticket details as compact JSON. Use `jsondecode` to read nested fields.",
			},
			"summary": schema.MapAttribute{
				Computed:            true,
				ElementType:         types.StringType,
				MarkdownDescription: "Flat summary of the details. Unknown ticket types only carry `ticket_type`.",
			},
		},
	}
}

func (d *TicketDataSource) Read(
	ctx context.Context,
	req datasource.ReadRequest,
	resp *datasource.ReadResponse,
) {
	if d.client == nil {
		client.AddUnconfiguredError(&resp.Diagnostics)
		return
	}

	var data TicketModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	id := int(data.ID.ValueInt64())
	tflog.Debug(ctx, "reading ticket", map[string]interface{}{"id": id})

	ticket, err := sources.GetTicket(ctx, d.client.Session, id)
	if err != nil {
		resp.Diagnostics.AddAttributeError(
			path.Root("id"),
			fmt.Sprintln(consts.READ_RES_FAIL, "ticket fetch error"),
			err.Error(),
		)
		return
	}
	utils.WarnIfInvalid(&resp.Diagnostics, ticket)
	if _, ok := ticket.Details.(entities.UnknownDetails); ok {
		tflog.Info(ctx, "ticket details are not modelled, only details_json is filled", map[string]interface{}{
			"ticket_type": string(ticket.TicketType),
		})
	}

	state := newTicketModel(*ticket, d.client.Session.Location)
	state.ID = data.ID
	resp.Diagnostics.Append(resp.State.Set(ctx, &state)...)
}
