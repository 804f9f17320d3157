package ticket

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/hashicorp/terraform-plugin-framework/types"

	"terraform-provider-dbm/pkg/client/entities"
)

type TicketModel struct {
	ID                types.Int64       `tfsdk:"id"`
	BkBizID           types.Int64       `tfsdk:"bk_biz_id"`
	TicketType        types.String      `tfsdk:"ticket_type"`
	TicketTypeDisplay types.String      `tfsdk:"ticket_type_display"`
	Status            types.String      `tfsdk:"status"`
	StatusDisplay     types.String      `tfsdk:"status_display"`
	Remark            types.String      `tfsdk:"remark"`
	Creator           types.String      `tfsdk:"creator"`
	CreateAt          types.String      `tfsdk:"create_at"`
	UpdateAt          types.String      `tfsdk:"update_at"`
	DetailsJSON       types.String      `tfsdk:"details_json"`
	Summary           map[string]string `tfsdk:"summary"`
}

func newTicketModel(t entities.Ticket, loc *time.Location) TicketModel {
	return TicketModel{
		ID:                types.Int64Value(int64(t.ID)),
		BkBizID:           types.Int64Value(int64(t.BkBizID)),
		TicketType:        types.StringValue(string(t.TicketType)),
		TicketTypeDisplay: types.StringValue(t.TicketTypeDisplay),
		Status:            types.StringValue(t.Status),
		StatusDisplay:     types.StringValue(t.StatusDisplay),
		Remark:            types.StringValue(t.Remark),
		Creator:           types.StringValue(t.Creator),
		CreateAt:          types.StringValue(t.CreateAtDisplay(loc)),
		UpdateAt:          types.StringValue(t.UpdateAtDisplay(loc)),
		DetailsJSON:       types.StringValue(compactDetails(t.RawDetails)),
		Summary:           entities.SummarizeTicketDetails(t.Details),
	}
}

// compactDetails returns the details payload on a single line, "{}" when
// there is none.
func compactDetails(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return "{}"
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
