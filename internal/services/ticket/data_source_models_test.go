package ticket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"terraform-provider-dbm/pkg/client/entities"
)

func TestNewTicketModel(t *testing.T) {
	var ticket entities.Ticket
	payload := `{
		"id": 77,
		"bk_biz_id": 3,
		"ticket_type": "SQLSERVER_BACKUP_DBS",
		"status": "SUCCEEDED",
		"create_at": "2023-07-01T00:00:00Z",
		"details": {
			"backup_type": "full_backup",
			"infos": [{"cluster_id": 301, "backup_dbs": ["orders"]}]
		}
	}`
	if err := json.Unmarshal([]byte(payload), &ticket); err != nil {
		t.Fatal(err)
	}

	got := newTicketModel(ticket, time.UTC)

	if got.TicketType.ValueString() != "SQLSERVER_BACKUP_DBS" || got.Status.ValueString() != "SUCCEEDED" {
		t.Errorf("ticket = %+v", got)
	}
	if got.CreateAt.ValueString() != "2023-07-01 00:00:00 +0000" || got.UpdateAt.ValueString() != "--" {
		t.Errorf("times = %s / %s", got.CreateAt, got.UpdateAt)
	}
	wantJSON := `{"backup_type":"full_backup","infos":[{"cluster_id":301,"backup_dbs":["orders"]}]}`
	if got.DetailsJSON.ValueString() != wantJSON {
		t.Errorf("details_json = %s", got.DetailsJSON)
	}
	if got.Summary["cluster_ids"] != "301" || got.Summary["ticket_type"] != "SQLSERVER_BACKUP_DBS" {
		t.Errorf("summary = %v", got.Summary)
	}
}

func TestNewTicketModelUnknownType(t *testing.T) {
	var ticket entities.Ticket
	if err := json.Unmarshal([]byte(`{"id": 5, "ticket_type": "REDIS_PROXY_SCALE", "details": {"a": 1}}`), &ticket); err != nil {
		t.Fatal(err)
	}

	got := newTicketModel(ticket, time.UTC)

	if diff := cmp.Diff(map[string]string{"ticket_type": "REDIS_PROXY_SCALE"}, got.Summary); diff != "" {
		t.Errorf("summary (-want +got):\n%s", diff)
	}
	if got.DetailsJSON.ValueString() != `{"a":1}` {
		t.Errorf("details_json = %s", got.DetailsJSON)
	}
}

func TestCompactDetails(t *testing.T) {
	for raw, want := range map[string]string{
		"":              "{}",
		"null":          "{}",
		"{ \"x\" : 1 }": `{"x":1}`,
	} {
		if got := compactDetails(json.RawMessage(raw)); got != want {
			t.Errorf("compactDetails(%q) = %s, want %s", raw, got, want)
		}
	}
}
