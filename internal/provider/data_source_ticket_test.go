package provider

import (
	"testing"

	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
)

const testAccTicketConfig = `
data "dbm_ticket" "backup" {
	id = 77
}

data "dbm_ticket" "migrate" {
	id = 78
}
`

func TestAccTicketDataSource(t *testing.T) {
	server := newTestServer(t)

	resource.Test(t, resource.TestCase{
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: providerConfig(server) + testAccTicketConfig,
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr("data.dbm_ticket.backup", "ticket_type", "SQLSERVER_BACKUP_DBS"),
					resource.TestCheckResourceAttr("data.dbm_ticket.backup", "status", "SUCCEEDED"),
					resource.TestCheckResourceAttr("data.dbm_ticket.backup", "summary.backup_type", "full_backup"),
					resource.TestCheckResourceAttr("data.dbm_ticket.backup", "summary.cluster_ids", "301"),
					resource.TestCheckResourceAttr("data.dbm_ticket.backup", "update_at", "2023-07-01 01:00:00 +0000"),
					resource.TestCheckResourceAttrSet("data.dbm_ticket.backup", "details_json"),
					resource.TestCheckResourceAttr("data.dbm_ticket.migrate", "ticket_type", "TENDBCLUSTER_MIGRATE_CLUSTER"),
					resource.TestCheckResourceAttr("data.dbm_ticket.migrate", "summary.cluster_ids", "12"),
					resource.TestCheckResourceAttr("data.dbm_ticket.migrate", "summary.ip_source", "resource_pool"),
				),
			},
		},
	})
}
