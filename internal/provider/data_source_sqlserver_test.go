package provider

import (
	"regexp"
	"testing"

	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
)

const testAccSqlserverResourceTreeConfig = `
data "dbm_sqlserver_resource_tree" "ha" {
	cluster_type = "sqlserver_ha"
}
`

func TestAccSqlserverResourceTreeDataSource(t *testing.T) {
	server := newTestServer(t)
	dataSourceName := "data.dbm_sqlserver_resource_tree.ha"

	resource.Test(t, resource.TestCase{
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: providerConfig(server) + testAccSqlserverResourceTreeConfig,
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr(dataSourceName, "nodes.#", "4"),
					resource.TestCheckResourceAttr(dataSourceName, "nodes.0.key", "biz-3"),
					resource.TestCheckResourceAttr(dataSourceName, "nodes.0.parent", ""),
					resource.TestCheckResourceAttr(dataSourceName, "nodes.2.key", "cluster-301"),
					resource.TestCheckResourceAttr(dataSourceName, "nodes.2.parent", "module-21"),
					resource.TestCheckResourceAttr(dataSourceName, "nodes.2.depth", "2"),
					resource.TestCheckResourceAttr(dataSourceName, "nodes.3.domain", "sql-b.test.db"),
				),
			},
		},
	})
}

func TestAccSqlserverResourceTreeDataSourceInvalidType(t *testing.T) {
	server := newTestServer(t)

	resource.Test(t, resource.TestCase{
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: providerConfig(server) + `
data "dbm_sqlserver_resource_tree" "bad" {
	cluster_type = "sqlserver_cluster"
}
`,
				ExpectError: regexp.MustCompile(`Invalid Attribute Value Match`),
			},
		},
	})
}

const testAccSqlserverPermissionsConfig = `
data "dbm_sqlserver_permissions" "all" {}

data "dbm_sqlserver_permissions" "users_db" {
	access_dbs = ["users"]
}

data "dbm_sqlserver_permissions" "report" {
	user = "report_ro"
}
`

func TestAccSqlserverPermissionsDataSource(t *testing.T) {
	server := newTestServer(t)

	resource.Test(t, resource.TestCase{
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: providerConfig(server) + testAccSqlserverPermissionsConfig,
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr("data.dbm_sqlserver_permissions.all", "count", "2"),
					resource.TestCheckResourceAttr("data.dbm_sqlserver_permissions.all", "permissions.0.user", "app_rw"),
					resource.TestCheckResourceAttr("data.dbm_sqlserver_permissions.all", "permissions.0.access_dbs.#", "2"),
					resource.TestCheckResourceAttr("data.dbm_sqlserver_permissions.users_db", "count", "1"),
					resource.TestCheckResourceAttr("data.dbm_sqlserver_permissions.users_db", "permissions.0.rules.#", "1"),
					resource.TestCheckResourceAttr("data.dbm_sqlserver_permissions.users_db", "permissions.0.rules.0.privilege", "db_owner"),
					resource.TestCheckResourceAttr("data.dbm_sqlserver_permissions.report", "count", "1"),
					resource.TestCheckResourceAttr("data.dbm_sqlserver_permissions.report", "permissions.0.account_id", "5"),
				),
			},
		},
	})
}
