package test

const (
	BizID             = 3
	SpiderClusterID   = 12
	SpiderClusterName = "spider-test"
	SpiderDomain      = "spider.test.db"
	MongoClusterID    = 8
	MongoInstance     = "127.0.0.9:27001"
	BackupTicketID    = 77
	MigrateTicketID   = 78
)

const spiderClusterDetail = `{
	"id": 12,
	"bk_biz_id": 3,
	"bk_cloud_id": 0,
	"bk_cloud_name": "default area",
	"cluster_name": "spider-test",
	"cluster_alias": "spider for tests",
	"cluster_type": "tendbcluster",
	"cluster_type_name": "TendbCluster",
	"master_domain": "spider.test.db",
	"slave_domain": "spider-slave.test.db",
	"phase": "online",
	"status": "normal",
	"major_version": "MySQL-5.7",
	"db_module_id": 3,
	"db_module_name": "default",
	"region": "default",
	"cluster_time_zone": "+08:00",
	"cluster_shard_num": 4,
	"remote_shard_num": 2,
	"machine_pair_cnt": 2,
	"creator": "admin",
	"updater": "admin",
	"create_at": "2023-05-01T10:00:00Z",
	"update_at": "2023-05-02T10:00:00Z",
	"spider_master": [
		{"bk_host_id": 1, "bk_cloud_id": 0, "instance": "127.0.0.1:25000", "ip": "127.0.0.1", "port": 25000, "status": "running", "spec_config": {"id": 7, "name": "2C4G"}},
		{"bk_host_id": 2, "bk_cloud_id": 0, "instance": "127.0.0.2:25000", "ip": "127.0.0.2", "port": 25000, "status": "running", "spec_config": {"id": 7, "name": "2C4G"}}
	],
	"spider_slave": [],
	"spider_mnt": [],
	"remote_db": [
		{"bk_host_id": 3, "bk_cloud_id": 0, "instance": "127.0.0.3:20000", "ip": "127.0.0.3", "port": 20000, "status": "running"}
	],
	"remote_dr": [
		{"bk_host_id": 4, "bk_cloud_id": 0, "instance": "127.0.0.4:20000", "ip": "127.0.0.4", "port": 20000, "status": "running"}
	],
	"cluster_spec": {"id": 7, "name": "2C4G", "cpu": {"max": 2, "min": 2}, "mem": {"max": 4, "min": 4}},
	"permission": {"tendbcluster_view": true, "tendbcluster_node_scale_up": false},
	"operations": []
}`

const spiderClusterList = `{
	"count": 2,
	"results": [
		` + spiderClusterDetail + `,
		{
			"id": 13,
			"bk_biz_id": 3,
			"cluster_name": "spider-prod",
			"cluster_type": "tendbcluster",
			"master_domain": "spider.prod.db",
			"phase": "offline",
			"status": "abnormal",
			"major_version": "MySQL-8.0",
			"db_module_id": 4,
			"create_at": "2023-06-01T00:00:00Z",
			"spider_master": [],
			"remote_db": [],
			"permission": {"tendbcluster_view": true}
		}
	]
}`

const spiderInstance = `{
	"bk_cloud_id": 0,
	"bk_cloud_name": "default area",
	"bk_host_id": 1,
	"cluster_id": 12,
	"cluster_type": "tendbcluster",
	"cluster_name": "spider-test",
	"create_at": "2023-01-01T00:00:00Z",
	"db_module_id": 3,
	"id": 501,
	"instance_address": "127.0.0.1:25000",
	"ip": "127.0.0.1",
	"machine_type": "spider",
	"master_domain": "spider.test.db",
	"permission": {"tendbcluster_view": true},
	"port": 25000,
	"role": "spider_master",
	"status": "running",
	"slave_domain": "spider-slave.test.db",
	"spec_config": {"id": 7, "name": "2C4G", "cpu": {"max": 2, "min": 2}, "mem": {"max": 4, "min": 4}, "count": 2},
	"version": "Spider-3",
	"bk_cpu": 2,
	"bk_disk": 100,
	"bk_host_innerip": "127.0.0.1",
	"bk_mem": 4096,
	"bk_os_name": "linux centos",
	"bk_idc_name": "idc-1",
	"bk_idc_id": "11",
	"db_version": "5.7.20"
}`

const spiderInstanceList = `{
	"count": 3,
	"results": [
		` + spiderInstance + `,
		{
			"bk_host_id": 2,
			"cluster_id": 12,
			"cluster_name": "spider-test",
			"create_at": "2023-01-01T00:00:00Z",
			"id": 502,
			"instance_address": "127.0.0.2:25000",
			"ip": "127.0.0.2",
			"port": 25000,
			"role": "spider_master",
			"status": "unavailable",
			"db_version": "5.7.20"
		},
		{
			"bk_host_id": 3,
			"cluster_id": 12,
			"cluster_name": "spider-test",
			"create_at": "2023-01-01T00:00:00Z",
			"id": 503,
			"instance_address": "127.0.0.3:20000",
			"ip": "127.0.0.3",
			"port": 20000,
			"role": "remote_master",
			"status": "running",
			"db_version": "8.0.18"
		}
	]
}`

const sqlserverResourceTree = `[{
	"id": 3, "name": "biz", "obj_id": "biz", "obj_name": "Business", "instance_count": 3,
	"children": [
		{"id": 21, "name": "sqlserver-default", "obj_id": "module", "obj_name": "Module", "instance_count": 3,
		 "children": [
			{"id": 301, "name": "sql-a", "obj_id": "cluster", "obj_name": "Cluster", "instance_count": 2, "extra": {"domain": "sql-a.test.db"}, "children": []},
			{"id": 302, "name": "sql-b", "obj_id": "cluster", "obj_name": "Cluster", "instance_count": 1, "extra": {"domain": "sql-b.test.db"}, "children": []}
		 ]}
	]
}]`

const sqlserverPermissions = `{
	"count": 2,
	"results": [
		{
			"create_at": "2023-03-01T00:00:00Z", "creator": "admin", "update_at": "2023-03-01T00:00:00Z", "updater": "admin",
			"account": {"account_id": 4, "bk_biz_id": 3, "creator": "admin", "create_time": "2023-03-01", "user": "app_rw"},
			"rules": [
				{"account_id": 4, "access_db": "orders", "bk_biz_id": 3, "creator": "admin", "create_time": "2023-03-01", "rule_id": 1, "privilege": "db_datareader,db_datawriter"},
				{"account_id": 4, "access_db": "users", "bk_biz_id": 3, "creator": "admin", "create_time": "2023-03-01", "rule_id": 2, "privilege": "db_owner"}
			]
		},
		{
			"create_at": "2023-03-05T00:00:00Z", "creator": "admin", "update_at": "2023-03-05T00:00:00Z", "updater": "admin",
			"account": {"account_id": 5, "bk_biz_id": 3, "creator": "admin", "create_time": "2023-03-05", "user": "report_ro"},
			"rules": [
				{"account_id": 5, "access_db": "orders", "bk_biz_id": 3, "creator": "admin", "create_time": "2023-03-05", "rule_id": 3, "privilege": "db_datareader"}
			]
		}
	]
}`

const mongodbInstance = `{
	"bk_agent_id": "agent-1",
	"bk_cloud_id": 0,
	"bk_cloud_name": "default area",
	"bk_cpu": 4,
	"bk_disk": 200,
	"bk_host_id": 33,
	"bk_host_innerip": "127.0.0.9",
	"bk_idc_id": "5",
	"bk_idc_name": "idc-5",
	"bk_mem": 8192,
	"bk_os_name": "linux",
	"cluster_id": 8,
	"cluster_name": "mongo-rs",
	"cluster_type": "MongoReplicaSet",
	"create_at": "2023-02-02T02:02:02Z",
	"db_module_id": 0,
	"db_version": "4.2.24",
	"id": 90,
	"instance_address": "127.0.0.9:27001",
	"ip": "127.0.0.9",
	"machine_type": "mongodb",
	"master_domain": "m1.mongo-rs.db",
	"port": 27001,
	"role": "m1",
	"shard": "",
	"slave_domain": "",
	"spec_config": "{\"id\": 2}",
	"status": "running",
	"version": "4.2"
}`

const systemEnviron = `{
	"BK_CMDB_URL": "http://cmdb.example.com",
	"BK_NODEMAN_URL": "http://nodeman.example.com",
	"BK_SCR_URL": "http://scr.example.com",
	"ENABLE_EXTERNAL_PROXY": false,
	"AFFINITY": [
		{"label": "Cross city", "value": "CROS_SUBZONE"},
		{"label": "Same city", "value": "SAME_SUBZONE"}
	]
}`

const backupTicket = `{
	"id": 77,
	"bk_biz_id": 3,
	"ticket_type": "SQLSERVER_BACKUP_DBS",
	"ticket_type_display": "SQLServer backup",
	"status": "SUCCEEDED",
	"status_display": "succeeded",
	"remark": "nightly",
	"creator": "admin",
	"create_at": "2023-07-01T00:00:00Z",
	"updater": "admin",
	"update_at": "2023-07-01T01:00:00Z",
	"details": {
		"backup_place": "master",
		"backup_type": "full_backup",
		"file_tag": "DBFILE1M",
		"clusters": {"301": {"id": 301, "name": "sql-a", "immute_domain": "sql-a.test.db", "cluster_type": "sqlserver_ha"}},
		"infos": [{"cluster_id": 301, "backup_dbs": ["orders", "users"]}]
	}
}`

const migrateTicket = `{
	"id": 78,
	"bk_biz_id": 3,
	"ticket_type": "TENDBCLUSTER_MIGRATE_CLUSTER",
	"ticket_type_display": "TendbCluster migrate",
	"status": "RUNNING",
	"status_display": "running",
	"creator": "admin",
	"create_at": "2023-07-02T00:00:00Z",
	"details": {
		"ip_source": "resource_pool",
		"backup_source": "remote",
		"infos": [{"cluster_id": 12, "new_master": {"ip": "127.0.0.5", "bk_host_id": 5}, "new_slave": {"ip": "127.0.0.6", "bk_host_id": 6}}],
		"clusters": {"12": {"id": 12, "name": "spider-test", "immute_domain": "spider.test.db"}}
	}
}`

// LoadDefaults registers the fixture dataset: two spider clusters, their
// instances, a sqlserver resource tree and permissions, one mongodb
// instance, the system environ and two tickets.
func (s *Server) LoadDefaults() {
	s.Respond(s.BizPath("mysql", "spider_resources"), spiderClusterList)
	s.Respond(s.BizPath("mysql", "spider_resources", "12"), spiderClusterDetail)
	s.Respond(s.BizPath("mysql", "spider_resources", "list_instances"), spiderInstanceList)
	s.Respond(s.BizPath("mysql", "spider_resources", "retrieve_instance"), spiderInstance)
	s.Respond(s.BizPath("sqlserver", "resource_tree"), sqlserverResourceTree)
	s.Respond(s.BizPath("sqlserver", "permission/account", "list_account_rules"), sqlserverPermissions)
	s.Respond(s.BizPath("mongodb", "mongodb_resources", "list_instances"), `{"count": 1, "results": [`+mongodbInstance+`]}`)
	s.Respond(s.BizPath("mongodb", "mongodb_resources", "retrieve_instance"), mongodbInstance)
	s.Respond("/apis/conf/system_settings/environ/", systemEnviron)
	s.Respond("/apis/tickets/77/", backupTicket)
	s.Respond("/apis/tickets/78/", migrateTicket)
}
