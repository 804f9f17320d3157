package consts

const (
	READ_RES_FAIL       = "Resource reading failed:"
	CONFIGURE_FAIL      = "Provider configuration failed:"
	UNCONFIGURED_CLIENT = "Unconfigured DBM client"
	PAYLOAD_WARNING     = "Incomplete DBM payload:"
	DEFAULT_PAGESIZE    = 100
)

var SQLSERVER_CLUSTER_TYPES = []string{
	"sqlserver_single",
	"sqlserver_ha",
}

var SPIDER_ROLES = []string{
	"spider_master",
	"spider_slave",
	"spider_mnt",
	"remote_master",
	"remote_slave",
}

var INSTANCE_STATUSES = []string{
	"running",
	"unavailable",
	"restoring",
}

var CLUSTER_STATUSES = []string{
	"normal",
	"abnormal",
}
