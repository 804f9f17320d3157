package entities

type SqlserverDomain struct {
	Key    string `json:"key"`
	Master string `json:"master"`
	Slave  string `json:"slave"`
}

type TicketHost struct {
	IP        string `json:"ip"`
	BkHostID  int    `json:"bk_host_id"`
	BkCloudID int    `json:"bk_cloud_id"`
	BkBizID   int    `json:"bk_biz_id"`
}

// DetailsSqlserver covers both single and HA deployments; Type records which.
type DetailsSqlserver struct {
	Type                   TicketType        `json:"-"`
	BkCloudID              int               `json:"bk_cloud_id"`
	Charset                string            `json:"charset"`
	CityCode               string            `json:"city_code"`
	CityName               string            `json:"city_name"`
	ClusterCount           int               `json:"cluster_count"`
	DBModuleID             int               `json:"db_module_id"`
	DBModuleName           string            `json:"db_module_name"`
	DBVersion              string            `json:"db_version"`
	DisasterToleranceLevel string            `json:"disaster_tolerance_level"`
	Domains                []SqlserverDomain `json:"domains"`
	InstNum                int               `json:"inst_num"`
	IPSource               string            `json:"ip_source"`
	Nodes                  struct {
		Backend []TicketHost `json:"backend"`
	} `json:"nodes"`
	ResourceSpec struct {
		Backend SpecInfo `json:"backend"`
	} `json:"resource_spec"`
	Spec           string `json:"spec"`
	SpecDisplay    string `json:"spec_display"`
	StartMysqlPort int    `json:"start_mysql_port"`
	StartMssqlPort int    `json:"start_mssql_port"`
}

func (d DetailsSqlserver) TicketType() TicketType {
	if d.Type == "" {
		return TicketTypeSqlserverSingleApply
	}
	return d.Type
}

// TicketCluster is the cluster summary tickets carry keyed by cluster id.
type TicketCluster struct {
	ID                     int      `json:"id"`
	Tag                    []string `json:"tag"`
	Name                   string   `json:"name"`
	Alias                  string   `json:"alias"`
	Phase                  string   `json:"phase"`
	Region                 string   `json:"region"`
	Status                 string   `json:"status"`
	Creator                string   `json:"creator"`
	Updater                string   `json:"updater"`
	BkBizID                int      `json:"bk_biz_id"`
	TimeZone               string   `json:"time_zone"`
	BkCloudID              int      `json:"bk_cloud_id"`
	ClusterType            string   `json:"cluster_type"`
	DBModuleID             int      `json:"db_module_id"`
	ImmuteDomain           string   `json:"immute_domain"`
	MajorVersion           string   `json:"major_version"`
	ClusterTypeName        string   `json:"cluster_type_name"`
	DisasterToleranceLevel string   `json:"disaster_tolerance_level"`
}

type SqlserverBackupInfo struct {
	BackupDBs []string `json:"backup_dbs"`
	ClusterID int      `json:"cluster_id"`
}

type SqlserverDbBackup struct {
	BackupPlace string                `json:"backup_place"`
	BackupType  string                `json:"backup_type"`
	Clusters    map[int]TicketCluster `json:"clusters"`
	FileTag     string                `json:"file_tag"`
	Infos       []SqlserverBackupInfo `json:"infos"`
}

func (d SqlserverDbBackup) TicketType() TicketType { return TicketTypeSqlserverBackupDBs }

type SqlserverAuthorizeItem struct {
	User            string   `json:"user"`
	TargetInstances []string `json:"target_instances"`
	AccessDBs       []string `json:"access_dbs"`
	ClusterType     string   `json:"cluster_type"`
}

type SqlserverAuthorizeRules struct {
	AuthorizeData []SqlserverAuthorizeItem `json:"authorize_data,omitempty"`
	AuthorizeUID  string                   `json:"authorize_uid"`
	ExcelURL      string                   `json:"excel_url,omitempty"`
}

func (d SqlserverAuthorizeRules) TicketType() TicketType { return TicketTypeSqlserverAuthorizeRules }
