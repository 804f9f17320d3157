package entities

type MongoDBReplicaSetItem struct {
	Domain string `json:"domain"`
	Name   string `json:"name"`
	SetID  string `json:"set_id"`
}

type DetailsMongoDBReplicaSet struct {
	BkCloudName            string                  `json:"bk_cloud_name"`
	CapSpec                string                  `json:"cap_spec"`
	CityCode               string                  `json:"city_code"`
	CityName               string                  `json:"city_name"`
	ClusterAlias           string                  `json:"cluster_alias"`
	ClusterID              int                     `json:"cluster_id"`
	ClusterName            string                  `json:"cluster_name"`
	ClusterType            string                  `json:"cluster_type"`
	DBAppAbbr              string                  `json:"db_app_abbr"`
	DBVersion              string                  `json:"db_version"`
	DisasterToleranceLevel string                  `json:"disaster_tolerance_level"`
	IPSource               string                  `json:"ip_source"`
	NodeCount              int                     `json:"node_count"`
	NodeReplicaCount       int                     `json:"node_replica_count"`
	OplogPercent           float64                 `json:"oplog_percent"`
	ProxyPort              int                     `json:"proxy_port"`
	ReplicaCount           int                     `json:"replica_count"`
	ReplicaSets            []MongoDBReplicaSetItem `json:"replica_sets"`
	ResourceSpec           struct {
		MongoMachineSet SpecInfo `json:"mongo_machine_set"`
	} `json:"resource_spec"`
	StartPort int `json:"start_port"`
}

func (d DetailsMongoDBReplicaSet) TicketType() TicketType { return TicketTypeMongoDBReplicaSetApply }

type DetailsMongoDBSharedCluster struct {
	BkCloudName            string  `json:"bk_cloud_name"`
	CapKey                 string  `json:"cap_key"`
	CapSpec                string  `json:"cap_spec"`
	CityCode               string  `json:"city_code"`
	CityName               string  `json:"city_name"`
	ClusterAlias           string  `json:"cluster_alias"`
	ClusterID              int     `json:"cluster_id"`
	ClusterName            string  `json:"cluster_name"`
	ClusterType            string  `json:"cluster_type"`
	DBAppAbbr              string  `json:"db_app_abbr"`
	DBVersion              string  `json:"db_version"`
	DisasterToleranceLevel string  `json:"disaster_tolerance_level"`
	IPSource               string  `json:"ip_source"`
	OplogPercent           float64 `json:"oplog_percent"`
	ProxyPort              int     `json:"proxy_port"`
	StartPort              int     `json:"start_port"`
	ResourceSpec           struct {
		MongoConfig SpecInfo `json:"mongo_config"`
		Mongos      SpecInfo `json:"mongos"`
		Mongodb     SpecInfo `json:"mongodb"`
	} `json:"resource_spec"`
}

func (d DetailsMongoDBSharedCluster) TicketType() TicketType { return TicketTypeMongoDBShardApply }

type MongoDBRuleSet struct {
	DB         string   `json:"db"`
	Privileges []string `json:"privileges"`
}

type MongoDBAuthorizeItem struct {
	AuthDB     string           `json:"auth_db"`
	ClusterIDs []int            `json:"cluster_ids"`
	Password   string           `json:"password"`
	RuleSets   []MongoDBRuleSet `json:"rule_sets"`
	Username   string           `json:"username"`
}

type MongoDBAuthorizeRules struct {
	AuthorizeData []MongoDBAuthorizeItem `json:"authorize_data,omitempty"`
	AuthorizeUID  string                 `json:"authorize_uid"`
	ExcelURL      string                 `json:"excel_url,omitempty"`
}

func (d MongoDBAuthorizeRules) TicketType() TicketType { return TicketTypeMongoDBAuthorizeRules }
