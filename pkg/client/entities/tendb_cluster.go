package entities

import (
	"fmt"
	"time"
)

// ClusterInstance is the short instance form embedded in cluster payloads.
type ClusterInstance struct {
	BkBizID      int              `json:"bk_biz_id"`
	BkCloudID    int              `json:"bk_cloud_id"`
	BkHostID     int              `json:"bk_host_id"`
	BkInstanceID int              `json:"bk_instance_id"`
	Instance     string           `json:"instance"`
	IP           string           `json:"ip"`
	Name         string           `json:"name"`
	Phase        string           `json:"phase"`
	Port         int              `json:"port"`
	SpecConfig   InstanceSpecInfo `json:"spec_config"`
	Status       string           `json:"status"`
	Version      string           `json:"version"`
}

type ClusterOperation struct {
	ClusterID  int    `json:"cluster_id"`
	FlowID     int    `json:"flow_id"`
	TicketID   int    `json:"ticket_id"`
	TicketType string `json:"ticket_type"`
	Title      string `json:"title"`
	Status     string `json:"status"`
}

// TendbCluster is a spider (TenDB cluster) deployment.
type TendbCluster struct {
	ID                     int                `json:"id"`
	BkBizID                int                `json:"bk_biz_id"`
	BkCloudID              int                `json:"bk_cloud_id"`
	BkCloudName            string             `json:"bk_cloud_name"`
	ClusterName            string             `json:"cluster_name"`
	ClusterAlias           string             `json:"cluster_alias"`
	ClusterType            string             `json:"cluster_type"`
	ClusterTypeName        string             `json:"cluster_type_name"`
	MasterDomain           string             `json:"master_domain"`
	SlaveDomain            string             `json:"slave_domain"`
	Status                 string             `json:"status"`
	Phase                  string             `json:"phase"`
	PhaseName              string             `json:"phase_name"`
	MajorVersion           string             `json:"major_version"`
	DBModuleID             int                `json:"db_module_id"`
	DBModuleName           string             `json:"db_module_name"`
	Region                 string             `json:"region"`
	TimeZone               string             `json:"cluster_time_zone"`
	DisasterToleranceLevel string             `json:"disaster_tolerance_level"`
	Creator                string             `json:"creator"`
	CreateAt               string             `json:"create_at"`
	Updater                string             `json:"updater"`
	UpdateAt               string             `json:"update_at"`
	SpiderMaster           []ClusterInstance  `json:"spider_master"`
	SpiderSlave            []ClusterInstance  `json:"spider_slave"`
	SpiderMnt              []ClusterInstance  `json:"spider_mnt"`
	RemoteDB               []ClusterInstance  `json:"remote_db"`
	RemoteDR               []ClusterInstance  `json:"remote_dr"`
	ClusterSpec            InstanceSpecInfo   `json:"cluster_spec"`
	ClusterCapacity        int                `json:"cluster_capacity"`
	ClusterShardNum        int                `json:"cluster_shard_num"`
	RemoteShardNum         int                `json:"remote_shard_num"`
	MachinePairCnt         int                `json:"machine_pair_cnt"`
	Permission             map[string]bool    `json:"permission"`
	Operations             []ClusterOperation `json:"operations"`
}

const ClusterPhaseOnline = "online"

func (c TendbCluster) CreateAtDisplay(loc *time.Location) string {
	return UTCDisplayTime(c.CreateAt, loc)
}

func (c TendbCluster) IsOnline() bool {
	return c.Phase == ClusterPhaseOnline
}

// MasterDomainDisplay is the access entry "domain:port" of the spider masters.
func (c TendbCluster) MasterDomainDisplay() string {
	if len(c.SpiderMaster) == 0 {
		return c.MasterDomain
	}
	return fmt.Sprintf("%s:%d", c.MasterDomain, c.SpiderMaster[0].Port)
}

func (c TendbCluster) Validate() error {
	r := requiredFields{model: "tendb cluster"}
	r.int("id", c.ID)
	r.str("cluster_name", c.ClusterName)
	return r.err()
}
