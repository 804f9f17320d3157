package entities

import "time"

type MongodbInstanceDetail struct {
	BkAgentID       string      `json:"bk_agent_id"`
	BkCloudID       int         `json:"bk_cloud_id"`
	BkCloudName     string      `json:"bk_cloud_name"`
	BkCPU           int         `json:"bk_cpu"`
	BkDisk          int         `json:"bk_disk"`
	BkHostID        int         `json:"bk_host_id"`
	BkHostInnerIP   string      `json:"bk_host_innerip"`
	BkIdcID         FlexString  `json:"bk_idc_id"`
	BkIdcName       string      `json:"bk_idc_name"`
	BkMem           int         `json:"bk_mem"`
	BkOsName        string      `json:"bk_os_name"`
	ClusterID       int         `json:"cluster_id"`
	ClusterName     string      `json:"cluster_name"`
	ClusterType     string      `json:"cluster_type"`
	CreateAt        string      `json:"create_at"`
	DBModuleID      int         `json:"db_module_id"`
	DBVersion       *FlexString `json:"db_version"`
	ID              int         `json:"id"`
	InstanceAddress string      `json:"instance_address"`
	IP              string      `json:"ip"`
	MachineType     string      `json:"machine_type"`
	MasterDomain    string      `json:"master_domain"`
	Port            int         `json:"port"`
	Role            string      `json:"role"`
	Shard           string      `json:"shard"`
	SlaveDomain     string      `json:"slave_domain"`
	SpecConfig      FlexString  `json:"spec_config"`
	Status          string      `json:"status"`
	Version         string      `json:"version"`
}

func (i MongodbInstanceDetail) CreateAtDisplay(loc *time.Location) string {
	return UTCDisplayTime(i.CreateAt, loc)
}

func (i MongodbInstanceDetail) Validate() error {
	r := requiredFields{model: "mongodb instance"}
	r.str("instance_address", i.InstanceAddress)
	r.int("cluster_id", i.ClusterID)
	return r.err()
}
