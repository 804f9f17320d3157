package entities

import "time"

type TendbInstancePermission struct {
	TendbclusterView bool `json:"tendbcluster_view"`
}

// TendbInstance is one spider or remote node of a TenDB cluster. The bk_*
// host fields and db_version are optional in payloads and fall back to
// zero values. bk_idc_id comes from CMDB as a string or a number.
type TendbInstance struct {
	BkCloudID       int                     `json:"bk_cloud_id"`
	BkCloudName     string                  `json:"bk_cloud_name"`
	BkHostID        int                     `json:"bk_host_id"`
	ClusterID       int                     `json:"cluster_id"`
	ClusterType     string                  `json:"cluster_type"`
	ClusterName     string                  `json:"cluster_name"`
	CreateAt        string                  `json:"create_at"`
	DBModuleID      int                     `json:"db_module_id"`
	ID              int                     `json:"id"`
	InstanceAddress string                  `json:"instance_address"`
	IP              string                  `json:"ip"`
	MachineType     string                  `json:"machine_type"`
	MasterDomain    string                  `json:"master_domain"`
	Permission      TendbInstancePermission `json:"permission"`
	Port            int                     `json:"port"`
	Role            string                  `json:"role"`
	Status          string                  `json:"status"`
	SlaveDomain     string                  `json:"slave_domain"`
	SpecConfig      InstanceSpecInfo        `json:"spec_config"`
	Version         string                  `json:"version"`
	BkCPU           int                     `json:"bk_cpu"`
	BkDisk          int                     `json:"bk_disk"`
	BkHostInnerIP   string                  `json:"bk_host_innerip"`
	BkMem           int                     `json:"bk_mem"`
	BkOsName        string                  `json:"bk_os_name"`
	BkIdcName       string                  `json:"bk_idc_name"`
	BkIdcID         FlexString              `json:"bk_idc_id"`
	DBVersion       FlexString              `json:"db_version"`
}

const (
	InstanceStatusRunning     = "running"
	InstanceStatusUnavailable = "unavailable"
)

func (i TendbInstance) CreateAtDisplay(loc *time.Location) string {
	return UTCDisplayTime(i.CreateAt, loc)
}

func (i TendbInstance) IsRunning() bool {
	return i.Status == InstanceStatusRunning
}

func (i TendbInstance) Validate() error {
	r := requiredFields{model: "tendb instance"}
	r.str("instance_address", i.InstanceAddress)
	r.int("cluster_id", i.ClusterID)
	return r.err()
}
