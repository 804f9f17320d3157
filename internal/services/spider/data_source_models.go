package spider

import (
	"time"

	"github.com/hashicorp/terraform-plugin-framework/types"

	"terraform-provider-dbm/internal/utils"
	"terraform-provider-dbm/pkg/client/entities"
)

type SpiderClusterModel struct {
	ID           types.Int64  `tfsdk:"id"`
	ClusterName  types.String `tfsdk:"cluster_name"`
	ClusterAlias types.String `tfsdk:"cluster_alias"`
	MasterDomain types.String `tfsdk:"master_domain"`
	SlaveDomain  types.String `tfsdk:"slave_domain"`
	AccessEntry  types.String `tfsdk:"access_entry"`
	Status       types.String `tfsdk:"status"`
	Phase        types.String `tfsdk:"phase"`
	Online       types.Bool   `tfsdk:"online"`
	MajorVersion types.String `tfsdk:"major_version"`
	DBModuleID   types.Int64  `tfsdk:"db_module_id"`
	Region       types.String `tfsdk:"region"`
	TimeZone     types.String `tfsdk:"time_zone"`
	ShardNum     types.Int64  `tfsdk:"cluster_shard_num"`
	SpecName     types.String `tfsdk:"spec_name"`
	SpiderMaster []string     `tfsdk:"spider_master"`
	SpiderSlave  []string     `tfsdk:"spider_slave"`
	RemoteDB     []string     `tfsdk:"remote_db"`
	RemoteDR     []string     `tfsdk:"remote_dr"`
	Permissions  []string     `tfsdk:"permissions"`
	Creator      types.String `tfsdk:"creator"`
	CreateAt     types.String `tfsdk:"create_at"`
}

type SpiderClustersModel struct {
	Name       types.String         `tfsdk:"name"`
	Domain     types.String         `tfsdk:"domain"`
	Status     types.String         `tfsdk:"status"`
	DBModuleID types.Int64          `tfsdk:"db_module_id"`
	Count      types.Int64          `tfsdk:"count"`
	Clusters   []SpiderClusterModel `tfsdk:"clusters"`
}

type SpiderInstanceModel struct {
	ID              types.Int64  `tfsdk:"id"`
	InstanceAddress types.String `tfsdk:"instance_address"`
	IP              types.String `tfsdk:"ip"`
	Port            types.Int64  `tfsdk:"port"`
	Role            types.String `tfsdk:"role"`
	Status          types.String `tfsdk:"status"`
	ClusterID       types.Int64  `tfsdk:"cluster_id"`
	ClusterName     types.String `tfsdk:"cluster_name"`
	MasterDomain    types.String `tfsdk:"master_domain"`
	DBVersion       types.String `tfsdk:"db_version"`
	Version         types.String `tfsdk:"version"`
	SpecName        types.String `tfsdk:"spec_name"`
	BkHostID        types.Int64  `tfsdk:"bk_host_id"`
	BkHostInnerIP   types.String `tfsdk:"bk_host_innerip"`
	BkCPU           types.Int64  `tfsdk:"bk_cpu"`
	BkMem           types.Int64  `tfsdk:"bk_mem"`
	BkDisk          types.Int64  `tfsdk:"bk_disk"`
	BkOsName        types.String `tfsdk:"bk_os_name"`
	BkIdcName       types.String `tfsdk:"bk_idc_name"`
	CreateAt        types.String `tfsdk:"create_at"`
}

type SpiderInstancesModel struct {
	ClusterID  types.Int64           `tfsdk:"cluster_id"`
	Role       types.String          `tfsdk:"role"`
	IP         types.String          `tfsdk:"ip"`
	Status     types.String          `tfsdk:"status"`
	MinVersion types.String          `tfsdk:"min_version"`
	Count      types.Int64           `tfsdk:"count"`
	Instances  []SpiderInstanceModel `tfsdk:"instances"`
}

func instanceAddresses(instances []entities.ClusterInstance) []string {
	addrs := make([]string, 0, len(instances))
	for _, inst := range instances {
		addrs = append(addrs, inst.Instance)
	}
	return addrs
}

// grantedPermissions lists the permission flags set to true, sorted.
func grantedPermissions(permission map[string]bool) []string {
	granted := []string{}
	for _, key := range utils.GetMapKeys(permission) {
		if permission[key] {
			granted = append(granted, key)
		}
	}
	return granted
}

func newSpiderClusterModel(c entities.TendbCluster, loc *time.Location) SpiderClusterModel {
	return SpiderClusterModel{
		ID:           types.Int64Value(int64(c.ID)),
		ClusterName:  types.StringValue(c.ClusterName),
		ClusterAlias: types.StringValue(c.ClusterAlias),
		MasterDomain: types.StringValue(c.MasterDomain),
		SlaveDomain:  types.StringValue(c.SlaveDomain),
		AccessEntry:  types.StringValue(c.MasterDomainDisplay()),
		Status:       types.StringValue(c.Status),
		Phase:        types.StringValue(c.Phase),
		Online:       types.BoolValue(c.IsOnline()),
		MajorVersion: types.StringValue(c.MajorVersion),
		DBModuleID:   types.Int64Value(int64(c.DBModuleID)),
		Region:       types.StringValue(c.Region),
		TimeZone:     types.StringValue(c.TimeZone),
		ShardNum:     types.Int64Value(int64(c.ClusterShardNum)),
		SpecName:     types.StringValue(c.ClusterSpec.Name),
		SpiderMaster: instanceAddresses(c.SpiderMaster),
		SpiderSlave:  instanceAddresses(c.SpiderSlave),
		RemoteDB:     instanceAddresses(c.RemoteDB),
		RemoteDR:     instanceAddresses(c.RemoteDR),
		Permissions:  grantedPermissions(c.Permission),
		Creator:      types.StringValue(c.Creator),
		CreateAt:     types.StringValue(c.CreateAtDisplay(loc)),
	}
}

func newSpiderInstanceModel(i entities.TendbInstance, loc *time.Location) SpiderInstanceModel {
	return SpiderInstanceModel{
		ID:              types.Int64Value(int64(i.ID)),
		InstanceAddress: types.StringValue(i.InstanceAddress),
		IP:              types.StringValue(i.IP),
		Port:            types.Int64Value(int64(i.Port)),
		Role:            types.StringValue(i.Role),
		Status:          types.StringValue(i.Status),
		ClusterID:       types.Int64Value(int64(i.ClusterID)),
		ClusterName:     types.StringValue(i.ClusterName),
		MasterDomain:    types.StringValue(i.MasterDomain),
		DBVersion:       types.StringValue(i.DBVersion.String()),
		Version:         types.StringValue(i.Version),
		SpecName:        types.StringValue(i.SpecConfig.Name),
		BkHostID:        types.Int64Value(int64(i.BkHostID)),
		BkHostInnerIP:   types.StringValue(i.BkHostInnerIP),
		BkCPU:           types.Int64Value(int64(i.BkCPU)),
		BkMem:           types.Int64Value(int64(i.BkMem)),
		BkDisk:          types.Int64Value(int64(i.BkDisk)),
		BkOsName:        types.StringValue(i.BkOsName),
		BkIdcName:       types.StringValue(i.BkIdcName),
		CreateAt:        types.StringValue(i.CreateAtDisplay(loc)),
	}
}
