package mongodb

import (
	"time"

	"github.com/hashicorp/terraform-plugin-framework/types"

	"terraform-provider-dbm/pkg/client/entities"
)

type MongodbInstanceModel struct {
	InstanceAddress types.String `tfsdk:"instance_address"`
	ClusterID       types.Int64  `tfsdk:"cluster_id"`
	ID              types.Int64  `tfsdk:"id"`
	IP              types.String `tfsdk:"ip"`
	Port            types.Int64  `tfsdk:"port"`
	Role            types.String `tfsdk:"role"`
	Shard           types.String `tfsdk:"shard"`
	Status          types.String `tfsdk:"status"`
	MachineType     types.String `tfsdk:"machine_type"`
	ClusterName     types.String `tfsdk:"cluster_name"`
	ClusterType     types.String `tfsdk:"cluster_type"`
	MasterDomain    types.String `tfsdk:"master_domain"`
	SlaveDomain     types.String `tfsdk:"slave_domain"`
	DBModuleID      types.Int64  `tfsdk:"db_module_id"`
	DBVersion       types.String `tfsdk:"db_version"`
	Version         types.String `tfsdk:"version"`
	SpecConfig      types.String `tfsdk:"spec_config"`
	BkHostID        types.Int64  `tfsdk:"bk_host_id"`
	BkHostInnerIP   types.String `tfsdk:"bk_host_innerip"`
	BkCloudID       types.Int64  `tfsdk:"bk_cloud_id"`
	BkCloudName     types.String `tfsdk:"bk_cloud_name"`
	BkAgentID       types.String `tfsdk:"bk_agent_id"`
	BkCPU           types.Int64  `tfsdk:"bk_cpu"`
	BkMem           types.Int64  `tfsdk:"bk_mem"`
	BkDisk          types.Int64  `tfsdk:"bk_disk"`
	BkOsName        types.String `tfsdk:"bk_os_name"`
	BkIdcID         types.String `tfsdk:"bk_idc_id"`
	BkIdcName       types.String `tfsdk:"bk_idc_name"`
	CreateAt        types.String `tfsdk:"create_at"`
}

func newMongodbInstanceModel(i entities.MongodbInstanceDetail, loc *time.Location) MongodbInstanceModel {
	return MongodbInstanceModel{
		InstanceAddress: types.StringValue(i.InstanceAddress),
		ClusterID:       types.Int64Value(int64(i.ClusterID)),
		ID:              types.Int64Value(int64(i.ID)),
		IP:              types.StringValue(i.IP),
		Port:            types.Int64Value(int64(i.Port)),
		Role:            types.StringValue(i.Role),
		Shard:           types.StringValue(i.Shard),
		Status:          types.StringValue(i.Status),
		MachineType:     types.StringValue(i.MachineType),
		ClusterName:     types.StringValue(i.ClusterName),
		ClusterType:     types.StringValue(i.ClusterType),
		MasterDomain:    types.StringValue(i.MasterDomain),
		SlaveDomain:     types.StringValue(i.SlaveDomain),
		DBModuleID:      types.Int64Value(int64(i.DBModuleID)),
		DBVersion:       types.StringPointerValue(i.DBVersion.Ptr()),
		Version:         types.StringValue(i.Version),
		SpecConfig:      types.StringValue(i.SpecConfig.String()),
		BkHostID:        types.Int64Value(int64(i.BkHostID)),
		BkHostInnerIP:   types.StringValue(i.BkHostInnerIP),
		BkCloudID:       types.Int64Value(int64(i.BkCloudID)),
		BkCloudName:     types.StringValue(i.BkCloudName),
		BkAgentID:       types.StringValue(i.BkAgentID),
		BkCPU:           types.Int64Value(int64(i.BkCPU)),
		BkMem:           types.Int64Value(int64(i.BkMem)),
		BkDisk:          types.Int64Value(int64(i.BkDisk)),
		BkOsName:        types.StringValue(i.BkOsName),
		BkIdcID:         types.StringValue(i.BkIdcID.String()),
		BkIdcName:       types.StringValue(i.BkIdcName),
		CreateAt:        types.StringValue(i.CreateAtDisplay(loc)),
	}
}
