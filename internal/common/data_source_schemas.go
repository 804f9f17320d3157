package common

import (
	"maps"

	"github.com/hashicorp/terraform-plugin-framework-validators/int64validator"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"

	"terraform-provider-dbm/internal/customvalidators"
)

// DataHostSchema holds the CMDB host fields DBM attaches to instances.
var DataHostSchema = map[string]schema.Attribute{
	"bk_host_id": schema.Int64Attribute{
		Computed:            true,
		MarkdownDescription: "CMDB host ID.",
	},
	"bk_host_innerip": schema.StringAttribute{
		Computed:            true,
		MarkdownDescription: "Inner IP of the host.",
	},
	"bk_cpu": schema.Int64Attribute{
		Computed:            true,
		MarkdownDescription: "CPU cores of the host, 0 when unknown.",
	},
	"bk_mem": schema.Int64Attribute{
		Computed:            true,
		MarkdownDescription: "Memory of the host in MB, 0 when unknown.",
	},
	"bk_disk": schema.Int64Attribute{
		Computed:            true,
		MarkdownDescription: "Disk of the host in GB, 0 when unknown.",
	},
	"bk_os_name": schema.StringAttribute{
		Computed: true,
	},
	"bk_idc_name": schema.StringAttribute{
		Computed: true,
	},
}

// DataInstanceLookupSchema is the input of single instance reads.
var DataInstanceLookupSchema = map[string]schema.Attribute{
	"instance_address": schema.StringAttribute{
		Required:            true,
		MarkdownDescription: "Instance address `ip:port` to read.",
		Validators: []validator.String{
			customvalidators.InstanceAddress(),
		},
	},
	"cluster_id": schema.Int64Attribute{
		Required:            true,
		MarkdownDescription: "ID of the cluster the instance belongs to.",
		Validators: []validator.Int64{
			int64validator.AtLeast(1),
		},
	},
}

var DataCreateAtSchema = map[string]schema.Attribute{
	"create_at": schema.StringAttribute{
		Computed:            true,
		MarkdownDescription: "Creation time in the provider time zone, `--` when unknown.",
	},
}

// MergeAttributes returns a new map holding every attribute of schemas.
// Later maps win on duplicate names.
func MergeAttributes(schemas ...map[string]schema.Attribute) map[string]schema.Attribute {
	out := map[string]schema.Attribute{}
	for _, s := range schemas {
		maps.Copy(out, s)
	}
	return out
}
