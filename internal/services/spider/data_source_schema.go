package spider

import (
	"github.com/hashicorp/terraform-plugin-framework-validators/int64validator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"

	"terraform-provider-dbm/internal/common"
	"terraform-provider-dbm/internal/consts"
	"terraform-provider-dbm/internal/customvalidators"
)

// spiderClusterAttributes describes a cluster. With lookup set, id is the
// required input of a single cluster read instead of a computed field.
func spiderClusterAttributes(lookup bool) map[string]schema.Attribute {
	id := schema.Int64Attribute{
		Computed:            true,
		MarkdownDescription: "Cluster ID.",
	}
	if lookup {
		id = schema.Int64Attribute{
			Required:            true,
			MarkdownDescription: "Cluster ID to read.",
			Validators: []validator.Int64{
				int64validator.AtLeast(1),
			},
		}
	}

	attrs := map[string]schema.Attribute{
		"id": id,
		"cluster_name": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Cluster name.",
		},
		"cluster_alias": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Cluster alias.",
		},
		"master_domain": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Domain of the spider masters.",
		},
		"slave_domain": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Domain of the spider slaves.",
		},
		"access_entry": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Access entry in the form `domain:port`.",
		},
		"status": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Cluster status, `normal` or `abnormal`.",
		},
		"phase": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Cluster phase, e.g. `online` or `offline`.",
		},
		"online": schema.BoolAttribute{
			Computed:            true,
			MarkdownDescription: "True when the cluster phase is `online`.",
		},
		"major_version": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "MySQL major version.",
		},
		"db_module_id": schema.Int64Attribute{
			Computed:            true,
			MarkdownDescription: "DB module ID.",
		},
		"region": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Region of the cluster.",
		},
		"time_zone": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Time zone the cluster runs in.",
		},
		"cluster_shard_num": schema.Int64Attribute{
			Computed:            true,
			MarkdownDescription: "Number of shards.",
		},
		"spec_name": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Name of the resource spec of the cluster.",
		},
		"spider_master": schema.ListAttribute{
			Computed:            true,
			ElementType:         types.StringType,
			MarkdownDescription: "Spider master instance addresses.",
		},
		"spider_slave": schema.ListAttribute{
			Computed:            true,
			ElementType:         types.StringType,
			MarkdownDescription: "Spider slave instance addresses.",
		},
		"remote_db": schema.ListAttribute{
			Computed:            true,
			ElementType:         types.StringType,
			MarkdownDescription: "Remote master instance addresses.",
		},
		"remote_dr": schema.ListAttribute{
			Computed:            true,
			ElementType:         types.StringType,
			MarkdownDescription: "Remote slave instance addresses.",
		},
		"permissions": schema.ListAttribute{
			Computed:            true,
			ElementType:         types.StringType,
			MarkdownDescription: "Actions the current user is allowed to run on the cluster.",
		},
		"creator": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "User who created the cluster.",
		},
	}
	return common.MergeAttributes(attrs, common.DataCreateAtSchema)
}

// spiderInstanceAttributes describes an instance. With lookup set,
// instance_address and cluster_id are required inputs.
func spiderInstanceAttributes(lookup bool) map[string]schema.Attribute {
	attrs := map[string]schema.Attribute{
		"instance_address": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Instance address `ip:port`.",
		},
		"cluster_id": schema.Int64Attribute{
			Computed:            true,
			MarkdownDescription: "ID of the cluster the instance belongs to.",
		},
		"id": schema.Int64Attribute{
			Computed:            true,
			MarkdownDescription: "Instance ID.",
		},
		"ip": schema.StringAttribute{
			Computed: true,
		},
		"port": schema.Int64Attribute{
			Computed: true,
		},
		"role": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Instance role, e.g. `spider_master` or `remote_master`.",
		},
		"status": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Instance status.",
		},
		"cluster_name": schema.StringAttribute{
			Computed: true,
		},
		"master_domain": schema.StringAttribute{
			Computed: true,
		},
		"db_version": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "MySQL version of the instance, empty when unknown.",
		},
		"version": schema.StringAttribute{
			Computed:            true,
			MarkdownDescription: "Spider version.",
		},
		"spec_name": schema.StringAttribute{
			Computed: true,
		},
	}
	if lookup {
		return common.MergeAttributes(attrs, common.DataHostSchema, common.DataCreateAtSchema, common.DataInstanceLookupSchema)
	}
	return common.MergeAttributes(attrs, common.DataHostSchema, common.DataCreateAtSchema)
}

func spiderClustersFilterAttributes() map[string]schema.Attribute {
	return map[string]schema.Attribute{
		"name": schema.StringAttribute{
			Optional:            true,
			MarkdownDescription: "Filter by cluster name.",
		},
		"domain": schema.StringAttribute{
			Optional:            true,
			MarkdownDescription: "Filter by master or slave domain.",
		},
		"status": schema.StringAttribute{
			Optional:            true,
			MarkdownDescription: "Filter by cluster status.",
			Validators: []validator.String{
				stringvalidator.OneOf(consts.CLUSTER_STATUSES...),
			},
		},
		"db_module_id": schema.Int64Attribute{
			Optional:            true,
			MarkdownDescription: "Filter by DB module ID.",
		},
		"count": schema.Int64Attribute{
			Computed:            true,
			MarkdownDescription: "Number of matching clusters reported by DBM.",
		},
		"clusters": schema.ListNestedAttribute{
			Computed:            true,
			MarkdownDescription: "Matching clusters in the order DBM returns them.",
			NestedObject: schema.NestedAttributeObject{
				Attributes: spiderClusterAttributes(false),
			},
		},
	}
}

func spiderInstancesFilterAttributes() map[string]schema.Attribute {
	return map[string]schema.Attribute{
		"cluster_id": schema.Int64Attribute{
			Optional:            true,
			MarkdownDescription: "Filter by cluster ID.",
		},
		"role": schema.StringAttribute{
			Optional:            true,
			MarkdownDescription: "Filter by instance role.",
			Validators: []validator.String{
				stringvalidator.OneOf(consts.SPIDER_ROLES...),
			},
		},
		"ip": schema.StringAttribute{
			Optional:            true,
			MarkdownDescription: "Filter by host IP.",
		},
		"status": schema.StringAttribute{
			Optional:            true,
			MarkdownDescription: "Filter by instance status.",
			Validators: []validator.String{
				stringvalidator.OneOf(consts.INSTANCE_STATUSES...),
			},
		},
		"min_version": schema.StringAttribute{
			Optional:            true,
			MarkdownDescription: "Keep only instances whose `db_version` is at least this version.",
			Validators: []validator.String{
				customvalidators.Semver(),
			},
		},
		"count": schema.Int64Attribute{
			Computed:            true,
			MarkdownDescription: "Number of instances in `instances`.",
		},
		"instances": schema.ListNestedAttribute{
			Computed:            true,
			MarkdownDescription: "Matching instances in the order DBM returns them.",
			NestedObject: schema.NestedAttributeObject{
				Attributes: spiderInstanceAttributes(false),
			},
		},
	}
}
