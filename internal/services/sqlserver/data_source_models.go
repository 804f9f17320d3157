package sqlserver

import (
	"time"

	"github.com/hashicorp/terraform-plugin-framework/types"

	"terraform-provider-dbm/internal/utils"
	"terraform-provider-dbm/pkg/client/entities"
)

type TreeNodeModel struct {
	Key           types.String `tfsdk:"key"`
	ID            types.Int64  `tfsdk:"id"`
	Name          types.String `tfsdk:"name"`
	ObjID         types.String `tfsdk:"obj_id"`
	ObjName       types.String `tfsdk:"obj_name"`
	InstanceCount types.Int64  `tfsdk:"instance_count"`
	Domain        types.String `tfsdk:"domain"`
	Parent        types.String `tfsdk:"parent"`
	Depth         types.Int64  `tfsdk:"depth"`
}

type ResourceTreeModel struct {
	ClusterType types.String    `tfsdk:"cluster_type"`
	Nodes       []TreeNodeModel `tfsdk:"nodes"`
}

type RuleModel struct {
	RuleID    types.Int64  `tfsdk:"rule_id"`
	AccessDB  types.String `tfsdk:"access_db"`
	Privilege types.String `tfsdk:"privilege"`
}

type PermissionModel struct {
	AccountID types.Int64  `tfsdk:"account_id"`
	User      types.String `tfsdk:"user"`
	Creator   types.String `tfsdk:"creator"`
	CreateAt  types.String `tfsdk:"create_at"`
	AccessDBs []string     `tfsdk:"access_dbs"`
	Rules     []RuleModel  `tfsdk:"rules"`
}

type PermissionsModel struct {
	User        types.String      `tfsdk:"user"`
	AccessDBs   types.List        `tfsdk:"access_dbs"`
	Count       types.Int64       `tfsdk:"count"`
	Permissions []PermissionModel `tfsdk:"permissions"`
}

// flattenTree lists every node depth first with the key of its parent.
func flattenTree(tree []entities.BizConfTopoTree) []TreeNodeModel {
	nodes := []TreeNodeModel{}
	for _, root := range tree {
		root.Walk(func(node entities.BizConfTopoTree, parent string, depth int) bool {
			nodes = append(nodes, TreeNodeModel{
				Key:           types.StringValue(node.Key()),
				ID:            types.Int64Value(int64(node.ID)),
				Name:          types.StringValue(node.Name),
				ObjID:         types.StringValue(node.ObjID),
				ObjName:       types.StringValue(node.ObjName),
				InstanceCount: types.Int64Value(int64(node.InstanceCount)),
				Domain:        types.StringValue(node.Extra.Domain),
				Parent:        types.StringValue(parent),
				Depth:         types.Int64Value(int64(depth)),
			})
			return true
		})
	}
	return nodes
}

func newPermissionModel(p entities.SqlserverPermission, loc *time.Location) PermissionModel {
	rules := make([]RuleModel, 0, len(p.Rules))
	for _, rule := range p.Rules {
		rules = append(rules, RuleModel{
			RuleID:    types.Int64Value(int64(rule.RuleID)),
			AccessDB:  types.StringValue(rule.AccessDB),
			Privilege: types.StringValue(rule.Privilege),
		})
	}

	return PermissionModel{
		AccountID: types.Int64Value(int64(p.Account.AccountID)),
		User:      types.StringValue(p.Account.User),
		Creator:   types.StringValue(p.Creator),
		CreateAt:  types.StringValue(p.CreateAtDisplay(loc)),
		AccessDBs: utils.StringsOrEmpty(p.AccessDBs()),
		Rules:     rules,
	}
}
