package sqlserver

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"terraform-provider-dbm/pkg/client/entities"
)

func TestFlattenTree(t *testing.T) {
	tree := []entities.BizConfTopoTree{
		{
			ID: 3, Name: "biz", ObjID: "biz",
			Children: []entities.BizConfTopoTree{
				{
					ID: 21, Name: "default", ObjID: "module", InstanceCount: 3,
					Children: []entities.BizConfTopoTree{
						{ID: 301, Name: "ss-a", ObjID: "cluster", Extra: entities.BizConfTopoTreeExtra{Domain: "a.db"}},
						{ID: 302, Name: "ss-b", ObjID: "cluster"},
					},
				},
			},
		},
	}

	nodes := flattenTree(tree)

	type row struct {
		Key, Parent, Domain string
		Depth               int64
	}
	got := []row{}
	for _, n := range nodes {
		got = append(got, row{n.Key.ValueString(), n.Parent.ValueString(), n.Domain.ValueString(), n.Depth.ValueInt64()})
	}
	want := []row{
		{"biz-3", "", "", 0},
		{"module-21", "biz-3", "", 1},
		{"cluster-301", "module-21", "a.db", 2},
		{"cluster-302", "module-21", "", 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("flattenTree (-want +got):\n%s", diff)
	}
	if nodes[1].InstanceCount.ValueInt64() != 3 {
		t.Errorf("instance_count = %d", nodes[1].InstanceCount.ValueInt64())
	}
}

func TestFlattenTreeEmpty(t *testing.T) {
	nodes := flattenTree(nil)
	if nodes == nil || len(nodes) != 0 {
		t.Errorf("empty tree must flatten to an empty list, got %#v", nodes)
	}
}

func TestNewPermissionModel(t *testing.T) {
	p := entities.SqlserverPermission{
		TimeBase: entities.TimeBase{Creator: "admin", CreateAt: "2023-05-06 07:08:09"},
		Account:  entities.SqlserverAccount{AccountID: 4, User: "app_rw"},
		Rules: []entities.SqlserverRule{
			{RuleID: 1, AccessDB: "orders", Privilege: "db_datareader"},
			{RuleID: 2, AccessDB: "users", Privilege: "db_datawriter"},
			{RuleID: 3, AccessDB: "orders", Privilege: "db_owner"},
		},
	}

	got := newPermissionModel(p, time.FixedZone("CST", 8*3600))

	if got.User.ValueString() != "app_rw" || got.AccountID.ValueInt64() != 4 {
		t.Errorf("account = %s/%d", got.User, got.AccountID.ValueInt64())
	}
	if got.CreateAt.ValueString() != "2023-05-06 15:08:09 +0800" {
		t.Errorf("create_at = %s", got.CreateAt)
	}
	if diff := cmp.Diff([]string{"orders", "users"}, got.AccessDBs); diff != "" {
		t.Errorf("access_dbs (-want +got):\n%s", diff)
	}
	if len(got.Rules) != 3 || got.Rules[2].Privilege.ValueString() != "db_owner" {
		t.Errorf("rules = %+v", got.Rules)
	}

	empty := newPermissionModel(entities.SqlserverPermission{}, time.UTC)
	if empty.AccessDBs == nil || len(empty.Rules) != 0 || empty.CreateAt.ValueString() != "--" {
		t.Errorf("empty permission = %+v", empty)
	}
}
