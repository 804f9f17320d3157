package sources

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"terraform-provider-dbm/pkg/client/entities"
	"terraform-provider-dbm/pkg/client/requests"
	"terraform-provider-dbm/pkg/client/test"
)

func TestGetSpiderList(t *testing.T) {
	server := test.NewServer(test.BizID)
	defer server.Close()
	server.Respond(server.BizPath("mysql", "spider_resources"), `{
		"count": 2,
		"results": [{"id": 1, "cluster_name": "a"}, {"id": 2, "cluster_name": "b"}]
	}`)

	list, err := GetSpiderList(context.Background(), server.Session(), requests.Params{"limit": 10, "offset": 0})
	if err != nil {
		t.Fatalf("GetSpiderList: %v", err)
	}
	if list.Count != 2 {
		t.Errorf("Count = %d, want 2", list.Count)
	}
	names := []string{list.Results[0].ClusterName, list.Results[1].ClusterName}
	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" {
		t.Errorf("results order mismatch (-want +got):\n%s", diff)
	}

	reqs := server.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected one request, got %d", len(reqs))
	}
	if reqs[0].Path != "/apis/mysql/bizs/3/spider_resources/" {
		t.Errorf("path = %s", reqs[0].Path)
	}
	if reqs[0].Method != http.MethodGet || reqs[0].Query.Get("limit") != "10" {
		t.Errorf("unexpected request: %+v", reqs[0])
	}
	if reqs[0].Auth == "" {
		t.Error("authorization header was not sent")
	}
}

func TestGetSpiderListUsesSessionBiz(t *testing.T) {
	server := test.NewServer(42)
	defer server.Close()
	server.Respond("/apis/mysql/bizs/42/spider_resources/", `{"count": 0, "results": []}`)

	list, err := GetSpiderList(context.Background(), server.Session(), nil)
	if err != nil {
		t.Fatalf("GetSpiderList: %v", err)
	}
	if list.Count != 0 || len(list.Results) != 0 {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestGetSpiderDetails(t *testing.T) {
	server := test.NewDefaultServer(test.BizID)
	defer server.Close()

	cluster, err := GetSpiderDetails(context.Background(), server.Session(), test.SpiderClusterID)
	if err != nil {
		t.Fatalf("GetSpiderDetails: %v", err)
	}
	if cluster.ClusterName != test.SpiderClusterName || cluster.MasterDomainDisplay() != "spider.test.db:25000" {
		t.Errorf("unexpected cluster: %+v", cluster)
	}
	if len(cluster.RemoteDR) != 1 || cluster.ClusterSpec.Name != "2C4G" {
		t.Errorf("nested fields not hydrated: %+v", cluster)
	}
}

func TestGetSpiderInstances(t *testing.T) {
	server := test.NewDefaultServer(test.BizID)
	defer server.Close()

	list, err := GetSpiderInstances(context.Background(), server.Session(), requests.Params{"cluster_id": test.SpiderClusterID})
	if err != nil {
		t.Fatalf("GetSpiderInstances: %v", err)
	}

	var addrs []string
	for _, inst := range list.Results {
		addrs = append(addrs, inst.InstanceAddress)
	}
	want := []string{"127.0.0.1:25000", "127.0.0.2:25000", "127.0.0.3:20000"}
	if diff := cmp.Diff(want, addrs); diff != "" {
		t.Errorf("instances mismatch (-want +got):\n%s", diff)
	}
	if list.Count != 3 {
		t.Errorf("Count = %d, want 3", list.Count)
	}
	if list.Results[1].BkCPU != 0 || list.Results[1].BkOsName != "" {
		t.Errorf("absent fields must default to zero values: %+v", list.Results[1])
	}
}

func TestGetSpiderInstancesToleratesFieldTypes(t *testing.T) {
	server := test.NewServer(test.BizID)
	defer server.Close()
	server.Respond(server.BizPath("mysql", "spider_resources", "list_instances"), `{
		"count": 2,
		"results": [
			{"id": 1, "cluster_id": 12, "instance_address": "127.0.0.1:25000", "bk_idc_id": "11", "db_version": "5.7.20"},
			{"id": 2, "cluster_id": 12, "instance_address": "127.0.0.2:25000", "bk_idc_id": 7, "db_version": 8, "spec_config": "", "port": "25000"}
		]
	}`)

	list, err := GetSpiderInstances(context.Background(), server.Session(), nil)
	if err != nil {
		t.Fatalf("GetSpiderInstances: %v", err)
	}
	if len(list.Results) != 2 {
		t.Fatalf("want 2 instances, got %d", len(list.Results))
	}
	second := list.Results[1]
	if second.InstanceAddress != "127.0.0.2:25000" || second.ID != 2 {
		t.Errorf("well typed fields must survive: %+v", second)
	}
	if second.BkIdcID != "7" || second.DBVersion != "8" {
		t.Errorf("bk_idc_id = %q, db_version = %q", second.BkIdcID, second.DBVersion)
	}
	if second.Port != 0 || second.SpecConfig.Name != "" {
		t.Errorf("mistyped fields must fall back to zero values: %+v", second)
	}
	if list.Results[0].BkIdcID != "11" {
		t.Errorf("first bk_idc_id = %q", list.Results[0].BkIdcID)
	}
}

func TestGetSpiderInstanceDetails(t *testing.T) {
	server := test.NewDefaultServer(test.BizID)
	defer server.Close()

	inst, err := GetSpiderInstanceDetails(context.Background(), server.Session(), "127.0.0.1:25000", test.SpiderClusterID)
	if err != nil {
		t.Fatalf("GetSpiderInstanceDetails: %v", err)
	}
	if inst.ID != 501 || !inst.Permission.TendbclusterView {
		t.Errorf("unexpected instance: %+v", inst)
	}

	reqs := server.Requests()
	last := reqs[len(reqs)-1]
	if last.Query.Get("instance_address") != "127.0.0.1:25000" || last.Query.Get("cluster_id") != "12" {
		t.Errorf("unexpected query: %v", last.Query)
	}
}

func TestGetSpiderListErrors(t *testing.T) {
	server := test.NewServer(test.BizID)
	defer server.Close()
	server.RespondRaw(server.BizPath("mysql", "spider_resources"), http.StatusForbidden, `{"detail": "no permission"}`)
	server.Fail(server.BizPath("mysql", "spider_resources", "list_instances"), 1902000, "cluster not found")

	_, err := GetSpiderList(context.Background(), server.Session(), nil)
	var respErr *requests.ResponseError
	if !errors.As(err, &respErr) || respErr.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 *ResponseError, got %v", err)
	}

	_, err = GetSpiderInstances(context.Background(), server.Session(), nil)
	var apiErr *requests.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != 1902000 {
		t.Errorf("expected *APIError, got %v", err)
	}
}

func TestGetSqlserverResourceTree(t *testing.T) {
	server := test.NewDefaultServer(test.BizID)
	defer server.Close()

	tree, err := GetSqlserverResourceTree(context.Background(), server.Session(), "sqlserver_ha")
	if err != nil {
		t.Fatalf("GetSqlserverResourceTree: %v", err)
	}
	if len(tree) != 1 || len(tree[0].Children[0].Children) != 2 {
		t.Fatalf("unexpected tree: %+v", tree)
	}
	if tree[0].Children[0].Children[1].Extra.Domain != "sql-b.test.db" {
		t.Errorf("unexpected leaf: %+v", tree[0].Children[0].Children[1])
	}

	reqs := server.Requests()
	if reqs[0].Path != "/apis/sqlserver/bizs/3/resource_tree/" || reqs[0].Query.Get("cluster_type") != "sqlserver_ha" {
		t.Errorf("unexpected request: %+v", reqs[0])
	}
}

func TestGetSqlserverPermissionRules(t *testing.T) {
	server := test.NewDefaultServer(test.BizID)
	defer server.Close()

	list, err := GetSqlserverPermissionRules(context.Background(), server.Session(), requests.Params{"user": "app_rw"})
	if err != nil {
		t.Fatalf("GetSqlserverPermissionRules: %v", err)
	}
	if list.Count != 2 || list.Results[0].Account.User != "app_rw" {
		t.Errorf("unexpected list: %+v", list)
	}

	reqs := server.Requests()
	if reqs[0].Path != "/apis/sqlserver/bizs/3/permission/account/list_account_rules/" {
		t.Errorf("path = %s", reqs[0].Path)
	}
}

func TestFilterPermissionRules(t *testing.T) {
	list := []entities.SqlserverPermission{
		{
			Account: entities.SqlserverAccount{AccountID: 1, User: "app_rw"},
			Rules: []entities.SqlserverRule{
				{RuleID: 1, AccessDB: "orders"},
				{RuleID: 2, AccessDB: "users"},
			},
		},
		{
			Account: entities.SqlserverAccount{AccountID: 2, User: "app_rw_2"},
			Rules:   []entities.SqlserverRule{{RuleID: 3, AccessDB: "orders"}},
		},
		{
			Account: entities.SqlserverAccount{AccountID: 3, User: "report_ro"},
			Rules:   []entities.SqlserverRule{{RuleID: 4, AccessDB: "reports"}},
		},
	}

	accountIDs := func(items []entities.SqlserverPermission) []int {
		ids := []int{}
		for _, item := range items {
			ids = append(ids, item.Account.AccountID)
		}
		return ids
	}

	if diff := cmp.Diff([]int{1, 2, 3}, accountIDs(FilterPermissionRules(list, "", nil))); diff != "" {
		t.Errorf("no filter (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, accountIDs(FilterPermissionRules(list, "app_rw", nil))); diff != "" {
		t.Errorf("user filter must match exactly (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2}, accountIDs(FilterPermissionRules(list, "", []string{"orders"}))); diff != "" {
		t.Errorf("access db filter (-want +got):\n%s", diff)
	}

	got := FilterPermissionRules(list, "app_rw", []string{"users"})
	if len(got) != 1 || len(got[0].Rules) != 1 || got[0].Rules[0].RuleID != 2 {
		t.Errorf("rules must be narrowed to the requested dbs: %+v", got)
	}
	if len(list[0].Rules) != 2 {
		t.Error("input list must not be modified")
	}
	if len(FilterPermissionRules(list, "nobody", nil)) != 0 {
		t.Error("unknown user must match nothing")
	}
}

func TestGetMongodbInstances(t *testing.T) {
	server := test.NewDefaultServer(test.BizID)
	defer server.Close()
	sess := server.Session()

	list, err := GetMongodbInstances(context.Background(), sess, requests.Params{"cluster_id": test.MongoClusterID})
	if err != nil {
		t.Fatalf("GetMongodbInstances: %v", err)
	}
	if list.Count != 1 || list.Results[0].InstanceAddress != test.MongoInstance {
		t.Errorf("unexpected list: %+v", list)
	}

	inst, err := GetMongodbInstanceDetails(context.Background(), sess, test.MongoInstance, test.MongoClusterID)
	if err != nil {
		t.Fatalf("GetMongodbInstanceDetails: %v", err)
	}
	if inst.DBVersion == nil || *inst.DBVersion != "4.2.24" {
		t.Errorf("unexpected db_version: %v", inst.DBVersion)
	}

	reqs := server.Requests()
	if reqs[1].Path != "/apis/mongodb/bizs/3/mongodb_resources/retrieve_instance/" {
		t.Errorf("path = %s", reqs[1].Path)
	}
}

func TestGetSystemEnviron(t *testing.T) {
	server := test.NewDefaultServer(test.BizID)
	defer server.Close()

	environ, err := GetSystemEnviron(context.Background(), server.Session())
	if err != nil {
		t.Fatalf("GetSystemEnviron: %v", err)
	}
	if environ.URLs["BK_CMDB_URL"] != "http://cmdb.example.com" {
		t.Errorf("unexpected urls: %v", environ.URLs)
	}
	if _, ok := environ.URLs["ENABLE_EXTERNAL_PROXY"]; ok {
		t.Error("non-string values must not be kept as urls")
	}
	if len(environ.Affinity) != 2 {
		t.Errorf("unexpected affinity: %v", environ.Affinity)
	}
}

func TestGetTicket(t *testing.T) {
	server := test.NewDefaultServer(test.BizID)
	defer server.Close()
	sess := server.Session()

	backup, err := GetTicket(context.Background(), sess, test.BackupTicketID)
	if err != nil {
		t.Fatalf("GetTicket: %v", err)
	}
	details, ok := backup.Details.(*entities.SqlserverDbBackup)
	if !ok {
		t.Fatalf("details type = %T", backup.Details)
	}
	if diff := cmp.Diff([]string{"orders", "users"}, details.Infos[0].BackupDBs); diff != "" {
		t.Errorf("backup dbs mismatch (-want +got):\n%s", diff)
	}

	migrate, err := GetTicket(context.Background(), sess, test.MigrateTicketID)
	if err != nil {
		t.Fatalf("GetTicket: %v", err)
	}
	if _, ok := migrate.Details.(*entities.SpiderMigrateCluster); !ok {
		t.Errorf("details type = %T", migrate.Details)
	}

	_, err = GetTicket(context.Background(), sess, 404)
	var respErr *requests.ResponseError
	if !errors.As(err, &respErr) || respErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 *ResponseError, got %v", err)
	}
}
