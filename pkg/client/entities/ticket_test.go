package entities

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func decodeTicket(t *testing.T, ticketType TicketType, details string) Ticket {
	t.Helper()
	payload := `{
		"id": 77,
		"bk_biz_id": 3,
		"ticket_type": "` + string(ticketType) + `",
		"ticket_type_display": "display",
		"status": "RUNNING",
		"status_display": "running",
		"remark": "",
		"creator": "admin",
		"create_at": "2023-06-01T00:00:00Z",
		"details": ` + details + `
	}`
	var ticket Ticket
	if err := json.Unmarshal([]byte(payload), &ticket); err != nil {
		t.Fatalf("unmarshal %s: %v", ticketType, err)
	}
	return ticket
}

func TestTicketDispatchesDetails(t *testing.T) {
	cases := []struct {
		ticketType TicketType
		details    string
		check      func(t *testing.T, d TicketDetails)
	}{
		{
			TicketTypeMongoDBReplicaSetApply,
			`{"cluster_name": "rs", "replica_count": 2, "replica_sets": [{"domain": "a.db", "name": "rs-a", "set_id": "s1"}],
			  "resource_spec": {"mongo_machine_set": {"spec_id": 4, "spec_name": "4C8G", "count": 3}}}`,
			func(t *testing.T, d TicketDetails) {
				rs, ok := d.(*DetailsMongoDBReplicaSet)
				if !ok {
					t.Fatalf("got %T", d)
				}
				if rs.ReplicaSets[0].SetID != "s1" || rs.ResourceSpec.MongoMachineSet.SpecID != 4 {
					t.Errorf("unexpected details: %+v", rs)
				}
			},
		},
		{
			TicketTypeMongoDBShardApply,
			`{"cluster_name": "shard", "resource_spec": {"mongos": {"spec_id": 1}, "mongodb": {"spec_id": 2}, "mongo_config": {"spec_id": 3}}}`,
			func(t *testing.T, d TicketDetails) {
				sc, ok := d.(*DetailsMongoDBSharedCluster)
				if !ok {
					t.Fatalf("got %T", d)
				}
				if sc.ResourceSpec.MongoConfig.SpecID != 3 {
					t.Errorf("unexpected details: %+v", sc)
				}
			},
		},
		{
			TicketTypeMongoDBAuthorizeRules,
			`{"authorize_uid": "uid-1", "authorize_data": [{"username": "u1", "auth_db": "admin", "cluster_ids": [1, 2],
			  "rule_sets": [{"db": "app", "privileges": ["read"]}]}]}`,
			func(t *testing.T, d TicketDetails) {
				ar, ok := d.(*MongoDBAuthorizeRules)
				if !ok {
					t.Fatalf("got %T", d)
				}
				if diff := cmp.Diff([]int{1, 2}, ar.AuthorizeData[0].ClusterIDs); diff != "" {
					t.Errorf("cluster ids mismatch: %s", diff)
				}
			},
		},
		{
			TicketTypeSqlserverHAApply,
			`{"db_version": "2017", "domains": [{"key": "k", "master": "m.db", "slave": "s.db"}],
			  "nodes": {"backend": [{"ip": "127.0.0.1", "bk_host_id": 1}]}}`,
			func(t *testing.T, d TicketDetails) {
				sq, ok := d.(*DetailsSqlserver)
				if !ok {
					t.Fatalf("got %T", d)
				}
				if sq.TicketType() != TicketTypeSqlserverHAApply || sq.Nodes.Backend[0].BkHostID != 1 {
					t.Errorf("unexpected details: %+v", sq)
				}
			},
		},
		{
			TicketTypeSqlserverBackupDBs,
			`{"backup_type": "full_backup", "clusters": {"5": {"id": 5, "immute_domain": "sql.db"}},
			  "infos": [{"cluster_id": 5, "backup_dbs": ["orders"]}]}`,
			func(t *testing.T, d TicketDetails) {
				bk, ok := d.(*SqlserverDbBackup)
				if !ok {
					t.Fatalf("got %T", d)
				}
				if bk.Clusters[5].ImmuteDomain != "sql.db" || bk.Infos[0].BackupDBs[0] != "orders" {
					t.Errorf("unexpected details: %+v", bk)
				}
			},
		},
		{
			TicketTypeSqlserverAuthorizeRules,
			`{"authorize_uid": "uid-2", "authorize_data": [{"user": "app_rw", "access_dbs": ["orders"], "target_instances": ["sql.db"]}]}`,
			func(t *testing.T, d TicketDetails) {
				ar, ok := d.(*SqlserverAuthorizeRules)
				if !ok {
					t.Fatalf("got %T", d)
				}
				if ar.AuthorizeData[0].User != "app_rw" {
					t.Errorf("unexpected details: %+v", ar)
				}
			},
		},
		{
			TicketTypeTendbClusterMigrate,
			`{"ip_source": "resource_pool", "infos": [{"cluster_id": 12, "new_master": {"ip": "127.0.0.4"}, "new_slave": {"ip": "127.0.0.5"}}],
			  "clusters": {"12": {"id": 12, "name": "spider-test"}}}`,
			func(t *testing.T, d TicketDetails) {
				mg, ok := d.(*SpiderMigrateCluster)
				if !ok {
					t.Fatalf("got %T", d)
				}
				if mg.Infos[0].NewSlave.IP != "127.0.0.5" || mg.Clusters[12].Name != "spider-test" {
					t.Errorf("unexpected details: %+v", mg)
				}
			},
		},
		{
			TicketTypeTendbClusterRestoreSlave,
			`{"infos": [{"cluster_id": 12, "old_slave": {"ip": "127.0.0.6"},
			  "resource_spec": {"new_slave": {"id": 3, "name": "4C8G", "storage_spec": [{"mount_point": "/data", "size": 50, "type": "SSD"}]}}}]}`,
			func(t *testing.T, d TicketDetails) {
				rb, ok := d.(*SpiderSlaveRebuild)
				if !ok {
					t.Fatalf("got %T", d)
				}
				if rb.Infos[0].OldSlave.IP != "127.0.0.6" || rb.Infos[0].ResourceSpec.NewSlave.StorageSpec[0].Size != 50 {
					t.Errorf("unexpected details: %+v", rb)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(string(c.ticketType), func(t *testing.T) {
			ticket := decodeTicket(t, c.ticketType, c.details)
			if ticket.ID != 77 || ticket.Creator != "admin" {
				t.Errorf("ticket header not decoded: %+v", ticket)
			}
			if ticket.Details.TicketType() != c.ticketType {
				t.Errorf("TicketType() = %s, want %s", ticket.Details.TicketType(), c.ticketType)
			}
			c.check(t, ticket.Details)
		})
	}
}

func TestTicketUnknownType(t *testing.T) {
	ticket := decodeTicket(t, "REDIS_CLUSTER_APPLY", `{"cluster_name": "cache"}`)

	unknown, ok := ticket.Details.(UnknownDetails)
	if !ok {
		t.Fatalf("got %T, want UnknownDetails", ticket.Details)
	}
	if unknown.TicketType() != "REDIS_CLUSTER_APPLY" {
		t.Errorf("TicketType() = %s", unknown.TicketType())
	}
	if string(unknown.Raw) != `{"cluster_name": "cache"}` {
		t.Errorf("raw details not kept: %s", unknown.Raw)
	}
}

func TestTicketMalformedDetails(t *testing.T) {
	payload := `{"id": 1, "ticket_type": "SQLSERVER_BACKUP_DBS", "details": {"infos": "oops"}}`
	var ticket Ticket
	if err := json.Unmarshal([]byte(payload), &ticket); err == nil {
		t.Fatal("expected error for malformed details")
	}
}

func TestTicketNullDetails(t *testing.T) {
	ticket := decodeTicket(t, TicketTypeSqlserverBackupDBs, `null`)
	if _, ok := ticket.Details.(*SqlserverDbBackup); !ok {
		t.Fatalf("got %T", ticket.Details)
	}
}

func TestSummarizeTicketDetails(t *testing.T) {
	details := &SqlserverDbBackup{
		BackupType:  "full_backup",
		BackupPlace: "master",
		FileTag:     "DBFILE1M",
		Infos:       []SqlserverBackupInfo{{ClusterID: 9}, {ClusterID: 5}},
	}
	want := map[string]string{
		"ticket_type":  "SQLSERVER_BACKUP_DBS",
		"backup_type":  "full_backup",
		"backup_place": "master",
		"file_tag":     "DBFILE1M",
		"cluster_ids":  "5,9",
	}
	if diff := cmp.Diff(want, SummarizeTicketDetails(details)); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	unknown := SummarizeTicketDetails(UnknownDetails{Type: "X"})
	if diff := cmp.Diff(map[string]string{"ticket_type": "X"}, unknown); diff != "" {
		t.Errorf("unknown summary mismatch (-want +got):\n%s", diff)
	}

	if len(SummarizeTicketDetails(nil)) != 0 {
		t.Error("nil details must summarize to an empty map")
	}
}

func TestSummarizeEveryKnownType(t *testing.T) {
	for _, ticketType := range KnownTicketTypes {
		details, err := DecodeTicketDetails(ticketType, json.RawMessage(`{}`))
		if err != nil {
			t.Fatalf("%s: %v", ticketType, err)
		}
		summary := SummarizeTicketDetails(details)
		if summary["ticket_type"] != string(ticketType) {
			t.Errorf("%s: summary ticket_type = %q", ticketType, summary["ticket_type"])
		}
		if len(summary) < 2 {
			t.Errorf("%s: summary has no detail fields: %v", ticketType, summary)
		}
	}
}
