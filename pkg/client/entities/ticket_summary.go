package entities

import (
	"sort"
	"strconv"
	"strings"
)

// SummarizeTicketDetails flattens the fields a reviewer looks at first into
// string pairs. Every known detail type is handled; anything else only
// reports its type.
func SummarizeTicketDetails(details TicketDetails) map[string]string {
	summary := map[string]string{}
	if details == nil {
		return summary
	}
	summary["ticket_type"] = string(details.TicketType())

	switch d := details.(type) {
	case *DetailsMongoDBReplicaSet:
		summary["cluster_name"] = d.ClusterName
		summary["db_version"] = d.DBVersion
		summary["ip_source"] = d.IPSource
		summary["replica_count"] = strconv.Itoa(d.ReplicaCount)
		summary["node_count"] = strconv.Itoa(d.NodeCount)
		names := make([]string, 0, len(d.ReplicaSets))
		for _, rs := range d.ReplicaSets {
			names = append(names, rs.Name)
		}
		summary["replica_sets"] = strings.Join(names, ",")
	case *DetailsMongoDBSharedCluster:
		summary["cluster_name"] = d.ClusterName
		summary["db_version"] = d.DBVersion
		summary["ip_source"] = d.IPSource
		summary["proxy_port"] = strconv.Itoa(d.ProxyPort)
	case *MongoDBAuthorizeRules:
		summary["authorize_uid"] = d.AuthorizeUID
		users := make([]string, 0, len(d.AuthorizeData))
		for _, item := range d.AuthorizeData {
			users = append(users, item.Username)
		}
		summary["users"] = strings.Join(users, ",")
		summary["from_excel"] = strconv.FormatBool(d.ExcelURL != "")
	case *DetailsSqlserver:
		summary["db_version"] = d.DBVersion
		summary["db_module_name"] = d.DBModuleName
		summary["ip_source"] = d.IPSource
		summary["cluster_count"] = strconv.Itoa(d.ClusterCount)
		domains := make([]string, 0, len(d.Domains))
		for _, domain := range d.Domains {
			domains = append(domains, domain.Master)
		}
		summary["domains"] = strings.Join(domains, ",")
	case *SqlserverDbBackup:
		summary["backup_type"] = d.BackupType
		summary["backup_place"] = d.BackupPlace
		summary["file_tag"] = d.FileTag
		ids := make([]int, 0, len(d.Infos))
		for _, info := range d.Infos {
			ids = append(ids, info.ClusterID)
		}
		summary["cluster_ids"] = joinInts(ids)
	case *SqlserverAuthorizeRules:
		summary["authorize_uid"] = d.AuthorizeUID
		users := make([]string, 0, len(d.AuthorizeData))
		for _, item := range d.AuthorizeData {
			users = append(users, item.User)
		}
		summary["users"] = strings.Join(users, ",")
		summary["from_excel"] = strconv.FormatBool(d.ExcelURL != "")
	case *SpiderMigrateCluster:
		summary["ip_source"] = d.IPSource
		summary["backup_source"] = d.BackupSource
		ids := make([]int, 0, len(d.Infos))
		for _, info := range d.Infos {
			ids = append(ids, info.ClusterID)
		}
		summary["cluster_ids"] = joinInts(ids)
	case *SpiderSlaveRebuild:
		summary["ip_source"] = d.IPSource
		summary["backup_source"] = d.BackupSource
		ids := make([]int, 0, len(d.Infos))
		for _, info := range d.Infos {
			ids = append(ids, info.ClusterID)
		}
		summary["cluster_ids"] = joinInts(ids)
	case UnknownDetails:
	}
	return summary
}

func joinInts(ids []int) string {
	sort.Ints(ids)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ",")
}
