package sources

import (
	"context"
	"slices"

	"terraform-provider-dbm/pkg/client/entities"
	"terraform-provider-dbm/pkg/client/requests"
	"terraform-provider-dbm/pkg/client/session"
)

const sqlserverModule = "sqlserver"

// GetSqlserverResourceTree returns the biz > module > cluster tree for the
// given sqlserver cluster type.
func GetSqlserverResourceTree(ctx context.Context, s *session.Session, clusterType string) ([]entities.BizConfTopoTree, error) {

	params := requests.Params{"cluster_type": clusterType}
	uri := s.BizURI(sqlserverModule, "resource_tree")
	var tree []entities.BizConfTopoTree
	err := s.Requester.Get(ctx, uri, params, &tree)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

func GetSqlserverPermissionRules(ctx context.Context, s *session.Session, params requests.Params) (*entities.ListBase[entities.SqlserverPermission], error) {

	uri := s.BizURI(sqlserverModule, "permission/account", "list_account_rules")
	var list entities.ListBase[entities.SqlserverPermission]
	err := s.Requester.Get(ctx, uri, params, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// FilterPermissionRules keeps accounts named user (any account when user is
// empty) and, when accessDBs is not empty, only their rules on those
// databases. Accounts left without rules are dropped in that case.
func FilterPermissionRules(list []entities.SqlserverPermission, user string, accessDBs []string) []entities.SqlserverPermission {
	filtered := make([]entities.SqlserverPermission, 0, len(list))
	for _, item := range list {
		if user != "" && item.Account.User != user {
			continue
		}
		if len(accessDBs) == 0 {
			filtered = append(filtered, item)
			continue
		}

		var rules []entities.SqlserverRule
		for _, rule := range item.Rules {
			if slices.Contains(accessDBs, rule.AccessDB) {
				rules = append(rules, rule)
			}
		}
		if len(rules) == 0 {
			continue
		}
		item.Rules = rules
		filtered = append(filtered, item)
	}
	return filtered
}
