package entities

import "slices"

type SqlserverAccount struct {
	AccountID  int    `json:"account_id"`
	BkBizID    int    `json:"bk_biz_id"`
	Creator    string `json:"creator"`
	CreateTime string `json:"create_time"`
	User       string `json:"user"`
}

type SqlserverRule struct {
	AccountID  int    `json:"account_id"`
	AccessDB   string `json:"access_db"`
	BkBizID    int    `json:"bk_biz_id"`
	Creator    string `json:"creator"`
	CreateTime string `json:"create_time"`
	RuleID     int    `json:"rule_id"`
	Privilege  string `json:"privilege"`
}

// SqlserverPermission is an account together with its authorization rules.
type SqlserverPermission struct {
	TimeBase
	Account SqlserverAccount `json:"account"`
	Rules   []SqlserverRule  `json:"rules"`
}

// AccessDBs lists the distinct databases the account has rules for, in
// rule order.
func (p SqlserverPermission) AccessDBs() []string {
	var dbs []string
	for _, rule := range p.Rules {
		if !slices.Contains(dbs, rule.AccessDB) {
			dbs = append(dbs, rule.AccessDB)
		}
	}
	return dbs
}

func (p SqlserverPermission) Validate() error {
	r := requiredFields{model: "sqlserver permission"}
	r.int("account.account_id", p.Account.AccountID)
	r.str("account.user", p.Account.User)
	return r.err()
}
