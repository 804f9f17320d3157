package entities

import (
	"encoding/json"
	"fmt"
)

type TicketType string

const (
	TicketTypeMongoDBReplicaSetApply   TicketType = "MONGODB_REPLICASET_APPLY"
	TicketTypeMongoDBShardApply        TicketType = "MONGODB_SHARD_APPLY"
	TicketTypeMongoDBAuthorizeRules    TicketType = "MONGODB_AUTHORIZE_RULES"
	TicketTypeSqlserverSingleApply     TicketType = "SQLSERVER_SINGLE_APPLY"
	TicketTypeSqlserverHAApply         TicketType = "SQLSERVER_HA_APPLY"
	TicketTypeSqlserverBackupDBs       TicketType = "SQLSERVER_BACKUP_DBS"
	TicketTypeSqlserverAuthorizeRules  TicketType = "SQLSERVER_AUTHORIZE_RULES"
	TicketTypeTendbClusterMigrate      TicketType = "TENDBCLUSTER_MIGRATE_CLUSTER"
	TicketTypeTendbClusterRestoreSlave TicketType = "TENDBCLUSTER_RESTORE_SLAVE"
)

var KnownTicketTypes = []TicketType{
	TicketTypeMongoDBReplicaSetApply,
	TicketTypeMongoDBShardApply,
	TicketTypeMongoDBAuthorizeRules,
	TicketTypeSqlserverSingleApply,
	TicketTypeSqlserverHAApply,
	TicketTypeSqlserverBackupDBs,
	TicketTypeSqlserverAuthorizeRules,
	TicketTypeTendbClusterMigrate,
	TicketTypeTendbClusterRestoreSlave,
}

// TicketDetails is implemented by every ticket detail payload.
type TicketDetails interface {
	TicketType() TicketType
}

// UnknownDetails keeps the raw details of ticket types this client does not model.
type UnknownDetails struct {
	Type TicketType
	Raw  json.RawMessage
}

func (d UnknownDetails) TicketType() TicketType { return d.Type }

type Ticket struct {
	TimeBase
	ID                int             `json:"id"`
	BkBizID           int             `json:"bk_biz_id"`
	TicketType        TicketType      `json:"ticket_type"`
	TicketTypeDisplay string          `json:"ticket_type_display"`
	Status            string          `json:"status"`
	StatusDisplay     string          `json:"status_display"`
	Remark            string          `json:"remark"`
	Details           TicketDetails   `json:"-"`
	RawDetails        json.RawMessage `json:"-"`
}

func (t *Ticket) UnmarshalJSON(data []byte) (err error) {
	type plain Ticket
	var rawData struct {
		plain
		Details json.RawMessage `json:"details"`
	}
	err = json.Unmarshal(data, &rawData)
	if err != nil {
		return
	}

	*t = Ticket(rawData.plain)
	t.RawDetails = rawData.Details
	t.Details, err = DecodeTicketDetails(t.TicketType, rawData.Details)
	if err != nil {
		return fmt.Errorf("ticket %d: %w", t.ID, err)
	}
	return nil
}

func (t Ticket) Validate() error {
	r := requiredFields{model: "ticket"}
	r.int("id", t.ID)
	r.str("ticket_type", string(t.TicketType))
	return r.err()
}

// DecodeTicketDetails picks the detail shape by ticket type.
func DecodeTicketDetails(ticketType TicketType, raw json.RawMessage) (TicketDetails, error) {
	var details TicketDetails
	switch ticketType {
	case TicketTypeMongoDBReplicaSetApply:
		details = &DetailsMongoDBReplicaSet{}
	case TicketTypeMongoDBShardApply:
		details = &DetailsMongoDBSharedCluster{}
	case TicketTypeMongoDBAuthorizeRules:
		details = &MongoDBAuthorizeRules{}
	case TicketTypeSqlserverSingleApply, TicketTypeSqlserverHAApply:
		details = &DetailsSqlserver{Type: ticketType}
	case TicketTypeSqlserverBackupDBs:
		details = &SqlserverDbBackup{}
	case TicketTypeSqlserverAuthorizeRules:
		details = &SqlserverAuthorizeRules{}
	case TicketTypeTendbClusterMigrate:
		details = &SpiderMigrateCluster{}
	case TicketTypeTendbClusterRestoreSlave:
		details = &SpiderSlaveRebuild{}
	default:
		return UnknownDetails{Type: ticketType, Raw: raw}, nil
	}

	if len(raw) == 0 || string(raw) == "null" {
		return details, nil
	}
	if err := json.Unmarshal(raw, details); err != nil {
		return nil, fmt.Errorf("decode %s details: %w", ticketType, err)
	}
	return details, nil
}
