package entities

type SpiderMigrateInfo struct {
	ClusterID int        `json:"cluster_id"`
	NewMaster TicketHost `json:"new_master"`
	NewSlave  TicketHost `json:"new_slave"`
}

type SpiderMigrateCluster struct {
	Infos        []SpiderMigrateInfo   `json:"infos"`
	Clusters     map[int]TicketCluster `json:"clusters"`
	IPSource     string                `json:"ip_source"`
	BackupSource string                `json:"backup_source"`
}

func (d SpiderMigrateCluster) TicketType() TicketType { return TicketTypeTendbClusterMigrate }

type SpiderSlaveRebuildInfo struct {
	ClusterID    int        `json:"cluster_id"`
	Slave        TicketHost `json:"slave"`
	OldSlave     TicketHost `json:"old_slave"`
	NewSlave     TicketHost `json:"new_slave"`
	ResourceSpec struct {
		NewSlave InstanceSpecInfo `json:"new_slave"`
	} `json:"resource_spec"`
}

type SpiderSlaveRebuild struct {
	Infos        []SpiderSlaveRebuildInfo `json:"infos"`
	Clusters     map[int]TicketCluster    `json:"clusters"`
	IPSource     string                   `json:"ip_source"`
	BackupSource string                   `json:"backup_source"`
}

func (d SpiderSlaveRebuild) TicketType() TicketType { return TicketTypeTendbClusterRestoreSlave }
