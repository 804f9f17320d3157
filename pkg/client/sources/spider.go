package sources

import (
	"context"
	"strconv"

	"terraform-provider-dbm/pkg/client/entities"
	"terraform-provider-dbm/pkg/client/requests"
	"terraform-provider-dbm/pkg/client/session"
)

const (
	mysqlModule     = "mysql"
	spiderResources = "spider_resources"
)

func GetSpiderList(ctx context.Context, s *session.Session, params requests.Params) (*entities.ListBase[entities.TendbCluster], error) {

	uri := s.BizURI(mysqlModule, spiderResources)
	var list entities.ListBase[entities.TendbCluster]
	err := s.Requester.Get(ctx, uri, params, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func GetSpiderDetails(ctx context.Context, s *session.Session, id int) (*entities.TendbCluster, error) {

	uri := s.BizURI(mysqlModule, spiderResources, strconv.Itoa(id))
	var cluster entities.TendbCluster
	err := s.Requester.Get(ctx, uri, nil, &cluster)
	if err != nil {
		return nil, err
	}
	return &cluster, nil
}

func GetSpiderInstances(ctx context.Context, s *session.Session, params requests.Params) (*entities.ListBase[entities.TendbInstance], error) {

	uri := s.BizURI(mysqlModule, spiderResources, "list_instances")
	var list entities.ListBase[entities.TendbInstance]
	err := s.Requester.Get(ctx, uri, params, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func GetSpiderInstanceDetails(ctx context.Context, s *session.Session, instanceAddress string, clusterID int) (*entities.TendbInstance, error) {

	params := requests.Params{
		"instance_address": instanceAddress,
		"cluster_id":       clusterID,
	}
	uri := s.BizURI(mysqlModule, spiderResources, "retrieve_instance")
	var instance entities.TendbInstance
	err := s.Requester.Get(ctx, uri, params, &instance)
	if err != nil {
		return nil, err
	}
	return &instance, nil
}
