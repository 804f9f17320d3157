package sources

import (
	"context"

	"terraform-provider-dbm/pkg/client/entities"
	"terraform-provider-dbm/pkg/client/requests"
	"terraform-provider-dbm/pkg/client/session"
)

const (
	mongodbModule    = "mongodb"
	mongodbResources = "mongodb_resources"
)

func GetMongodbInstances(ctx context.Context, s *session.Session, params requests.Params) (*entities.ListBase[entities.MongodbInstanceDetail], error) {

	uri := s.BizURI(mongodbModule, mongodbResources, "list_instances")
	var list entities.ListBase[entities.MongodbInstanceDetail]
	err := s.Requester.Get(ctx, uri, params, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func GetMongodbInstanceDetails(ctx context.Context, s *session.Session, instanceAddress string, clusterID int) (*entities.MongodbInstanceDetail, error) {

	params := requests.Params{
		"instance_address": instanceAddress,
		"cluster_id":       clusterID,
	}
	uri := s.BizURI(mongodbModule, mongodbResources, "retrieve_instance")
	var instance entities.MongodbInstanceDetail
	err := s.Requester.Get(ctx, uri, params, &instance)
	if err != nil {
		return nil, err
	}
	return &instance, nil
}
