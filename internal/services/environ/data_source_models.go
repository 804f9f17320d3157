package environ

import (
	"github.com/hashicorp/terraform-plugin-framework/types"

	"terraform-provider-dbm/pkg/client/entities"
)

type AffinityModel struct {
	Label types.String `tfsdk:"label"`
	Value types.String `tfsdk:"value"`
}

type SystemEnvironModel struct {
	URLs     map[string]string `tfsdk:"urls"`
	Affinity []AffinityModel   `tfsdk:"affinity"`
}

func newAffinityModels(options []entities.AffinityOption) []AffinityModel {
	out := make([]AffinityModel, 0, len(options))
	for _, o := range options {
		out = append(out, AffinityModel{
			Label: types.StringValue(o.Label),
			Value: types.StringValue(o.Value),
		})
	}
	return out
}
