package customvalidators

import (
	"context"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

func validateString(v validator.String, value types.String) *validator.StringResponse {
	req := validator.StringRequest{
		Path:        path.Root("attr"),
		ConfigValue: value,
	}
	resp := &validator.StringResponse{}
	v.ValidateString(context.Background(), req, resp)
	return resp
}

func TestInstanceAddress(t *testing.T) {
	cases := map[string]bool{
		"127.0.0.1:25000": true,
		"[::1]:20000":     true,
		"127.0.0.1":       false,
		"spider.db:25000": false,
		"127.0.0.1:0":     false,
		"127.0.0.1:70000": false,
		"127.0.0.1:port":  false,
	}
	for value, valid := range cases {
		resp := validateString(InstanceAddress(), types.StringValue(value))
		if resp.Diagnostics.HasError() == valid {
			t.Errorf("%q: valid=%v, diagnostics=%v", value, valid, resp.Diagnostics)
		}
	}
}

func TestSemver(t *testing.T) {
	cases := map[string]bool{
		"5.7.20": true,
		"8.0":    true,
		"4":      true,
		"latest": false,
		"5.7.x1": false,
	}
	for value, valid := range cases {
		resp := validateString(Semver(), types.StringValue(value))
		if resp.Diagnostics.HasError() == valid {
			t.Errorf("%q: valid=%v, diagnostics=%v", value, valid, resp.Diagnostics)
		}
	}
}

func TestValidatorsSkipUnsetValues(t *testing.T) {
	for _, v := range []validator.String{InstanceAddress(), Semver()} {
		if validateString(v, types.StringNull()).Diagnostics.HasError() {
			t.Errorf("%T must accept null", v)
		}
		if validateString(v, types.StringUnknown()).Diagnostics.HasError() {
			t.Errorf("%T must accept unknown", v)
		}
	}
}
