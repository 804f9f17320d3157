package customvalidators

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
)

// InstanceAddressValidator ensures the value is an instance address of the
// form <ip>:<port>.
type InstanceAddressValidator struct{}

func InstanceAddress() InstanceAddressValidator {
	return InstanceAddressValidator{}
}

func (v InstanceAddressValidator) Description(_ context.Context) string {
	return "The value must be an instance address in the form ip:port."
}

func (v InstanceAddressValidator) MarkdownDescription(_ context.Context) string {
	return "The value must be an instance address in the form `ip:port`."
}

func (v InstanceAddressValidator) ValidateString(
	ctx context.Context,
	req validator.StringRequest,
	resp *validator.StringResponse,
) {
	if req.ConfigValue.IsNull() || req.ConfigValue.IsUnknown() {
		return
	}

	value := req.ConfigValue.ValueString()
	if err := ParseInstanceAddress(value); err != nil {
		resp.Diagnostics.AddAttributeError(
			req.Path,
			"Not valid instance address",
			fmt.Sprintf("Instance address '%s' is invalid: %s", value, err),
		)
	}
}

func ParseInstanceAddress(value string) error {
	host, port, err := net.SplitHostPort(value)
	if err != nil {
		return err
	}
	if net.ParseIP(host) == nil {
		return fmt.Errorf("'%s' is not an ip address", host)
	}
	p, err := strconv.Atoi(port)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("port '%s' is out of range", port)
	}
	return nil
}
