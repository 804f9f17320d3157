package customvalidators

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
)

// SemverValidator ensures the value parses as a semantic version, e.g. 5.7 or 8.0.18.
type SemverValidator struct{}

func Semver() SemverValidator {
	return SemverValidator{}
}

func (v SemverValidator) Description(_ context.Context) string {
	return "The value must be a semantic version."
}

func (v SemverValidator) MarkdownDescription(_ context.Context) string {
	return "The value must be a semantic version, e.g. `5.7.20`."
}

func (v SemverValidator) ValidateString(
	ctx context.Context,
	req validator.StringRequest,
	resp *validator.StringResponse,
) {
	if req.ConfigValue.IsNull() || req.ConfigValue.IsUnknown() {
		return
	}

	value := req.ConfigValue.ValueString()
	if _, err := semver.NewVersion(value); err != nil {
		resp.Diagnostics.AddAttributeError(
			req.Path,
			"Not valid version",
			fmt.Sprintf("Version '%s' can't be parsed: %s", value, err),
		)
	}
}
