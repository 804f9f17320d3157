package utils

import (
	"context"
	"fmt"
	"maps"
	"sort"

	"github.com/Masterminds/semver"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/types"

	"terraform-provider-dbm/internal/consts"
	"terraform-provider-dbm/pkg/client/entities"
	"terraform-provider-dbm/pkg/client/requests"
)

func IsVersionOlder(current, latest string) (bool, error) {
	currentVersion, err := semver.NewVersion(current)
	if err != nil {
		return false, fmt.Errorf("error parsing current version (%s): %w", current, err)
	}

	latestVersion, err := semver.NewVersion(latest)
	if err != nil {
		return false, fmt.Errorf("error parsing latest version (%s): %w", latest, err)
	}

	return currentVersion.LessThan(latestVersion), nil
}

// AtLeastVersion reports whether version >= min. Versions that do not parse
// never satisfy the bound.
func AtLeastVersion(version, min string) bool {
	older, err := IsVersionOlder(version, min)
	if err != nil {
		return false
	}
	return !older
}

// WarnIfInvalid turns a failed Validate into a warning diagnostic: the
// payload is still used as returned.
func WarnIfInvalid(diags *diag.Diagnostics, v entities.Validator) {
	if err := v.Validate(); err != nil {
		diags.AddWarning(consts.PAYLOAD_WARNING, err.Error())
	}
}

// SetParam adds the value to params unless it is null or unknown.
func SetParam(params requests.Params, key string, value interface{}) {
	switch v := value.(type) {
	case types.String:
		if !v.IsNull() && !v.IsUnknown() && v.ValueString() != "" {
			params[key] = v.ValueString()
		}
	case types.Int64:
		if !v.IsNull() && !v.IsUnknown() {
			params[key] = v.ValueInt64()
		}
	default:
		panic(fmt.Sprintf("unsupported param type %T", value))
	}
}

func GetMapKeys[V any](targetMap map[string]V) []string {
	keys := make([]string, 0, len(targetMap))
	for key := range targetMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// StringsOrEmpty keeps computed list attributes known and non-null.
func StringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// FetchAllPages walks a limit/offset list endpoint until count results are
// collected or a page comes back empty. It returns the count DBM reported.
func FetchAllPages[T any](
	ctx context.Context,
	params requests.Params,
	fetch func(ctx context.Context, params requests.Params) (*entities.ListBase[T], error),
) (int, []T, error) {

	var results []T
	count := 0
	for offset := 0; ; {
		page := maps.Clone(params)
		if page == nil {
			page = requests.Params{}
		}
		page["limit"] = consts.DEFAULT_PAGESIZE
		page["offset"] = offset

		list, err := fetch(ctx, page)
		if err != nil {
			return 0, nil, err
		}
		count = list.Count
		results = append(results, list.Results...)
		offset += len(list.Results)
		if len(list.Results) == 0 || len(results) >= count {
			break
		}
	}
	return count, results, nil
}
