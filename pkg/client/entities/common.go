package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ListBase is the paginated list shape returned by DBM list endpoints.
type ListBase[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// UnmarshalJSON decodes results one element at a time. A field of an
// unexpected type leaves that field zero and keeps the element.
func (l *ListBase[T]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Count   int               `json:"count"`
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return err
		}
	}
	l.Count = raw.Count
	l.Results = nil
	if raw.Results == nil {
		return nil
	}
	l.Results = make([]T, 0, len(raw.Results))
	for _, elem := range raw.Results {
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				return err
			}
		}
		l.Results = append(l.Results, item)
	}
	return nil
}

// FlexString holds a field the backend sends with varying JSON types.
// Non-string values are kept as their compact JSON text; null is ignored.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	case data[0] == '{' || data[0] == '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*f = FlexString(buf.String())
	default:
		*f = FlexString(data)
	}
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// Ptr returns nil for a nil receiver.
func (f *FlexString) Ptr() *string {
	if f == nil {
		return nil
	}
	s := string(*f)
	return &s
}

// Validator is implemented by models that can report missing identity fields.
type Validator interface {
	Validate() error
}

// ValidationError lists the fields a payload was expected to carry but did not.
type ValidationError struct {
	Model   string
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s payload is missing required fields: %s", e.Model, strings.Join(e.Missing, ", "))
}

type requiredFields struct {
	model   string
	missing []string
}

func (r *requiredFields) int(name string, v int) {
	if v == 0 {
		r.missing = append(r.missing, name)
	}
}

func (r *requiredFields) str(name, v string) {
	if v == "" {
		r.missing = append(r.missing, name)
	}
}

func (r *requiredFields) err() error {
	if len(r.missing) == 0 {
		return nil
	}
	return &ValidationError{Model: r.model, Missing: r.missing}
}

// HydrateStrict decodes data into v and then validates it. Plain
// json.Unmarshal keeps the lenient pass-through behaviour.
func HydrateStrict(data []byte, v Validator) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return v.Validate()
}

type Range struct {
	Max float64 `json:"max"`
	Min float64 `json:"min"`
}

type StorageSpec struct {
	MountPoint string `json:"mount_point"`
	Size       int    `json:"size"`
	Type       string `json:"type"`
}

// InstanceSpecInfo is the resource spec attached to clusters and instances.
type InstanceSpecInfo struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	CPU         Range         `json:"cpu"`
	Mem         Range         `json:"mem"`
	QPS         Range         `json:"qps"`
	Count       int           `json:"count"`
	DeviceClass []string      `json:"device_class"`
	StorageSpec []StorageSpec `json:"storage_spec"`
}

// UnmarshalJSON ignores a spec that is not an object and keeps the fields
// of an object that decode.
func (i *InstanceSpecInfo) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	type plain InstanceSpecInfo
	var spec plain
	if err := json.Unmarshal(data, &spec); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return err
		}
	}
	*i = InstanceSpecInfo(spec)
	return nil
}

// SpecInfo is the spec shape used inside ticket details.
type SpecInfo struct {
	SpecID          int           `json:"spec_id"`
	SpecName        string        `json:"spec_name"`
	SpecClusterType string        `json:"spec_cluster_type"`
	SpecMachineType string        `json:"spec_machine_type"`
	Count           int           `json:"count"`
	CPU             Range         `json:"cpu"`
	Mem             Range         `json:"mem"`
	QPS             Range         `json:"qps"`
	DeviceClass     []string      `json:"device_class"`
	StorageSpec     []StorageSpec `json:"storage_spec"`
}

// TimeBase carries the audit columns most DBM records share.
type TimeBase struct {
	CreateAt string `json:"create_at"`
	Creator  string `json:"creator"`
	UpdateAt string `json:"update_at"`
	Updater  string `json:"updater"`
}

func (t TimeBase) CreateAtDisplay(loc *time.Location) string {
	return UTCDisplayTime(t.CreateAt, loc)
}

func (t TimeBase) UpdateAtDisplay(loc *time.Location) string {
	return UTCDisplayTime(t.UpdateAt, loc)
}
