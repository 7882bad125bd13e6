// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// UserConfigKey addresses a single user-config document: Role selects the
// collection and UID the document inside it.
type UserConfigKey struct {
	// Role is the collection name (e.g. "customers", "drivers").
	Role string `json:"role"`

	// UID is the subject identifier taken from the verified identity token.
	UID string `json:"uid"`
}

// UserConfig is the stored per-user configuration record.
//
// Attributes that were never set are nil and omitted from JSON. At most one
// of Email and Password is written by a create request.
type UserConfig struct {
	// Role and UID form the immutable document key. They are not part of
	// the document body returned to callers.
	Role string `json:"-"`
	UID  string `json:"-"`

	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Email       *string `json:"email,omitempty"`
	Password    *string `json:"password,omitempty"`

	// CreatedAt is assigned by the store clock when the document is written
	// by a create request. Updates never change it.
	CreatedAt time.Time `json:"createdAt"`
}

// Key returns the document key of the record.
func (u UserConfig) Key() UserConfigKey {
	return UserConfigKey{Role: u.Role, UID: u.UID}
}

// UserConfigPayload is the JSON body accepted by create and update requests.
//
// String fields are pointers so that an absent key and an explicit null can
// be told apart from a value; see [Provided]. Fields accept any JSON type,
// see [UserConfigPayload.UnmarshalJSON].
type UserConfigPayload struct {
	// Role is used only when the query string carries no "role" parameter.
	Role *string `json:"role,omitempty"`

	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Email       *string `json:"email,omitempty"`
	Password    *string `json:"password,omitempty"`
}

// Provided reports whether a payload field counts as supplied by the caller.
// A field is supplied only when it is present, not null and not empty:
// {"firstName": ""} leaves the stored value untouched on update.
func Provided(field *string) bool {
	return field != nil && *field != ""
}

// UnmarshalJSON decodes a JSON object whose fields may hold any JSON type.
// null, false and 0 leave a field nil. Other non-string values keep their
// JSON text, so true becomes "true" and 42 becomes "42". Unknown keys are
// ignored and key names are matched exactly.
func (p *UserConfigPayload) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var decoded UserConfigPayload
	targets := map[string]**string{
		"role":        &decoded.Role,
		"firstName":   &decoded.FirstName,
		"lastName":    &decoded.LastName,
		"phoneNumber": &decoded.PhoneNumber,
		"email":       &decoded.Email,
		"password":    &decoded.Password,
	}
	for name, target := range targets {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		value, err := fieldText(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		*target = value
	}

	*p = decoded
	return nil
}

// fieldText converts one JSON value to the text stored for it.
func fieldText(raw json.RawMessage) (*string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}

	var text string
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		text = v
	case bool:
		if !v {
			return nil, nil
		}
		text = "true"
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return nil, nil
		}
		text = v.String()
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return nil, err
		}
		text = buf.String()
	}

	return &text, nil
}

// UserConfigUpdate is the set of columns an update request changes.
// A nil field is left unchanged.
type UserConfigUpdate struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Email       *string
	Password    *string
}

// IsEmpty reports whether the update changes nothing.
func (u UserConfigUpdate) IsEmpty() bool {
	return u.FirstName == nil &&
		u.LastName == nil &&
		u.PhoneNumber == nil &&
		u.Email == nil &&
		u.Password == nil
}
