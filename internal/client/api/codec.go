package api

import (
	"strings"
	"time"

	"github.com/mkravchenko/linkvault/internal/client/models"
)

// The document store represents every field as a typed value envelope.
// Only the types the vault schema uses are modeled here.

type value struct {
	StringValue    *string     `json:"stringValue,omitempty"`
	TimestampValue *time.Time  `json:"timestampValue,omitempty"`
	ArrayValue     *arrayValue `json:"arrayValue,omitempty"`
	MapValue       *mapValue   `json:"mapValue,omitempty"`
}

type arrayValue struct {
	Values []value `json:"values,omitempty"`
}

type mapValue struct {
	Fields map[string]value `json:"fields,omitempty"`
}

// document is a stored document: a resource name, a field map, and the
// server-assigned revision timestamps.
type document struct {
	Name       string           `json:"name,omitempty"`
	Fields     map[string]value `json:"fields"`
	CreateTime string           `json:"createTime,omitempty"`
	UpdateTime string           `json:"updateTime,omitempty"`
}

func stringValue(s string) value {
	return value{StringValue: &s}
}

func timestampValue(t time.Time) value {
	return value{TimestampValue: &t}
}

func stringField(fields map[string]value, key string) string {
	if v, ok := fields[key]; ok && v.StringValue != nil {
		return *v.StringValue
	}
	return ""
}

func timeField(fields map[string]value, key string) time.Time {
	if v, ok := fields[key]; ok && v.TimestampValue != nil {
		return *v.TimestampValue
	}
	return time.Time{}
}

// documentID extracts the final path segment of a document resource name,
// e.g. "projects/p/databases/(default)/documents/vaults/v1" -> "v1".
func documentID(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// decodeVault maps a vault document to the client model. A missing links
// field decodes as an empty list, not an error.
func decodeVault(doc *document) *models.Vault {
	v := &models.Vault{
		ID:         documentID(doc.Name),
		Name:       stringField(doc.Fields, "name"),
		OwnerID:    stringField(doc.Fields, "ownerId"),
		UpdateTime: doc.UpdateTime,
	}

	links, ok := doc.Fields["links"]
	if !ok || links.ArrayValue == nil {
		return v
	}
	for _, lv := range links.ArrayValue.Values {
		if lv.MapValue == nil {
			continue
		}
		v.Links = append(v.Links, decodeLink(lv.MapValue.Fields))
	}
	return v
}

func decodeLink(fields map[string]value) models.Link {
	return models.Link{
		ID:          stringField(fields, "id"),
		Title:       stringField(fields, "title"),
		URL:         stringField(fields, "url"),
		Description: stringField(fields, "description"),
		CreatedAt:   timeField(fields, "createdAt"),
		UpdatedAt:   timeField(fields, "updatedAt"),
		CreatedBy:   stringField(fields, "createdBy"),
	}
}

func encodeLink(l models.Link) value {
	return value{MapValue: &mapValue{Fields: map[string]value{
		"id":          stringValue(l.ID),
		"title":       stringValue(l.Title),
		"url":         stringValue(l.URL),
		"description": stringValue(l.Description),
		"createdAt":   timestampValue(l.CreatedAt),
		"updatedAt":   timestampValue(l.UpdatedAt),
		"createdBy":   stringValue(l.CreatedBy),
	}}}
}

func encodeLinks(links []models.Link) value {
	values := make([]value, 0, len(links))
	for _, l := range links {
		values = append(values, encodeLink(l))
	}
	return value{ArrayValue: &arrayValue{Values: values}}
}
