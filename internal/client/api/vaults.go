package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mkravchenko/linkvault/internal/client/models"
)

type runQueryRequest struct {
	StructuredQuery structuredQuery `json:"structuredQuery"`
}

type structuredQuery struct {
	From  []collectionSelector `json:"from"`
	Where *queryFilter         `json:"where,omitempty"`
}

type collectionSelector struct {
	CollectionID string `json:"collectionId"`
}

type queryFilter struct {
	FieldFilter fieldFilter `json:"fieldFilter"`
}

type fieldFilter struct {
	Field fieldReference `json:"field"`
	Op    string         `json:"op"`
	Value value          `json:"value"`
}

type fieldReference struct {
	FieldPath string `json:"fieldPath"`
}

// queryResult is one envelope in a runQuery response. Envelopes carrying no
// document (progress/no-match rows) are skipped by the caller.
type queryResult struct {
	Document *document `json:"document"`
}

// ListVaults queries the store for vaults whose ownerId equals ownerID.
// Ownership filtering is expressed in the query itself; results come back in
// backend order and an empty result is a valid answer, not an error.
func (c *RESTClient) ListVaults(ctx context.Context, token string, ownerID string) ([]models.VaultSummary, error) {
	body := runQueryRequest{StructuredQuery: structuredQuery{
		From: []collectionSelector{{CollectionID: "vaults"}},
		Where: &queryFilter{FieldFilter: fieldFilter{
			Field: fieldReference{FieldPath: "ownerId"},
			Op:    "EQUAL",
			Value: stringValue(ownerID),
		}},
	}}

	resp, err := c.doJSON(ctx, http.MethodPost, c.docsBase()+":runQuery", token, body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, storeError(resp)
	}

	var results []queryResult
	if err := decodeJSON(resp, &results); err != nil {
		return nil, err
	}

	vaults := make([]models.VaultSummary, 0, len(results))
	for _, r := range results {
		if r.Document == nil {
			continue
		}
		vaults = append(vaults, models.VaultSummary{
			ID:   documentID(r.Document.Name),
			Name: stringField(r.Document.Fields, "name"),
		})
	}
	return vaults, nil
}

// GetVault reads one vault document by id, including its link array and the
// revision timestamp used to guard later writes.
func (c *RESTClient) GetVault(ctx context.Context, token string, id string) (*models.Vault, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, c.docsBase()+"/vaults/"+url.PathEscape(id), token, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, storeError(resp)
	}

	var doc document
	if err := decodeJSON(resp, &doc); err != nil {
		return nil, err
	}
	return decodeVault(&doc), nil
}

// UpdateVaultLinks replaces the vault's links field with the given sequence.
// The update mask keeps sibling fields (name, ownerId) untouched. When
// updateTime is non-empty it is sent as a currentDocument precondition, so a
// concurrent writer causes ErrConflict instead of a silent overwrite.
func (c *RESTClient) UpdateVaultLinks(ctx context.Context, token string, id string, links []models.Link, updateTime string) error {
	target := fmt.Sprintf("%s/vaults/%s?updateMask.fieldPaths=links", c.docsBase(), url.PathEscape(id))
	if updateTime != "" {
		target += "&currentDocument.updateTime=" + url.QueryEscape(updateTime)
	}

	body := document{Fields: map[string]value{"links": encodeLinks(links)}}

	resp, err := c.doJSON(ctx, http.MethodPatch, target, token, body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return storeError(resp)
	}
	resp.Body.Close()
	return nil
}
