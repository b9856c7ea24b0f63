// astra-db-go - Go client for the DataStax Astra DB Data and DevOps APIs
// Copyright 2026 DataStax, Inc.
// SPDX-License-Identifier: Apache-2.0

package devops

import (
	"fmt"

	"github.com/datastax/astra-db-go/internal/apierrors"
	"github.com/datastax/astra-db-go/internal/httpcore"
)

// FindAvailableRegionsOptions controls the org-enabled filter on region
// discovery. The zero value (OnlyOrgEnabledRegions unset) behaves as true.
type FindAvailableRegionsOptions struct {
	OnlyOrgEnabledRegions *bool
}

func (o FindAvailableRegionsOptions) filterByOrg() string {
	if o.OnlyOrgEnabledRegions != nil && !*o.OnlyOrgEnabledRegions {
		return "disabled"
	}
	return "enabled"
}

// NewFindAvailableRegionsCommand builds the GET /regions/serverless command.
// onlyOrgEnabledRegions:false queries filter-by-org=disabled; true or
// omitted (the zero value) queries filter-by-org=enabled.
func NewFindAvailableRegionsCommand(devopsURL string, opts FindAvailableRegionsOptions) httpcore.Command {
	url := fmt.Sprintf("%s/v2/regions/serverless?filter-by-org=%s&region-type=vector", devopsURL, opts.filterByOrg())
	return httpcore.Command{
		Name:       "findAvailableRegions",
		Target:     "devops",
		Method:     "GET",
		URL:        url,
		ForceHTTP1: true,
		Idempotent: true,
		Category:   apierrors.TimeoutCategoryGeneral,
	}
}
