package sql

import "embed"

// Migrations holds the schema migration files, applied in filename order.
//
//go:embed migrations
var Migrations embed.FS

//go:embed queries/list_agencies.sql
var ListAgencies string

//go:embed queries/list_procedure_types.sql
var ListProcedureTypes string

//go:embed queries/fee_rules_for_triple.sql
var FeeRulesForTriple string

//go:embed queries/agency_by_id.sql
var AgencyByID string

//go:embed queries/components_by_ids.sql
var ComponentsByIDs string
