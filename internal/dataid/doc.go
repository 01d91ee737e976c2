// Package dataid provides schema-driven dataset identifiers and the queries
// that resolve them.
//
// A Schema declares the identifying fields of a data product: whether each is
// required, transitive to derived products, has a default, and how raw values
// are coerced (a named type or a closed enumeration). A DataID is an immutable
// record curated from raw attributes through a Schema. A Query partially
// specifies a DataID, using value.Wildcard and value.OneOf, and can filter and
// rank a collection of DataIDs.
//
// Key functions:
//   - NewSchema: validates field declarations and fixes enumerations
//   - Schema.New / Schema.Builder: curate raw attributes into a DataID
//   - Query.Filter: keep the DataIDs a query matches
//   - Query.Rank: order candidates by type-aware distance
//   - FilteredQuery: build a query from a name, wavelength, DataID or Query
package dataid
