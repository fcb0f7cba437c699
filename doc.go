// Package adapters converts between parallel representations of the same
// record, typically a storage-shaped entity and a domain object.
//
// Basic usage
//
//	a := adapters.New()
//	err := a.Adapt(&entity, &domainObject) // src, dst
//	err = a.Into(&domainObject, &entity)   // dst, src
//
// # Adaptation rules
//
// For every exported destination field, in declaration order:
//  1. a registered converter for the field is applied (pair scope, then
//     destination scope, then global scope)
//  2. otherwise a same-named source field (or one with the same json tag) is
//     assigned or converted when the types allow it
//  3. the validator registered for the field, if any, runs on the new value
//
// Unmatched source fields are marshaled into dst.AdditionalData when the
// destination has one (null.JSON or sqlboiler types.JSON); a source
// AdditionalData is decoded into matching destination fields.
//
// Fields tagged `adapter:"ignore"` or `adapter:"-"` are neither copied nor
// marshaled. Embedded structs are flattened.
//
// The source is never written to. Adapters are safe for concurrent use,
// including concurrent registration.
package adapters
