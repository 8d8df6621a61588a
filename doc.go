// Package lager models profile-scoped configuration data for layered
// configuration systems.
//
// A configuration layer is a dictionary of structured values scoped to a
// named Profile. Providers (see the providers subpackage) each emit a
// mapping from profile to dictionary; a downstream merge engine stacks
// those mappings into the effective configuration. This package defines the
// vocabulary shared by providers and engines:
//   - Profile: a case-sensitive layer identifier with the reserved
//     Default and Global names
//   - Provider: the contract every configuration source satisfies
//   - Metadata: provider name and construction call site, for diagnostics
//   - TypeError / ErrInvalidType: shape mismatches in provider output
//
// The structured value tree itself lives in the value subpackage.
package lager
