// Package challenge implements the Challenge Service inside Dailytrack:
// challenges, their daily completion logs, and read-only shared grants.
//
// Layering:
// - domain: entities, invariants, errors, and the ownership resolver
// - application: use-cases composing the resolver with explicit ports
// - ports: stable boundaries for persistence and cross-context user reads
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under challenge-tracking context.
// - Identity data is reached only through the UserDirectory port; the
//   concrete directory is wired at the composition root.
// - NotFound always wins over Forbidden when a parent lookup fails:
//   ownership is only ever evaluated on an existing resource.
package challenge
