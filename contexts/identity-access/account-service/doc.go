// Package account implements the Account Service inside Dailytrack.
//
// Layering:
// - domain: user entity, invariants, errors
// - application: register/login/refresh/profile use-cases using explicit ports
// - ports: stable boundaries for persistence, hashing, and token issuance
// - adapters: concrete HTTP, memory, postgres, bcrypt, and token implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under identity-access context.
// - Do not import other context adapters into domain/application.
// - Raw passwords cross only the Hasher port and are never logged.
package account
