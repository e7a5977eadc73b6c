// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/destination,
// domain/category, domain/review, domain/user, domain/listing). This root
// package holds sentinel errors and the field-level validation type shared by
// all of them.
package domain
