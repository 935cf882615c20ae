// Package domain holds cross cutting domain types shared by the
// feature packages underneath it.
package domain

// Principal identifies the authenticated caller of an operation.
// It is resolved once by the HTTP layer and passed explicitly to
// domain services so ownership checks never rely on ambient state.
type Principal struct {
	// CompanyPublicID is the public identifier of the company the
	// caller belongs to, e.g. "comp_h7k2m9x4".
	CompanyPublicID string
}
