// Package access holds the write-authorization policy for the catalog.
// The model is deliberately minimal: a single configured writer, no roles,
// no per-resource ownership.
package access

import "strings"

// Identity is the resolved per-request identity handed over by the external
// authentication collaborator. Empty email means anonymous.
type Identity struct {
	Email       string
	DisplayName string
}

func (i Identity) Anonymous() bool {
	return i.Email == ""
}

// Policy decides whether an identity may mutate the catalog.
// It is evaluated per request; implementations must not cache decisions
// across requests.
type Policy interface {
	CanWrite(identity Identity) bool
}

// SingleWriterPolicy allows exactly one statically configured email address.
type SingleWriterPolicy struct {
	WriterEmail string
}

func NewSingleWriterPolicy(email string) *SingleWriterPolicy {
	return &SingleWriterPolicy{WriterEmail: strings.TrimSpace(email)}
}

func (p *SingleWriterPolicy) CanWrite(identity Identity) bool {
	if p.WriterEmail == "" || identity.Anonymous() {
		return false
	}
	return identity.Email == p.WriterEmail
}
