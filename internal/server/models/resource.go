package models

// ResourceKind names a node type in the ownership tree.
type ResourceKind string

const (
	KindTest     ResourceKind = "test"
	KindQuestion ResourceKind = "question"
)

// ResourceRef points at one owned resource for authorization checks.
type ResourceRef struct {
	Kind ResourceKind
	ID   int64
}

// Ownership is the resolved ownership state of a resource: the identity at
// the root of its ownership chain and whether the node itself is
// soft-deleted. A deleted or absent parent never produces an Ownership at
// all; it resolves to not-found.
type Ownership struct {
	OwnerID int64
	Deleted bool
}
