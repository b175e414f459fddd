package provider

import "strconv"

// BackRef is a positional back-reference: the index of the parent-creation
// operation within the same batch. It stands in for a parent identifier that
// does not exist until the whole batch commits, and is distinct from a real
// storage identifier by type so the two cannot be confused.
type BackRef int

// Operation is one unit in a write batch: either a contact-creation insert
// carrying account attributes, or a child data insert carrying a kind tag and
// a positional back-reference to its parent. A batch exclusively owns its
// operations and is never mutated after handoff to an Executor.
type Operation struct {
	// Parent marks the contact-creation insert.
	Parent bool
	// Kind tags child inserts. Empty on the parent insert.
	Kind Kind
	// ParentRef is the batch index of the parent insert. Meaningful only on
	// child inserts.
	ParentRef BackRef
	// Values holds the string column values for the insert.
	Values map[string]string
	// Blob holds an opaque binary payload for photo inserts.
	Blob []byte
}

// NewParentInsert returns the contact-creation operation for the given
// account namespace. The account strings are passed through opaquely.
func NewParentInsert(accountType string, accountName string) Operation {
	return Operation{
		Parent: true,
		Values: map[string]string{
			KeyAccountType: accountType,
			KeyAccountName: accountName,
		},
	}
}

// NewChildInsert returns a child data insert of the given kind referencing
// the parent insert at index parent within the same batch.
func NewChildInsert(kind Kind, parent BackRef) Operation {
	return Operation{
		Kind:      kind,
		ParentRef: parent,
		Values:    map[string]string{},
	}
}

// Set stores a string column value on the operation.
func (op Operation) Set(key string, value string) {
	op.Values[key] = value
}

// SetInt stores an integer column value on the operation.
func (op Operation) SetInt(key string, value int) {
	op.Values[key] = strconv.Itoa(value)
}

// Executor applies an operation batch transactionally.
//
// On success the returned identifiers align index-by-index with ops, so the
// committed identifier for any position named by a BackRef is resolvable. On
// any failure none of the batch's effects are visible.
type Executor interface {
	Apply(ops []Operation) ([]string, error)
}
