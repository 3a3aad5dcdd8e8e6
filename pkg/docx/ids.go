package docx

import "fmt"

// idAllocator hands out relationship identifiers for one build session.
// Identifiers start at 0 and increase strictly in registration order; they are
// never reused or reordered. The allocator is session state owned by a
// Workspace, never a package-level counter, so concurrent sessions cannot
// interfere with each other.
type idAllocator struct {
	next int
}

// Next returns the current counter value and increments it.
func (a *idAllocator) Next() int {
	id := a.next
	a.next++
	return id
}

// refID formats an identifier as a DOCX relationship reference, e.g. "rId3".
func refID(id int) string {
	return fmt.Sprintf("rId%d", id)
}
