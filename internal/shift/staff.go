package shift

// StaffMember is a directory entry consumed read-only by coloring and
// view rendering.
type StaffMember struct {
	ID   int64
	Name string
	Role string
}
