package domains

// Selection is an immutable snapshot of what the user picked in the
// selection form: whose PRs to show and where to look for them.
type Selection struct {
	Owners   []string
	Repos    []string
	UserOnly bool
}
