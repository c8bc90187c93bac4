// Package domain holds the core value types for gitline.
package domain

// Snapshot is the status of a repository at one point in time. It is built
// fresh for every prompt render and discarded after rendering; nothing holds
// onto it across invocations.
type Snapshot struct {
	// Branch is the resolved display identity: branch short name, an
	// 8-hex-char commit prefix for a detached HEAD, or a fallback literal.
	// Never empty once a repository opened successfully.
	Branch string

	// Tag is the most recent reachable tag, or empty when there is none or
	// the lookup failed. A non-empty Tag replaces Branch for display.
	Tag string

	// Remote is the fully qualified name of the tracked upstream reference,
	// or empty when no upstream is configured or it cannot be resolved.
	Remote string

	// Staged changes (index vs HEAD).
	IndexNew        int
	IndexModified   int
	IndexDeleted    int
	IndexRenamed    int
	IndexTypeChange int

	// Unstaged changes (working tree vs index).
	WtNew        int
	WtModified   int
	WtDeleted    int
	WtRenamed    int
	WtTypeChange int

	Ignored    int
	Conflicted int
	Ahead      int
	Behind     int
}

// DisplayRef returns the identity shown in the prompt: the tag when one is
// reachable, otherwise the branch.
func (s *Snapshot) DisplayRef() string {
	if s.Tag != "" {
		return s.Tag
	}
	return s.Branch
}

// Clean reports whether the snapshot carries no change counts at all.
func (s *Snapshot) Clean() bool {
	return s.IndexNew == 0 && s.IndexModified == 0 && s.IndexDeleted == 0 &&
		s.IndexRenamed == 0 && s.IndexTypeChange == 0 &&
		s.WtNew == 0 && s.WtModified == 0 && s.WtDeleted == 0 &&
		s.WtRenamed == 0 && s.WtTypeChange == 0 &&
		s.Ignored == 0 && s.Conflicted == 0
}
