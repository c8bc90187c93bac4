// Package render turns a status snapshot into the one-line prompt segment.
package render

import (
	"fmt"
	"strings"

	"github.com/xvierd/gitline/internal/domain"
)

// Render produces the display string for a snapshot. The output is a pure
// function of the snapshot: categories appear in a fixed order, empty
// categories contribute nothing, and the result always carries exactly one
// leading space (an all-empty snapshot renders as a single space).
//
// Category order: remote indicator, branch or tag, staged, unstaged,
// ignored, conflicts and deletions.
func Render(s *domain.Snapshot) string {
	parts := make([]string, 0, 6)

	if r := remoteIndicator(s); r != "" {
		parts = append(parts, r)
	}

	if ref := s.DisplayRef(); ref != "" {
		parts = append(parts, ref)
	}

	for _, category := range []string{staged(s), unstaged(s), ignored(s), conflicts(s)} {
		if category != "" {
			parts = append(parts, category)
		}
	}

	return " " + strings.TrimSpace(strings.Join(parts, " "))
}

// remoteIndicator is the reserved leading slot for an upstream marker. The
// upstream name is collected into the snapshot but not yet displayed; the
// slot stays empty until a display format for it settles.
func remoteIndicator(_ *domain.Snapshot) string {
	return ""
}

// staged summarizes index changes, shown green by callers that style output.
func staged(s *domain.Snapshot) string {
	segments := make([]string, 0, 4)

	if s.IndexNew > 0 {
		segments = append(segments, fmt.Sprintf("+%d", s.IndexNew))
	}
	if s.IndexModified > 0 {
		segments = append(segments, fmt.Sprintf("+~%d", s.IndexModified))
	}
	if s.IndexRenamed > 0 {
		segments = append(segments, fmt.Sprintf("+->%d", s.IndexRenamed))
	}
	if s.IndexTypeChange > 0 {
		segments = append(segments, fmt.Sprintf("+t%d", s.IndexTypeChange))
	}

	return strings.Join(segments, " ")
}

// unstaged summarizes working-tree changes and remote divergence, shown
// yellow by callers that style output.
func unstaged(s *domain.Snapshot) string {
	segments := make([]string, 0, 6)

	if s.WtNew > 0 {
		segments = append(segments, fmt.Sprintf("?%d", s.WtNew))
	}
	if s.WtModified > 0 {
		segments = append(segments, fmt.Sprintf("~%d", s.WtModified))
	}
	if s.WtRenamed > 0 {
		segments = append(segments, fmt.Sprintf("->%d", s.WtRenamed))
	}
	if s.WtTypeChange > 0 {
		segments = append(segments, fmt.Sprintf("t%d", s.WtTypeChange))
	}
	if s.Ahead > 0 {
		segments = append(segments, fmt.Sprintf("↑%d", s.Ahead))
	}
	if s.Behind > 0 {
		segments = append(segments, fmt.Sprintf("↓%d", s.Behind))
	}

	return strings.Join(segments, " ")
}

// ignored reports the ignored-entry count, shown gray by callers that style
// output.
func ignored(s *domain.Snapshot) string {
	if s.Ignored > 0 {
		return fmt.Sprintf("!%d", s.Ignored)
	}
	return ""
}

// conflicts summarizes deletions and merge conflicts, shown red by callers
// that style output.
func conflicts(s *domain.Snapshot) string {
	segments := make([]string, 0, 3)

	if s.IndexDeleted > 0 {
		segments = append(segments, fmt.Sprintf("+-%d", s.IndexDeleted))
	}
	if s.WtDeleted > 0 {
		segments = append(segments, fmt.Sprintf("-%d", s.WtDeleted))
	}
	if s.Conflicted > 0 {
		segments = append(segments, fmt.Sprintf("c%d", s.Conflicted))
	}

	return strings.Join(segments, " ")
}
