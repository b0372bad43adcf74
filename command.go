package main

import (
	"strings"
)

// SetReviewers describes one "gerrit set-reviewers" invocation.
type SetReviewers struct {
	Project   string
	Reviewers []string
	ChangeID  string
}

// Command returns the remote command line. Reviewer addresses are passed
// through verbatim, in order.
func (s SetReviewers) Command() string {
	var b strings.Builder
	b.WriteString("gerrit set-reviewers -p ")
	b.WriteString(s.Project)
	for _, reviewer := range s.Reviewers {
		b.WriteString(" -a ")
		b.WriteString(reviewer)
	}
	b.WriteString(" ")
	b.WriteString(s.ChangeID)
	return b.String()
}
