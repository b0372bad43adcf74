package main

import "testing"

func TestSetReviewersCommand(t *testing.T) {
	tests := []struct {
		name     string
		req      SetReviewers
		expected string
	}{
		{
			name:     "two reviewers",
			req:      SetReviewers{Project: "P", Reviewers: []string{"a@x", "b@x"}, ChangeID: "123"},
			expected: "gerrit set-reviewers -p P -a a@x -a b@x 123",
		},
		{
			name:     "single reviewer",
			req:      SetReviewers{Project: "openstack/fuel-library", Reviewers: []string{"a@x.com"}, ChangeID: "235550"},
			expected: "gerrit set-reviewers -p openstack/fuel-library -a a@x.com 235550",
		},
		{
			name:     "addresses passed through verbatim",
			req:      SetReviewers{Project: "P", Reviewers: []string{"not-an-email", "a@x", "a@x"}, ChangeID: "I8473b95934b5732ac55d26311a706c9c2bde9940"},
			expected: "gerrit set-reviewers -p P -a not-an-email -a a@x -a a@x I8473b95934b5732ac55d26311a706c9c2bde9940",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Command(); got != tt.expected {
				t.Errorf("Command() = %q, want %q", got, tt.expected)
			}
		})
	}
}
