package revodoc

// Label represents a label attached to an issue.
type Label struct {
	Name string `json:"name"`
}

// PullRequestRef marks an issue record as a pull request. The issues
// endpoint returns pull requests interleaved with issues; the presence of
// this field is the only reliable discriminator.
type PullRequestRef struct {
	URL string `json:"url"`
}

// Issue represents a troubleshooting issue as returned by the GitHub issues
// endpoint.
type Issue struct {
	ID          int64           `json:"id"`
	Number      int             `json:"number"`
	Title       string          `json:"title"`
	Body        string          `json:"body"`
	HTMLURL     string          `json:"html_url"`
	Labels      []Label         `json:"labels"`
	PullRequest *PullRequestRef `json:"pull_request,omitempty"`
}

// IsPullRequest reports whether the record is a pull request rather than a
// plain issue.
func (i *Issue) IsPullRequest() bool {
	return i.PullRequest != nil
}
