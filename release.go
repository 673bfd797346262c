package revodoc

import "time"

// Release represents a published Revo release as returned by the GitHub
// releases endpoint. Only the fields the site renders are decoded; the rest
// of the payload is ignored.
type Release struct {
	Name        string    `json:"name"`
	TagName     string    `json:"tag_name"`
	Body        string    `json:"body"` // Markdown
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
}

// DisplayName returns the release name, falling back to the tag when the
// release was published without a title.
func (r *Release) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.TagName
}
