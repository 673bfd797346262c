package revodoc

import "context"

// FetchOutcome describes how a data request was satisfied. It replaces
// exceptions at the client boundary: callers always receive data (possibly
// empty) plus an outcome, never an error.
type FetchOutcome int

// Fetch outcomes.
const (
	// ServedNone means neither the network nor the cache could satisfy
	// the request. Callers should render an explicit empty/error state.
	ServedNone FetchOutcome = iota

	// ServedFresh means the data came from a successful network fetch.
	ServedFresh

	// ServedCached means a fresh cache entry satisfied the request with
	// no network call.
	ServedCached

	// ServedStale means the network fetch failed and the data came from
	// the durable cache tier, regardless of the entry's age.
	ServedStale
)

// String returns a log-friendly name for the outcome.
func (o FetchOutcome) String() string {
	switch o {
	case ServedFresh:
		return "fresh"
	case ServedCached:
		return "cached"
	case ServedStale:
		return "stale"
	default:
		return "none"
	}
}

// Degraded reports whether the outcome indicates the network could not be
// reached (stale fallback or nothing at all).
func (o FetchOutcome) Degraded() bool {
	return o == ServedStale || o == ServedNone
}

// DataClient retrieves documentation data from the upstream API.
// Implementations must not return errors past this boundary; failures
// degrade to cached data or an empty result, reflected in the outcome.
type DataClient interface {
	// Releases returns the most recent releases, newest first as returned
	// by the upstream API.
	Releases(ctx context.Context) ([]*Release, FetchOutcome)

	// TroubleshootingIssues returns open issues carrying all of the given
	// labels. Pull requests are included as returned; use NormalizeIssues
	// to exclude them.
	TroubleshootingIssues(ctx context.Context, labels []string) ([]*Issue, FetchOutcome)
}

// Refresher forces network fetches that bypass the fresh-cache check.
// A refreshed fetch still falls back to stale data when the network fails.
type Refresher interface {
	RefreshReleases(ctx context.Context) ([]*Release, FetchOutcome)
	RefreshTroubleshootingIssues(ctx context.Context, labels []string) ([]*Issue, FetchOutcome)
}
