package fonts

import "context"

// Manager orchestrates the cache probe, the upstream fetch, and the
// distribution of the font to every target path
type Manager struct {
	root     string
	expected string
	fetcher  *Fetcher
}

// NewManager creates a manager rooted at dir. All target paths are resolved
// relative to dir.
func NewManager(dir string) *Manager {
	return &Manager{
		root:     dir,
		expected: FontSHA256,
		fetcher:  NewFetcher(),
	}
}

// EnsureResult describes a completed, or partially completed, ensure run
type EnsureResult struct {
	// Source is where the font bytes came from: the target path of a valid
	// cached copy, or the upstream URL after a download.
	Source string
	// Downloaded is true when the bytes were fetched from upstream.
	Downloaded bool
	// ProbeWarnings holds diagnostic lines from the cache scan.
	ProbeWarnings []string
	// Targets holds one status per processed target, in distribution order.
	Targets []TargetStatus
}

// Ensure guarantees that every target path holds the pinned font. Unless
// opts.Force is set, an existing valid copy is preferred over a download; on
// a cache miss the font is fetched and validated before anything is written.
// Statuses gathered before a fatal error are returned alongside it.
func (m *Manager) Ensure(ctx context.Context, opts Options) (*EnsureResult, error) {
	result := &EnsureResult{}

	// Step 1: Look for a valid cached copy
	var payload []byte
	if !opts.Force {
		probe := m.Probe()
		result.ProbeWarnings = probe.Warnings
		if probe.Data != nil {
			payload = probe.Data
			result.Source = probe.Path
		}
	}

	// Step 2: Fall back to the upstream download
	if payload == nil {
		data, err := m.fetcher.Fetch(ctx)
		if err != nil {
			return result, err
		}
		payload = data
		result.Source = m.fetcher.url
		result.Downloaded = true
	}

	// Step 3: Distribute to every target
	statuses, err := m.Deploy(payload, opts)
	result.Targets = statuses
	return result, err
}
