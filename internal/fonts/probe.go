package fonts

import (
	"fmt"
	"os"
)

// ProbeResult describes the outcome of scanning the target paths for an
// existing valid copy of the font
type ProbeResult struct {
	// Data holds the cached font bytes, or nil when no valid copy exists.
	Data []byte
	// Path is the target the bytes were read from.
	Path string
	// Warnings holds diagnostic lines about targets that were present but
	// unusable. The distributor refreshes those targets later.
	Warnings []string
}

// Probe scans the target paths in order and returns the first copy of the
// font whose digest matches the pinned value. Missing targets are skipped
// silently. Targets that cannot be read or hold unexpected content produce
// warnings and the scan moves on to the next candidate.
func (m *Manager) Probe() *ProbeResult {
	result := &ProbeResult{}

	for _, target := range TargetPaths(m.root) {
		if _, err := os.Stat(target); err != nil {
			continue
		}

		data, err := os.ReadFile(target)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Warning: could not read %s: %v", target, err))
			continue
		}

		if digest := Digest(data); digest != m.expected {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Existing font at %s has unexpected hash (%s); replacing.", target, digest))
			continue
		}

		result.Data = data
		result.Path = target
		return result
	}

	return result
}
