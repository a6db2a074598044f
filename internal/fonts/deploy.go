package fonts

import (
	"fmt"
	"os"
	"path/filepath"
)

// Options configures a distribution run
type Options struct {
	// Force rewrites every target even when its checksum already matches
	Force bool
	// DryRun reports intended writes without modifying any target file
	DryRun bool
}

// Action indicates what the distributor did for one target
type Action int

const (
	// ActionNone indicates the target was not processed (a fatal error stopped the run)
	ActionNone Action = iota
	// ActionUpToDate indicates the target already held the pinned content
	ActionUpToDate
	// ActionWouldWrite indicates a write was suppressed by dry-run mode
	ActionWouldWrite
	// ActionWrote indicates the target was atomically replaced
	ActionWrote
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionUpToDate:
		return "up to date"
	case ActionWouldWrite:
		return "would write"
	case ActionWrote:
		return "wrote"
	case ActionNone:
		return "none"
	default:
		return "unknown"
	}
}

// TargetStatus reports the outcome of distributing the font to one target
type TargetStatus struct {
	// Path is the target file the status refers to.
	Path string
	// Action is what happened, or would have happened, at the target.
	Action Action
	// Refreshing is set when an existing copy had the wrong checksum and is
	// being replaced.
	Refreshing bool
	// ReadWarning holds a diagnostic line when an existing copy could not be
	// read. The failure is not fatal; the target is rewritten regardless.
	ReadWarning string
}

// Deploy distributes data to every target path in order. Parent directories
// are created unconditionally, including in dry-run mode. Existing copies
// whose checksum already matches are left untouched unless opts.Force is
// set. Every write goes to a temporary sibling first and is renamed into
// place, so an interrupted run never leaves a target truncated.
//
// Deploy stops at the first fatal error and returns the statuses gathered up
// to that point together with the error.
func (m *Manager) Deploy(data []byte, opts Options) ([]TargetStatus, error) {
	targets := TargetPaths(m.root)
	statuses := make([]TargetStatus, 0, len(targets))

	for _, target := range targets {
		status := TargetStatus{Path: target}

		// Create parent directory
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			statuses = append(statuses, status)
			return statuses, &WriteError{Path: target, Err: fmt.Errorf("create parent directory: %w", err)}
		}

		// Examine the existing copy unless a rewrite is forced
		if _, err := os.Stat(target); err == nil && !opts.Force {
			existing, err := DigestFile(target)
			switch {
			case err != nil:
				status.ReadWarning = fmt.Sprintf("Warning: could not read %s: %v", target, err)
			case existing == m.expected:
				status.Action = ActionUpToDate
				statuses = append(statuses, status)
				continue
			default:
				status.Refreshing = true
			}
		}

		if opts.DryRun {
			status.Action = ActionWouldWrite
			statuses = append(statuses, status)
			continue
		}

		if err := replaceFile(target, data); err != nil {
			statuses = append(statuses, status)
			return statuses, err
		}

		status.Action = ActionWrote
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// replaceFile writes data to a temporary sibling of target and renames it
// into place
func replaceFile(target string, data []byte) error {
	tmpPath := target + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return &WriteError{Path: target, Err: fmt.Errorf("write temp file: %w", err)}
	}

	// Atomic rename
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Path: target, Err: fmt.Errorf("rename temp file: %w", err)}
	}

	return nil
}
