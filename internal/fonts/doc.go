// Package fonts downloads, validates, and distributes the Cyrillic-capable
// font that the bundled OWML mods render their localized text with.
//
// # Integrity Model
//
// Exactly one upstream build of the font is trusted, identified by a pinned
// SHA-256 digest. Every path a payload can take into a target file passes
// through that digest check:
//   - Downloaded bytes are validated before they are returned to the caller
//   - Cached copies on disk are only reused when their digest matches
//   - Existing targets with a foreign digest are reported and replaced
//
// # Usage
//
//	mgr := fonts.NewManager(repoRoot)
//	result, err := mgr.Ensure(ctx, fonts.Options{})
//	if err != nil {
//	    return err
//	}
//	for _, status := range result.Targets {
//	    fmt.Println(status.Path, status.Action)
//	}
//
// # Architecture
//
// The package is organized into three components:
//   - Manager: orchestration of probe, fetch, and distribution
//   - Fetcher: single-attempt HTTP download with digest validation
//   - Probe/Deploy: filesystem scan and atomic multi-target distribution
package fonts
