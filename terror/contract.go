// SPDX-License-Identifier: ice License 1.0

package terror

// Public API.

type (
	// Err decorates a sentinel error with the concrete attribute values that
	// violated its contract, so callers can report or branch on them.
	Err struct {
		error
		Data map[string]any `json:"data"`
	}
)
