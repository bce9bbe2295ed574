// Package field provides a Bubble Tea prompt input component backed by the
// buffer package.
//
// The package is responsible for key event routing, focus, placeholder and
// mask rendering, collapsing large pastes into placeholder tokens, cursor
// display, and host callbacks for value changes and submission.
package field
