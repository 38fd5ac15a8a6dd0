// Package installation defines the installation lifecycle status model:
// the closed set of status values, the derived display views (percentage,
// label, badge color, milestone tiers) and the single validation boundary
// that converts untrusted strings into typed statuses.
//
// Display helpers are total and never fail: a status that is not part of
// the canonical set degrades to 0% / "Unknown Status" so that stale rows
// still render. Validation is strict and happens only on the write path.
package installation

import "fmt"

// Status is one of the seven fixed installation lifecycle values.
type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusInstalling Status = "installing"
	StatusTesting    Status = "testing"
	StatusCompleted  Status = "completed"
)

// Default is the status assigned to newly created installations.
const Default = StatusPending

// Ordered is the canonical happy-path progression, used for display
// ordering only. Transitions are not restricted to it: an admin may set
// any status from any other status.
var Ordered = []Status{
	StatusPending,
	StatusApproved,
	StatusScheduled,
	StatusInProgress,
	StatusInstalling,
	StatusTesting,
	StatusCompleted,
}

type statusView struct {
	percent int
	label   string
	color   string
}

// statusViews is the single canonical status table. Every display helper
// derives from it; do not grow a second copy of this mapping elsewhere.
var statusViews = map[Status]statusView{
	StatusPending:    {10, "Application Pending", "bg-green-300"},
	StatusApproved:   {25, "Approved", "bg-green-400"},
	StatusScheduled:  {40, "Installation Scheduled", "bg-green-500"},
	StatusInProgress: {60, "In Progress", "bg-green-600"},
	StatusInstalling: {75, "Installing Equipment", "bg-green-700"},
	StatusTesting:    {90, "Testing & Commissioning", "bg-green-800"},
	StatusCompleted:  {100, "Installation Complete", "bg-green-600"},
}

// Thresholds are the percentage cut-offs for the four milestone markers
// shown by the step-indicator UI. A marker lights up once the status
// percentage reaches its threshold.
var Thresholds = [4]int{10, 40, 75, 100}

// Milestones are the marker captions, index-aligned with Thresholds.
var Milestones = [4]string{"Pending", "Installation", "Testing", "Complete"}

// Percentage returns the completion percentage for a status.
// Unrecognized statuses degrade to 0 rather than failing.
func Percentage(s Status) int {
	if v, found := statusViews[s]; found {
		return v.percent
	}
	return 0
}

// Label returns the human-readable phrase for a status. Total: every
// input yields a non-empty label.
func Label(s Status) string {
	if v, found := statusViews[s]; found {
		return v.label
	}
	return "Unknown Status"
}

// Color returns the badge/progress color class for a status.
func Color(s Status) string {
	if v, found := statusViews[s]; found {
		return v.color
	}
	return "bg-green-300"
}

// StepLit reports whether milestone marker step (0..3) is lit for a status.
func StepLit(s Status, step int) bool {
	if step < 0 || step >= len(Thresholds) {
		return false
	}
	return Percentage(s) >= Thresholds[step]
}

// LitSteps returns how many of the four milestone markers are lit.
func LitSteps(s Status) int {
	n := 0
	for i := range Thresholds {
		if StepLit(s, i) {
			n++
		}
	}
	return n
}

// Tier returns the ordinal of the highest lit milestone marker, 0..3.
// A status lighting no marker at all (unrecognized, 0%) maps to tier 0.
func Tier(s Status) int {
	if n := LitSteps(s); n > 0 {
		return n - 1
	}
	return 0
}

// Valid reports whether s is a member of the canonical set.
func Valid(s Status) bool {
	_, found := statusViews[s]
	return found
}

// InvalidStatusError reports a candidate status outside the canonical set.
// It is the only error this package produces, and only Parse raises it.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid installation status %q", e.Value)
}

// Parse converts an untrusted string into a typed Status. It is the single
// boundary between raw input and the typed enumeration: admin create/update
// paths must go through it before anything reaches storage. Matching is
// exact and case-sensitive.
func Parse(raw string) (Status, error) {
	s := Status(raw)
	if !Valid(s) {
		return "", &InvalidStatusError{Value: raw}
	}
	return s, nil
}

// Progress is the derived display view consumed by the presentation layer.
// Clients render from this struct and never recompute the mapping.
type Progress struct {
	Percent int     `json:"percent"`
	Label   string  `json:"label"`
	Color   string  `json:"color"`
	Tier    int     `json:"tier"`
	Steps   [4]bool `json:"steps"`
}

// ProgressFor assembles the full display view for a status.
func ProgressFor(s Status) Progress {
	p := Progress{
		Percent: Percentage(s),
		Label:   Label(s),
		Color:   Color(s),
		Tier:    Tier(s),
	}
	for i := range Thresholds {
		p.Steps[i] = StepLit(s, i)
	}
	return p
}
