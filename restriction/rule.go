package restriction

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Mode is the service level of one (trip, stop) pair.
type Mode int

const (
	// Normal means full service; equivalent to no rule at all.
	Normal Mode = iota
	// PickupOnly blocks alighting at the stop.
	PickupOnly
	// DropoffOnly blocks boarding at the stop.
	DropoffOnly
	// Custom restricts boarding/alighting by origin or destination stop sets.
	Custom
)

func (m Mode) String() string {
	switch m {
	case PickupOnly:
		return "pickup_only"
	case DropoffOnly:
		return "dropoff_only"
	case Custom:
		return "custom"
	default:
		return "normal"
	}
}

// MarshalJSON renders the mode as its string spelling.
func (m Mode) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

// UnmarshalJSON accepts both the string and numeric spellings; anything
// unrecognized becomes Normal.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = ParseMode(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*m = ParseMode(strconv.Itoa(n))
		return nil
	}
	*m = Normal
	return nil
}

// ParseMode maps external mode spellings to a Mode. Unknown or malformed
// values fall back to Normal rather than failing.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pickup_only", "pickuponly", "pickup", "1":
		return PickupOnly
	case "dropoff_only", "dropoffonly", "dropoff", "drop_off_only", "2":
		return DropoffOnly
	case "custom", "3":
		return Custom
	default:
		return Normal
	}
}

// Rule is one boarding/alighting restriction at a (trip, stop) pair.
// The stop sets are meaningful only when Mode is Custom. An empty set under
// Custom means "no restriction recorded in that direction", not "forbidden
// from everywhere".
type Rule struct {
	Mode            Mode     `json:"mode"`
	DropoffOnlyFrom []string `json:"dropoffOnlyFrom,omitempty"`
	PickupOnlyTo    []string `json:"pickupOnlyTo,omitempty"`
}

// IsNormal reports whether the rule is equivalent to no restriction.
func (r Rule) IsNormal() bool { return r.Mode == Normal }

// Normalize returns a canonical copy: non-Custom rules carry no sets,
// Custom sets are deduplicated, cleaned of empties and sorted.
func (r Rule) Normalize() Rule {
	if r.Mode != Custom {
		return Rule{Mode: r.Mode}
	}
	return Rule{
		Mode:            Custom,
		DropoffOnlyFrom: normalizeSet(r.DropoffOnlyFrom),
		PickupOnlyTo:    normalizeSet(r.PickupOnlyTo),
	}
}

// Equal compares two rules, treating the stop sets as unordered.
func (r Rule) Equal(other Rule) bool {
	if r.Mode != other.Mode {
		return false
	}
	if r.Mode != Custom {
		return true
	}
	return setsEqual(r.DropoffOnlyFrom, other.DropoffOnlyFrom) &&
		setsEqual(r.PickupOnlyTo, other.PickupOnlyTo)
}

func normalizeSet(members []string) []string {
	cleaned := lo.Filter(lo.Uniq(members), func(s string, _ int) bool { return s != "" })
	sort.Strings(cleaned)
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}

func setsEqual(a, b []string) bool {
	na, nb := normalizeSet(a), normalizeSet(b)
	if len(na) != len(nb) {
		return false
	}
	for i := range na {
		if na[i] != nb[i] {
			return false
		}
	}
	return true
}
