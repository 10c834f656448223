package are

// Registry names of the Comparison factories
const (
	EqualToName             = "equal_to"
	NotEqualToName          = "not_equal_to"
	AboveName               = "above"
	BelowName               = "below"
	AboveOrEqualToName      = "above_or_equal_to"
	BelowOrEqualToName      = "below_or_equal_to"
	NotAboveName            = "not_above"
	NotBelowName            = "not_below"
	NotBelowOrEqualToName   = "not_below_or_equal_to"
	NotAboveOrEqualToName   = "not_above_or_equal_to"
	StrictlyBetweenName     = "strictly_between"
	BetweenName             = "between"
	BetweenOrEqualToName    = "between_or_equal_to"
	NotStrictlyBetweenName  = "not_strictly_between"
	NotBetweenName          = "not_between"
	NotBetweenOrEqualToName = "not_between_or_equal_to"
)

// Registry names of the Containment factories
const (
	ContainingName     = "containing"
	ContainedInName    = "contained_in"
	MatchingName       = "matching"
	NotContainingName  = "not_containing"
	NotContainedInName = "not_contained_in"
	NotMatchingName    = "not_matching"
)
