package domain

// Tier is the classification label attached to a unit for one run.
type Tier string

const (
	TierNone       Tier = ""
	TierEligible   Tier = "ELIGIBLE"
	TierIneligible Tier = "INELIGIBLE"
	TierLow        Tier = "LOW"
	TierMedium     Tier = "MEDIUM"
	TierHigh       Tier = "HIGH"
)
