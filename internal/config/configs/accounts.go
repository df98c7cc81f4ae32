package configs

// Accounts lists the ad accounts a run evaluates. Campaigns of accounts in
// AdSetBudget are always treated as ad-set-budgeted.
type Accounts struct {
	IDs         []string `env:"IDS" envSeparator:","`
	AdSetBudget []string `env:"ADSET_BUDGET" envSeparator:","`
}
