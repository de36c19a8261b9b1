package models

// PlanType is the tier of a subscription plan.
type PlanType string

const (
	PlanBasic      PlanType = "basic"
	PlanPremium    PlanType = "premium"
	PlanPro        PlanType = "pro"
	PlanEnterprise PlanType = "enterprise"
)

// Unlimited marks a plan limit without a cap.
const Unlimited = -1

// SubscriptionPlan is a purchasable plan.
type SubscriptionPlan struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	PlanType       PlanType `json:"plan_type"`
	Description    string   `json:"description"`
	Price          string   `json:"price"`
	Currency       string   `json:"currency"`
	DurationDays   int      `json:"duration_days"`
	MaxAlgorithms  int      `json:"max_algorithms"`
	MaxMT5Accounts int      `json:"max_mt5_accounts"`
	Features       []string `json:"features"`
	IsActive       bool     `json:"is_active"`
}

// Subscription is a user's active plan.
type Subscription struct {
	Plan     SubscriptionPlan `json:"plan"`
	IsActive bool             `json:"is_active"`
}

// SubscriptionsResponse is returned by GET /subscriptions/.
type SubscriptionsResponse struct {
	Message       string             `json:"message"`
	Subscriptions []Subscription     `json:"subscriptions"`
	Plans         []SubscriptionPlan `json:"plans,omitempty"`
}
