package bridge

import (
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/models"
)

// Login identifies a terminal account.
type Login struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Server   string `json:"server"`
}

// Expert names the expert advisor to attach and its chart symbol.
type Expert struct {
	Name           string  `json:"expert"`
	Symbol         string  `json:"symbol,omitempty"`
	MaxRiskPercent float64 `json:"max_risk_percent"`
}

// StartedExpert is the bridge reply to a start request.
type StartedExpert struct {
	Handle string `json:"handle"`
	// CurrentRisk is the open exposure as a percentage of the balance.
	CurrentRisk float64 `json:"current_risk"`
}

type startRequest struct {
	Login
	Expert
}

type dealsRequest struct {
	Login
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type dealsResponse struct {
	Deals []models.Deal `json:"deals"`
}

type errorBody struct {
	Error string `json:"error"`
}
