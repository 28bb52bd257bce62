package events

import "time"

// DrawCompletedEvent announces one finished ticket batch. Numbers are
// included so downstream listeners (printers, dashboards) need no callback;
// this service itself keeps no history.
type DrawCompletedEvent struct {
	DrawID     string    `json:"draw_id"`
	Game       string    `json:"game"`
	Mode       string    `json:"mode"`
	Tickets    [][]int   `json:"tickets"`
	FiredRules []string  `json:"fired_rules,omitempty"`
	At         time.Time `json:"at"`
}
