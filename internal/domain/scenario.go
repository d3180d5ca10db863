package domain

import "errors"

var ErrScenarioNotFound = errors.New("scenario not found")

// Named, stored input preset. Scenarios describe recurring pours
// (site, mix, fleet) and are never used to store computed schedules.
type Scenario struct {
	Name        string
	Description string
	Config      ScheduleConfig
}
