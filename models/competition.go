package models

import "github.com/uptrace/bun"

// Competition is a contest results are recorded for.
type Competition struct {
	bun.BaseModel `bun:"table:competitions,alias:c"`

	ID        string `bun:"id,pk" json:"id"`
	Name      string `bun:"name,notnull" json:"name"`
	StartDate string `bun:"start_date,notnull,type:date" json:"startDate"`
	EndDate   string `bun:"end_date,notnull,type:date" json:"endDate"`
}
