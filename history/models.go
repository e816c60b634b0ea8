// Package history manages the per-user prediction ledger: append-only
// records of crop recommendations tied to the account that submitted them.
package history

import "time"

// Record is one stored crop recommendation event. The six measurements are
// individually optional (nullable in the store); the predicted crop label is
// required. The timestamp is assigned by the store at insert and never
// changes.
type Record struct {
	ID            int       `json:"id"`
	UserID        int       `json:"user_id"`
	Nitrogen      *float64  `json:"nitrogen"`
	Phosphorus    *float64  `json:"phosphorus"`
	Potassium     *float64  `json:"potassium"`
	Ph            *float64  `json:"ph"`
	Rainfall      *float64  `json:"rainfall"`
	Temperature   *float64  `json:"temperature"`
	PredictedCrop string    `json:"predicted_crop"`
	CreatedAt     time.Time `json:"created_at"`
}
