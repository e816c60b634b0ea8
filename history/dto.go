package history

// NewRecordRequest is the payload for saving a prediction. Pointer fields
// distinguish absent measurements from zero values; PredictedCrop is a
// pointer so a missing label can be told apart from an empty one and
// rejected either way.
type NewRecordRequest struct {
	Nitrogen      *float64 `json:"nitrogen" example:"90"`
	Phosphorus    *float64 `json:"phosphorus" example:"42"`
	Potassium     *float64 `json:"potassium" example:"43"`
	Ph            *float64 `json:"ph" example:"6.5"`
	Rainfall      *float64 `json:"rainfall" example:"202.9"`
	Temperature   *float64 `json:"temperature" example:"20.8"`
	PredictedCrop *string  `json:"predicted_crop" example:"rice"`
}
