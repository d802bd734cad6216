package api

type ListYearsRequest struct{}

type ListYearsResponse struct {
	Years []int `json:"years"`
}

type GetDrawingRequest struct {
	Year int `json:"year" validate:"gte=1000,lte=9999"`
}

type GetDrawingResponse struct {
	Drawing *Drawing `json:"drawing"`
}

// GenerateDraftRequest asks for a fresh draft. Nothing is stored.
type GenerateDraftRequest struct {
	Year int `json:"year" validate:"gte=1000,lte=9999"`
}

type GenerateDraftResponse struct {
	Drawing *Drawing `json:"drawing"`
	// Attempts is the number of randomized passes the engine needed.
	Attempts int `json:"attempts"`
}

// PairingRef names a pairing by participant ids.
type PairingRef struct {
	GiverID    string `json:"giver_id" validate:"required"`
	ReceiverID string `json:"receiver_id" validate:"required"`
}

// FinalizeDrawingRequest stores Pairings as the drawing for Year, replacing
// whatever was stored before.
type FinalizeDrawingRequest struct {
	Year     int           `json:"year" validate:"gte=1000,lte=9999"`
	Pairings []*PairingRef `json:"pairings" validate:"required,min=2,dive,required"`
}

type FinalizeDrawingResponse struct {
	Drawing *Drawing `json:"drawing"`
}

type DeleteDrawingRequest struct {
	Year int `json:"year" validate:"gte=1000,lte=9999"`
}

type DeleteDrawingResponse struct{}

type GetSettingsRequest struct{}

type GetSettingsResponse struct {
	Settings *Settings `json:"settings"`
}
