package api

type CreateParticipantRequest struct {
	HouseholdID string `json:"household_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=255"`
	BirthDate   string `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

type CreateParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type GetParticipantRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
}

type GetParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

// ListParticipantsRequest lists every participant, or only the members of
// HouseholdID when it is set.
type ListParticipantsRequest struct {
	HouseholdID string `json:"household_id,omitempty"`
}

type ListParticipantsResponse struct {
	Participants []*Participant `json:"participants"`
}

type UpdateParticipantRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
	HouseholdID   string `json:"household_id" validate:"required"`
	Name          string `json:"name" validate:"required,max=255"`
	BirthDate     string `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

type UpdateParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type DeleteParticipantRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
}

type DeleteParticipantResponse struct{}
