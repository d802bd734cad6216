package api

type CreateHouseholdRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type CreateHouseholdResponse struct {
	Household *Household `json:"household"`
}

type GetHouseholdRequest struct {
	HouseholdID string `json:"household_id" validate:"required"`
}

type GetHouseholdResponse struct {
	Household *Household `json:"household"`
}

type ListHouseholdsRequest struct{}

type ListHouseholdsResponse struct {
	Households []*Household `json:"households"`
}

type UpdateHouseholdRequest struct {
	HouseholdID string `json:"household_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=255"`
}

type UpdateHouseholdResponse struct {
	Household *Household `json:"household"`
}

type DeleteHouseholdRequest struct {
	HouseholdID string `json:"household_id" validate:"required"`
}

type DeleteHouseholdResponse struct{}
