package organizations

type CreateOrganizationRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	RegionID int64  `json:"region_id" validate:"required,gt=0"`
	ParentID *int64 `json:"parent_id,omitempty" validate:"omitempty,gt=0"`
}
