package regions

type CreateRegionRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}
