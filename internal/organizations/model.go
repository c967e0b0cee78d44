package organizations

// Organization belongs to a region and may have a parent organization.
// Reports only ever expand one hierarchy level (an organization plus its
// direct children), never the full descendant tree.
type Organization struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	RegionID int64  `json:"region_id" db:"region_id"`
	ParentID *int64 `json:"parent_id,omitempty" db:"parent_id"`
}
