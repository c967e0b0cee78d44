package regions

// Region is a top-level grouping every organization belongs to.
type Region struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
