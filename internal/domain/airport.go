package domain

type Airport struct {
	ID      int64
	Name    string
	City    string
	Country string
}

// DisplayName is how airports appear in flight responses, e.g. "Москва Шереметьево".
func (a Airport) DisplayName() string {
	return a.City + " " + a.Name
}
