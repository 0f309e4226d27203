package domain

// LoadState tracks the lifecycle of a roster load.
type LoadState string

const (
	LoadStateIdle    LoadState = "idle"
	LoadStateLoading LoadState = "loading"
	LoadStateLoaded  LoadState = "loaded"
	LoadStateFailed  LoadState = "failed"
)

// UpstreamUser is the subset of the demo API user payload the service consumes.
type UpstreamUser struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Phone     string `json:"phone"`
	Address   struct {
		Address string `json:"address"`
		City    string `json:"city"`
	} `json:"address"`
	Company struct {
		Title string `json:"title"`
	} `json:"company"`
}

// FullName joins first and last name.
func (u UpstreamUser) FullName() string {
	return u.FirstName + " " + u.LastName
}
