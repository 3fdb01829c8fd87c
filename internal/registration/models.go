package registration

import "time"

// StatusInitialReview is the label assigned to every new application. Office
// staff move records out of this status through their own tooling, never
// through this service.
const StatusInitialReview = "በሂደት ላይ"

// Record is one citizen's land-registration application as stored in the
// registrations table. Records are immutable once inserted.
type Record struct {
	ID            int64     `json:"id"`
	FullName      string    `json:"fullName"`
	PhoneNumber   string    `json:"phoneNumber"`
	SubcityKebele string    `json:"subcityKebele,omitempty"`
	HouseNumber   string    `json:"houseNumber,omitempty"`
	AreaSqm       *float64  `json:"areaSqm,omitempty"`
	DocumentPath  string    `json:"documentPath,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
