package domain

type AttendeeCategory string

const (
	AttendeeMain   AttendeeCategory = "main"
	AttendeeSpouse AttendeeCategory = "spouse"
	AttendeeKid    AttendeeCategory = "kid"
	AttendeeAny    AttendeeCategory = "any"
)

// Attendee is one member of an application's roster. Products carries
// the catalog intersected with the attendee's category, in display order.
type Attendee struct {
	ID            int64            `json:"id"`
	ApplicationID int64            `json:"application_id"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Category      AttendeeCategory `json:"category"`
	Products      []PassProduct    `json:"products"`
}

// Product returns the attendee's pass for the given product id.
func (a Attendee) Product(productID int64) (PassProduct, bool) {
	for _, p := range a.Products {
		if p.ID == productID {
			return p, true
		}
	}
	return PassProduct{}, false
}
