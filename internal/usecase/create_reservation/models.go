package create_reservation

// Request carries the raw booking form fields, untrimmed and
// un-normalized. Normalization happens inside the usecase only after
// every check has passed.
type Request struct {
	Service   string // free-form service name, e.g. "Veterinaria"
	Date      string // "YYYY-MM-DD"
	Time      string // "HH:MM", one of the generated slot start-times
	OwnerName string
	Phone     string
	Email     string
	PetName   string
	Species   string
}
