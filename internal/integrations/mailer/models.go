package mailer

// Confirmation carries the template parameters for the booking
// confirmation email. Field names match the template variables.
type Confirmation struct {
	Email   string `json:"email"`
	PetName string `json:"mascota"`
	Service string `json:"servicio"`
	Date    string `json:"fecha"` // display form, "DD/MM/YYYY"
	Time    string `json:"hora"`
}
