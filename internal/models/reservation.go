package models

// Reservation is one row of the reservas sheet. Field names follow the
// client-facing JSON contract, which is in Spanish.
type Reservation struct {
	Username     string  `json:"username"` // owner, stamped from the authenticated caller
	Fecha        string  `json:"fecha"`
	Horario      string  `json:"horario"`
	Origen       string  `json:"origen"`
	Destino      string  `json:"destino"`
	Pasajero     string  `json:"pasajero"`
	Contacto     string  `json:"contacto"`
	NumPasajeros int     `json:"numPasajeros"`
	Valor        float64 `json:"valor"`
	MedioPago    string  `json:"medioPago"`
	Referencia   string  `json:"referencia,omitempty"`
}

// Accepted medioPago values.
var PaymentMethods = map[string]bool{
	"Efectivo":      true,
	"Débito":        true,
	"Crédito":       true,
	"Transferencia": true,
}

// Validate returns the names of missing or out-of-range fields. Everything
// except referencia is required; numPasajeros must be at least 1 and valor
// must not be negative.
func (r *Reservation) Validate() []string {
	var invalid []string

	if r.Fecha == "" {
		invalid = append(invalid, "fecha")
	}
	if r.Horario == "" {
		invalid = append(invalid, "horario")
	}
	if r.Origen == "" {
		invalid = append(invalid, "origen")
	}
	if r.Destino == "" {
		invalid = append(invalid, "destino")
	}
	if r.Pasajero == "" {
		invalid = append(invalid, "pasajero")
	}
	if r.Contacto == "" {
		invalid = append(invalid, "contacto")
	}
	if r.NumPasajeros < 1 {
		invalid = append(invalid, "numPasajeros")
	}
	if r.Valor < 0 {
		invalid = append(invalid, "valor")
	}
	if r.MedioPago == "" || !PaymentMethods[r.MedioPago] {
		invalid = append(invalid, "medioPago")
	}

	return invalid
}
