package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/solucionessoftware2000/front-reservas/internal/middleware"
	"github.com/solucionessoftware2000/front-reservas/internal/models"
	"github.com/solucionessoftware2000/front-reservas/internal/store"
	"github.com/solucionessoftware2000/front-reservas/pkg/utils"
)

// GetReservations returns the full reservation list for any authenticated
// caller. Filtering, sorting and pagination happen client-side.
func GetReservations(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reservations, err := st.Reservations()
		if err != nil {
			log.Printf("❌ Failed to read reservations: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Error en el servidor")
			return
		}

		utils.RespondJSON(w, http.StatusOK, reservations)
	}
}

// CreateReservation appends a reservation. Admin only; the owner is always
// the authenticated username, never a client-supplied value.
func CreateReservation(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.GetUserFromContext(r)
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var reservation models.Reservation
		if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
			log.Printf("❌ Invalid request body: %v", err)
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if fields := reservation.Validate(); len(fields) > 0 {
			log.Printf("❌ Invalid reservation fields: %v", fields)
			utils.RespondValidationError(w, fields)
			return
		}

		reservation.Username = userClaims.Username

		if err := st.AppendReservation(reservation); err != nil {
			log.Printf("❌ Failed to append reservation: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Error en el servidor")
			return
		}

		log.Printf("✅ Reservation created by %s: %s %s → %s", userClaims.Username,
			reservation.Fecha, reservation.Origen, reservation.Destino)

		utils.RespondJSON(w, http.StatusCreated, reservation)
	}
}
