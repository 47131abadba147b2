package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/solucionessoftware2000/front-reservas/internal/auth"
	"github.com/solucionessoftware2000/front-reservas/internal/models"
	"github.com/solucionessoftware2000/front-reservas/internal/store"
	"github.com/solucionessoftware2000/front-reservas/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// invalidCredentials is the same message for unknown-user and wrong-password,
// so a login probe cannot enumerate usernames.
const invalidCredentials = "Usuario o contraseña incorrectos"

func Login(st *store.Store, tokens *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Username == "" || req.Password == "" {
			utils.RespondError(w, http.StatusBadRequest, "Usuario y contraseña son requeridos")
			return
		}

		log.Printf("🔐 Login attempt for: %s", req.Username)

		user, err := st.FindUserByUsername(req.Username)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				log.Printf("❌ User not found: %s", req.Username)
				utils.RespondError(w, http.StatusUnauthorized, invalidCredentials)
				return
			}
			log.Printf("❌ Failed to read users: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Error en el servidor")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			log.Printf("❌ Invalid password for: %s", req.Username)
			utils.RespondError(w, http.StatusUnauthorized, invalidCredentials)
			return
		}

		tokenString, err := tokens.Issue(user.Username, user.Role)
		if err != nil {
			log.Printf("❌ Failed to create token: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Error en el servidor")
			return
		}

		log.Printf("✅ Login successful: %s (%s)", user.Username, user.Role)

		utils.RespondJSON(w, http.StatusOK, models.LoginResponse{
			Token:    tokenString,
			Username: user.Username,
			Role:     user.Role,
		})
	}
}
