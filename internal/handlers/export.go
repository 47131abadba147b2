package handlers

import (
	"net/http"

	"github.com/solucionessoftware2000/front-reservas/internal/store"
)

// ExportExcel streams the backing workbook as a download. Admin only.
func ExportExcel(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="taxi_data.xlsx"`)
		http.ServeFile(w, r, st.Path())
	}
}
