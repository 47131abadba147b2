package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/solucionessoftware2000/front-reservas/internal/models"

	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
)

const (
	UsersSheet        = "usuarios"
	ReservationsSheet = "reservas"
)

var (
	// ErrUserNotFound is returned when no row in the usuarios sheet matches.
	ErrUserNotFound = errors.New("user not found")
)

var usersHeader = []interface{}{"username", "password", "role"}

var reservationsHeader = []interface{}{
	"username", "fecha", "horario", "origen", "destino", "pasajero",
	"contacto", "numPasajeros", "valor", "medioPago", "referencia",
}

// Store owns the Excel workbook that backs users and reservations. Every
// read and write goes through the store's mutex: each operation opens the
// file, works on the full workbook and (for writes) saves it back, so two
// unserialized appends would each start from a pre-append snapshot and one
// would silently overwrite the other's row.
type Store struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing workbook (used by the export
// endpoint; no other component reads the file directly).
func (s *Store) Path() string {
	return s.path
}

// Init creates the workbook with headers and the two seed accounts if it
// does not exist yet. An existing workbook is left untouched so reservations
// survive restarts.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		log.Printf("✓ Workbook already exists at %s, keeping existing data", s.path)
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat workbook: %w", err)
	}

	log.Println("🌱 Creating workbook with default users...")

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(UsersSheet); err != nil {
		return fmt.Errorf("failed to create %s sheet: %w", UsersSheet, err)
	}
	if _, err := f.NewSheet(ReservationsSheet); err != nil {
		return fmt.Errorf("failed to create %s sheet: %w", ReservationsSheet, err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.SetSheetRow(UsersSheet, "A1", &usersHeader); err != nil {
		return err
	}
	if err := f.SetSheetRow(ReservationsSheet, "A1", &reservationsHeader); err != nil {
		return err
	}

	adminPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	taxistaPassword, err := bcrypt.GenerateFromPassword([]byte("taxista123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash taxista password: %w", err)
	}

	seed := [][]interface{}{
		{"admin", string(adminPassword), models.RoleAdmin},
		{"taxista", string(taxistaPassword), models.RoleTaxista},
	}
	for i, row := range seed {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(UsersSheet, cell, &row); err != nil {
			return err
		}
	}

	if err := s.save(f); err != nil {
		return err
	}

	log.Println("✓ Workbook created with default users")
	log.Println("  👤 Admin:   admin / admin123")
	log.Println("  👤 Taxista: taxista / taxista123")
	return nil
}

// FindUserByUsername looks up a user with a case-insensitive username match.
func (s *Store) FindUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(UsersSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s sheet: %w", UsersSheet, err)
	}

	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue // header row
		}
		if strings.EqualFold(row[0], username) {
			return &models.User{
				Username: row[0],
				Password: row[1],
				Role:     row[2],
			}, nil
		}
	}

	return nil, ErrUserNotFound
}

// Reservations returns every reservation in append order.
func (s *Store) Reservations() ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(ReservationsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s sheet: %w", ReservationsSheet, err)
	}

	reservations := []models.Reservation{}
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		reservations = append(reservations, rowToReservation(row))
	}

	return reservations, nil
}

// AppendReservation adds one row to the reservas sheet. The whole workbook is
// rewritten to a temp file and renamed over the original, so a failed write
// never leaves a half-written record behind.
func (s *Store) AppendReservation(r models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(ReservationsSheet)
	if err != nil {
		return fmt.Errorf("failed to read %s sheet: %w", ReservationsSheet, err)
	}

	row := []interface{}{
		r.Username, r.Fecha, r.Horario, r.Origen, r.Destino, r.Pasajero,
		r.Contacto, r.NumPasajeros, r.Valor, r.MedioPago, r.Referencia,
	}
	cell := fmt.Sprintf("A%d", len(rows)+1)
	if err := f.SetSheetRow(ReservationsSheet, cell, &row); err != nil {
		return fmt.Errorf("failed to append reservation: %w", err)
	}

	return s.save(f)
}

// save writes the workbook to a temp file next to the target and renames it
// into place. Rename is atomic on the same filesystem.
func (s *Store) save(f *excelize.File) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".taxi_data-*.xlsx")
	if err != nil {
		return fmt.Errorf("failed to create temp workbook: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := f.SaveAs(tmpPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace workbook: %w", err)
	}
	return nil
}

func rowToReservation(row []string) models.Reservation {
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	numPasajeros, _ := strconv.Atoi(get(7))
	valor, _ := strconv.ParseFloat(get(8), 64)

	return models.Reservation{
		Username:     get(0),
		Fecha:        get(1),
		Horario:      get(2),
		Origen:       get(3),
		Destino:      get(4),
		Pasajero:     get(5),
		Contacto:     get(6),
		NumPasajeros: numPasajeros,
		Valor:        valor,
		MedioPago:    get(9),
		Referencia:   get(10),
	}
}
