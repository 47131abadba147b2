package store

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/solucionessoftware2000/front-reservas/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), "taxi_data.xlsx"))
	require.NoError(t, s.Init())
	return s
}

func testReservation(fecha string) models.Reservation {
	return models.Reservation{
		Username:     "admin",
		Fecha:        fecha,
		Horario:      "10:00",
		Origen:       "A",
		Destino:      "B",
		Pasajero:     "Juan",
		Contacto:     "+56911111111",
		NumPasajeros: 2,
		Valor:        5000,
		MedioPago:    "Efectivo",
	}
}

func TestInitSeedsDefaultUsers(t *testing.T) {
	s := newTestStore(t)

	admin, err := s.FindUserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))

	taxista, err := s.FindUserByUsername("taxista")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTaxista, taxista.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(taxista.Password), []byte("taxista123")))
}

func TestFindUserCaseInsensitive(t *testing.T) {
	s := newTestStore(t)

	user, err := s.FindUserByUsername("ADMIN")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	_, err = s.FindUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestInitKeepsExistingData(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AppendReservation(testReservation("2024-06-01")))

	// A restart re-runs Init against the same file. Reservations must survive.
	s2 := New(s.Path())
	require.NoError(t, s2.Init())

	reservations, err := s2.Reservations()
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, "2024-06-01", reservations[0].Fecha)
}

func TestAppendAndListRoundTrip(t *testing.T) {
	s := newTestStore(t)

	r := testReservation("2024-06-01")
	r.Referencia = "REF-1"
	require.NoError(t, s.AppendReservation(r))

	reservations, err := s.Reservations()
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, r, reservations[0])
}

func TestAppendOrderPreserved(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.AppendReservation(testReservation(fmt.Sprintf("2024-06-%02d", i+1))))
	}

	reservations, err := s.Reservations()
	require.NoError(t, err)
	require.Len(t, reservations, 5)
	for i, r := range reservations {
		assert.Equal(t, fmt.Sprintf("2024-06-%02d", i+1), r.Fecha)
	}
}

// Regression test for lost updates: without the store-level lock, concurrent
// appends each read a pre-append snapshot and the last save wins.
func TestConcurrentAppendsLoseNothing(t *testing.T) {
	s := newTestStore(t)

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- s.AppendReservation(testReservation(fmt.Sprintf("2024-07-%02d", i+1)))
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	reservations, err := s.Reservations()
	require.NoError(t, err)
	assert.Len(t, reservations, n)

	seen := make(map[string]bool)
	for _, r := range reservations {
		seen[r.Fecha] = true
	}
	assert.Len(t, seen, n, "every concurrent append must survive")
}
