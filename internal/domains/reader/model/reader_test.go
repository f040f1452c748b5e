package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewReader_ValidPhone(t *testing.T) {
	r, err := NewReader("Jan", "Kowalski", "123456789", Address{})
	require.NoError(t, err)

	assert.Equal(t, 0, r.ID, "id must stay unassigned until the repository persists the reader")
	assert.Equal(t, "123456789", r.PhoneNum)
	assert.Empty(t, r.BorrowedBooks)
	assert.NotNil(t, r.PastBorrowed)
}

func TestNewReader_InvalidPhone(t *testing.T) {
	cases := []struct {
		name  string
		phone string
	}{
		{"empty", ""},
		{"too short", "12345678"},
		{"too long", "1234567890"},
		{"letter inside", "12345678a"},
		{"spaces", "123 456 789"},
		{"plus prefix", "+48123456"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewReader("Jan", "Kowalski", tc.phone, Address{})
			assert.ErrorIs(t, err, ErrInvalidPhoneNumber)
		})
	}
}

// Any string of exactly 9 digits is a valid phone number; anything else
// is rejected with ErrInvalidPhoneNumber.
func TestNewReader_PhoneProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		phone := rapid.StringMatching(`[0-9]{9}`).Draw(t, "phone")

		_, err := NewReader("Jan", "Kowalski", phone, Address{})
		if err != nil {
			t.Fatalf("valid phone %q rejected: %v", phone, err)
		}
	})

	rapid.Check(t, func(t *rapid.T) {
		phone := rapid.String().Draw(t, "phone")
		if phonePattern.MatchString(phone) {
			t.Skip("generated a valid phone")
		}

		_, err := NewReader("Jan", "Kowalski", phone, Address{})
		if err != ErrInvalidPhoneNumber {
			t.Fatalf("invalid phone %q: got %v, want ErrInvalidPhoneNumber", phone, err)
		}
	})
}

func TestNewReader_RequiredFields(t *testing.T) {
	_, err := NewReader("", "Kowalski", "123456789", Address{})
	assert.Error(t, err)

	_, err = NewReader("Jan", "", "123456789", Address{})
	assert.Error(t, err)
}

func TestReader_BorrowedBookTracking(t *testing.T) {
	r, err := NewReader("Jan", "Kowalski", "123456789", Address{})
	require.NoError(t, err)

	r.AddBorrowed(3)
	r.AddBorrowed(7)
	r.AddBorrowed(3) // duplicate, ignored

	assert.Equal(t, []int{3, 7}, r.BorrowedBooks)
	assert.True(t, r.HasBorrowed(3))
	assert.False(t, r.HasBorrowed(5))

	r.RemoveBorrowed(3)
	assert.Equal(t, []int{7}, r.BorrowedBooks)

	r.RemoveBorrowed(99) // absent, no-op
	assert.Equal(t, []int{7}, r.BorrowedBooks)
}

func TestReaderRow_RoundTrip(t *testing.T) {
	r, err := NewReader("Anna", "Nowak", "987654321", Address{
		City:       "Warszawa",
		Street:     "Prosta",
		Apartment:  "12",
		PostalCode: "00-001",
	})
	require.NoError(t, err)
	r.ID = 4

	row := r.ToRow()
	cells := make([]string, len(row))
	for i, v := range row {
		cells[i] = fmt.Sprint(v)
	}

	got, err := ReaderFromRow(cells)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, r.Name, got.Name)
	assert.Equal(t, r.PhoneNum, got.PhoneNum)
	assert.Equal(t, r.Address, got.Address)
}

func TestReaderFromRow_MissingAddressCells(t *testing.T) {
	got, err := ReaderFromRow([]string{"2", "Jan", "Kowalski", "123456789"})
	require.NoError(t, err)

	assert.True(t, got.Address.IsZero())
	assert.NotNil(t, got.PastReserved, "history logs start empty, never nil")
}

func TestReaderFromRow_BadID(t *testing.T) {
	_, err := ReaderFromRow([]string{"abc", "Jan", "Kowalski", "123456789", "", "", "", ""})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"ID"`)
}

func TestAddress_String(t *testing.T) {
	a := Address{City: "Warszawa", Street: "Prosta", Apartment: "12", PostalCode: "00-001"}
	assert.Equal(t, "Prosta 12, 00-001 Warszawa", a.String())
}
