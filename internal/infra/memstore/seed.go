package memstore

import (
	"log/slog"

	"istiqdam/internal/domain/entity"
	"istiqdam/internal/domain/service"

	"github.com/pkg/errors"
)

// seedOffice is the static office fixture plus its login credentials.
type seedOffice struct {
	name        string
	rating      float64
	reviewCount int
	email       string
	password    string
	logoURL     string
}

// seedCustomer is a static customer account fixture.
type seedCustomer struct {
	email    string
	password string
}

// The built-in demo directory. Office accounts are derived from the offices
// themselves, matching how the credential table is generated in the product.
var seedOffices = []seedOffice{
	{
		name:        "Al Noor Recruitment Office",
		rating:      4.6,
		reviewCount: 128,
		email:       "alnoor@example.com",
		password:    "office123",
		logoURL:     "https://via.placeholder.com/120x120?text=Al+Noor",
	},
	{
		name:        "Golden Hands Manpower",
		rating:      4.2,
		reviewCount: 87,
		email:       "goldenhands@example.com",
		password:    "office123",
		logoURL:     "https://via.placeholder.com/120x120?text=Golden+Hands",
	},
	{
		name:        "Amanah Domestic Services",
		rating:      3.9,
		reviewCount: 54,
		email:       "amanah@example.com",
		password:    "office123",
		logoURL:     "https://via.placeholder.com/120x120?text=Amanah",
	},
}

var seedCustomers = []seedCustomer{
	{email: "customer1@example.com", password: "customer123"},
	{email: "customer2@example.com", password: "customer123"},
}

// Seed fills the store with the static office directory and credential table.
// Passwords are stored only as bcrypt hashes; login later verifies against
// them with exact-match semantics.
func Seed(store *Store, ids service.IDGenerator, hasher service.PasswordHasher, logger *slog.Logger) error {
	for _, fixture := range seedOffices {
		office := &entity.Office{
			ID:          ids.NewID(),
			Name:        fixture.name,
			Rating:      fixture.rating,
			ReviewCount: fixture.reviewCount,
			LoginEmail:  fixture.email,
			LogoURL:     fixture.logoURL,
		}
		store.putOffice(office)

		hash, err := hasher.Hash(fixture.password)
		if err != nil {
			return errors.Wrapf(err, "failed to hash seed password for office %s", fixture.name)
		}

		store.putAccount(&entity.Account{
			ID:           ids.NewID(),
			Email:        fixture.email,
			PasswordHash: hash,
			Role:         entity.RoleOffice,
			OfficeID:     office.ID,
		})
	}

	for _, fixture := range seedCustomers {
		hash, err := hasher.Hash(fixture.password)
		if err != nil {
			return errors.Wrapf(err, "failed to hash seed password for customer %s", fixture.email)
		}

		store.putAccount(&entity.Account{
			ID:           ids.NewID(),
			Email:        fixture.email,
			PasswordHash: hash,
			Role:         entity.RoleCustomer,
		})
	}

	logger.Info("Seeded in-memory store",
		slog.Int("offices", len(seedOffices)),
		slog.Int("customers", len(seedCustomers)))

	return nil
}
