// Package seed holds the fixed starter set of countries and persons used for demos and tests.
package seed

import (
	"time"

	"contacts/internal/contacts/models"
	id "contacts/pkg/domain"
)

var (
	BangladeshID = id.MustCountryID("6AF61BFD-D839-400C-91DC-F4DC231F420E")
	USAID        = id.MustCountryID("18C77678-FB49-447D-9DC0-42442DADD11A")
	UKID         = id.MustCountryID("FAFF4812-127B-45C2-9B77-E3972F61D434")
)

// seedTime is the fixed creation instant stamped on every seed record.
var seedTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Countries returns fresh copies of the starter countries.
func Countries() []*models.Country {
	return []*models.Country{
		{ID: BangladeshID, Name: "Bangladesh", CreatedAt: seedTime},
		{ID: USAID, Name: "USA", CreatedAt: seedTime},
		{ID: UKID, Name: "UK", CreatedAt: seedTime},
	}
}

type personSeed struct {
	id         string
	name       string
	address    string
	email      string
	country    id.CountryID
	gender     models.Gender
	born       string
	newsletter bool
}

var personSeeds = []personSeed{
	{"CEA7610A-8D2D-4867-B2E6-D863BD41C5B3", "Imon Islam", "Ctg", "imon@email.com", BangladeshID, models.GenderMale, "1990-01-05", true},
	{"13F73876-AE6A-4530-9482-DBE272F66300", "John Doe", "Era Island", "john@email.com", USAID, models.GenderMale, "1995-05-05", true},
	{"26DE0B87-C73A-4422-B458-518E02476E91", "Shem Tov", "Northern America", "shem@email.com", BangladeshID, models.GenderFemale, "2000-07-01", false},
	{"A397C3C5-A7AE-4AFB-AFC3-6F36C3D262AD", "Main Uddin", "Feni", "main@email.com", UKID, models.GenderMale, "1999-03-09", true},
	{"04AF0A9D-08F4-4542-9D32-2829DF05EE51", "Christopher", "Era Island", "ch@email.com", USAID, models.GenderMale, "1988-09-01", true},
	{"5B89D3F5-37B4-452C-8230-4E1DB9A9E810", "Lowand", "Saudi Arabia", "lowand@email.com", BangladeshID, models.GenderFemale, "2003-04-02", false},
	{"AF4A1979-BABF-4696-9199-F19F7D8C4D87", "Chan Soe", "Era Island", "chan@email.com", USAID, models.GenderMale, "1995-05-05", true},
	{"7B85C697-787F-4D29-96BB-45370B0A7361", "Shein Loe", "Northern America", "Shein@email.com", BangladeshID, models.GenderFemale, "2000-07-01", false},
	{"8D71340A-318C-4E5D-A777-9808135A8E59", "Zain Lee", "Zaniaba", "zain@email.com", UKID, models.GenderFemale, "1997-03-09", true},
	{"C381EBE7-BB0A-4D5B-A706-C0C5E2E3C943", "Christopher Losen", "Era Island", "chrr@email.com", USAID, models.GenderFemale, "1989-09-01", true},
}

// Persons returns fresh copies of the starter persons.
func Persons() []*models.Person {
	out := make([]*models.Person, 0, len(personSeeds))
	for _, p := range personSeeds {
		born, err := time.Parse(models.DateLayout, p.born)
		if err != nil {
			panic("seed: bad birth date " + p.born)
		}
		out = append(out, &models.Person{
			ID:                 id.MustPersonID(p.id),
			Name:               p.name,
			Email:              p.email,
			DateOfBirth:        &born,
			Gender:             p.gender,
			CountryID:          p.country,
			Address:            p.address,
			ReceiveNewsletters: p.newsletter,
			CreatedAt:          seedTime,
			UpdatedAt:          seedTime,
		})
	}
	return out
}
