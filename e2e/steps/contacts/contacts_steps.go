package contacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext defines the methods needed from the main test context.
type TestContext interface {
	POST(path string, body any) error
	PUT(path string, body any) error
	POSTRaw(path, contentType, body string) error
	GET(path string) error
	DELETE(path string) error
	GetResponseField(field string) (any, error)
	GetLastResponseStatus() int
	GetLastResponseBody() []byte
	Save(alias, value string)
	Saved(alias string) (string, error)
}

func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &contactsSteps{tc: tc}

	ctx.Step(`^I add a country named "([^"]*)"$`, steps.addCountry)
	ctx.Step(`^I add a country named "([^"]*)" as "([^"]*)"$`, steps.addCountryAs)
	ctx.Step(`^I import countries from CSV:$`, steps.importCountries)
	ctx.Step(`^I list countries$`, steps.listCountries)
	ctx.Step(`^the listed country names should be "([^"]*)"$`, steps.countryNamesShouldBe)

	ctx.Step(`^I add a person named "([^"]*)" with email "([^"]*)" as "([^"]*)"$`, steps.addPerson)
	ctx.Step(`^I add a person named "([^"]*)" with email "([^"]*)" in country "([^"]*)" as "([^"]*)"$`, steps.addPersonInCountry)
	ctx.Step(`^I add a person named "([^"]*)" with email "([^"]*)" born "([^"]*)" as "([^"]*)"$`, steps.addPersonBorn)
	ctx.Step(`^I update person "([^"]*)" with name "([^"]*)" and email "([^"]*)"$`, steps.updatePerson)
	ctx.Step(`^I get person "([^"]*)"$`, steps.getPerson)
	ctx.Step(`^I delete person "([^"]*)"$`, steps.deletePerson)
	ctx.Step(`^I list persons with query "([^"]*)"$`, steps.listPersons)
	ctx.Step(`^the listed person names should be "([^"]*)"$`, steps.personNamesShouldBe)
}

type contactsSteps struct {
	tc TestContext
}

func (s *contactsSteps) addCountry(_ context.Context, name string) error {
	return s.tc.POST("/countries", map[string]string{"name": name})
}

func (s *contactsSteps) addCountryAs(ctx context.Context, name, alias string) error {
	if err := s.addCountry(ctx, name); err != nil {
		return err
	}
	return s.saveID(alias)
}

func (s *contactsSteps) importCountries(_ context.Context, doc *godog.DocString) error {
	return s.tc.POSTRaw("/countries/import", "text/csv", doc.Content+"\n")
}

func (s *contactsSteps) listCountries(context.Context) error {
	return s.tc.GET("/countries")
}

func (s *contactsSteps) countryNamesShouldBe(_ context.Context, expected string) error {
	var res struct {
		Countries []struct {
			Name string `json:"name"`
		} `json:"countries"`
	}
	if err := json.Unmarshal(s.tc.GetLastResponseBody(), &res); err != nil {
		return fmt.Errorf("failed to parse countries: %w", err)
	}
	names := make([]string, 0, len(res.Countries))
	for _, c := range res.Countries {
		names = append(names, c.Name)
	}
	return compareNames(names, expected)
}

func (s *contactsSteps) addPerson(_ context.Context, name, email, alias string) error {
	return s.createPerson(map[string]any{"name": name, "email": email}, alias)
}

func (s *contactsSteps) addPersonInCountry(_ context.Context, name, email, countryAlias, alias string) error {
	countryID, err := s.tc.Saved(countryAlias)
	if err != nil {
		return err
	}
	return s.createPerson(map[string]any{"name": name, "email": email, "country_id": countryID}, alias)
}

func (s *contactsSteps) addPersonBorn(_ context.Context, name, email, dob, alias string) error {
	return s.createPerson(map[string]any{"name": name, "email": email, "date_of_birth": dob}, alias)
}

func (s *contactsSteps) createPerson(body map[string]any, alias string) error {
	if err := s.tc.POST("/persons", body); err != nil {
		return err
	}
	return s.saveID(alias)
}

func (s *contactsSteps) updatePerson(_ context.Context, alias, name, email string) error {
	personID, err := s.tc.Saved(alias)
	if err != nil {
		return err
	}
	return s.tc.PUT("/persons/"+personID, map[string]any{"name": name, "email": email})
}

func (s *contactsSteps) getPerson(_ context.Context, alias string) error {
	personID, err := s.tc.Saved(alias)
	if err != nil {
		return err
	}
	return s.tc.GET("/persons/" + personID)
}

func (s *contactsSteps) deletePerson(_ context.Context, alias string) error {
	personID, err := s.tc.Saved(alias)
	if err != nil {
		return err
	}
	return s.tc.DELETE("/persons/" + personID)
}

func (s *contactsSteps) listPersons(_ context.Context, rawQuery string) error {
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return fmt.Errorf("bad query %q: %w", rawQuery, err)
	}
	return s.tc.GET("/persons?" + q.Encode())
}

func (s *contactsSteps) personNamesShouldBe(_ context.Context, expected string) error {
	var res struct {
		Persons []struct {
			Name string `json:"name"`
		} `json:"persons"`
	}
	if err := json.Unmarshal(s.tc.GetLastResponseBody(), &res); err != nil {
		return fmt.Errorf("failed to parse persons: %w", err)
	}
	names := make([]string, 0, len(res.Persons))
	for _, p := range res.Persons {
		names = append(names, p.Name)
	}
	return compareNames(names, expected)
}

// saveID records the "id" of the last response under alias; it is a no-op on failure
// responses so later status assertions report the real problem.
func (s *contactsSteps) saveID(alias string) error {
	if s.tc.GetLastResponseStatus() >= 300 {
		return nil
	}
	v, err := s.tc.GetResponseField("id")
	if err != nil {
		return err
	}
	s.tc.Save(alias, fmt.Sprint(v))
	return nil
}

func compareNames(actual []string, expected string) error {
	want := []string{}
	if strings.TrimSpace(expected) != "" {
		for _, n := range strings.Split(expected, ",") {
			want = append(want, strings.TrimSpace(n))
		}
	}
	if strings.Join(actual, "|") != strings.Join(want, "|") {
		return fmt.Errorf("expected names %v but got %v", want, actual)
	}
	return nil
}
