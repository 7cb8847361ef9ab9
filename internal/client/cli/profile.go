package cli

import (
	"context"
	"fmt"
	"io"

	pb "github.com/dmitrijs2005/loanvault/internal/proto"
)

func printProfile(w io.Writer, p *pb.Profile) {
	if p == nil {
		fmt.Fprintln(w, "No profile yet, use 'editprofile'.")
		return
	}
	fmt.Fprintf(w, "phone: %s\nborn: %s\nmonthly income: %s\nemployment: %s\n",
		p.GetPhoneNumber(), p.GetDateOfBirth(), p.GetMonthlyIncome(), p.GetEmploymentStatus())
	if p.GetEmployerName() != "" {
		fmt.Fprintf(w, "employer: %s (%s)\n", p.GetEmployerName(), p.GetJobTitle())
	}
	ad := p.GetAddress()
	fmt.Fprintf(w, "address: %s, %s, %s %s, %s\n",
		ad.GetStreetAddress(), ad.GetCity(), ad.GetState(), ad.GetPostalCode(), ad.GetCountry())
}

func (a *App) Profile(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.api.GetProfile(ctx)
	if err != nil {
		return err
	}
	printProfile(a.out, resp.GetProfile())
	return nil
}

// EditProfile creates the profile or, when one exists, updates it. On update
// empty answers keep the stored values.
func (a *App) EditProfile(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	in := &pb.ProfileRequest{Address: &pb.Address{}}
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Phone number", &in.PhoneNumber},
		{"Date of birth (YYYY-MM-DD)", &in.DateOfBirth},
		{"Monthly income", &in.MonthlyIncome},
		{"Employment status (employed, self_employed, unemployed, retired)", &in.EmploymentStatus},
		{"Employer name", &in.EmployerName},
		{"Job title", &in.JobTitle},
		{"Street address", &in.Address.StreetAddress},
		{"City", &in.Address.City},
		{"State", &in.Address.State},
		{"Postal code", &in.Address.PostalCode},
		{"Country", &in.Address.Country},
	}

	for _, p := range prompts {
		v, err := GetSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	view, err := a.api.SaveProfile(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile saved.")
	printProfile(a.out, view)
	return nil
}

// Details prints the aggregated account view.
func (a *App) Details(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	d, err := a.api.AccountDetails(ctx)
	if err != nil {
		return err
	}
	u := d.GetUser()
	fmt.Fprintf(a.out, "%s %s <%s> (%s)\n\n", u.GetFirstName(), u.GetLastName(), u.GetEmail(), u.GetRole())
	printProfile(a.out, d.GetProfile())
	fmt.Fprintln(a.out)
	printCards(a.out, d.GetCards())
	return nil
}
