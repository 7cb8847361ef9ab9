package cli

import (
	"context"
	"errors"
	"testing"

	pb "github.com/dmitrijs2005/loanvault/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	api := &fakeAPI{}
	app, out := newTestApp(t, api, "ann@example.com\nAnn\nLee\ny\n", "pw1", "pw1")

	require.NoError(t, app.Signup(context.Background()))
	assert.Equal(t, "ann@example.com", api.signup.GetEmail())
	assert.Equal(t, "pw1", api.signup.GetConfirmPassword())
	assert.Equal(t, "Lee", api.signup.GetLastName())
	assert.True(t, api.signup.GetTermsAccepted())
	assert.Equal(t, "ann@example.com", app.userEmail)
	assert.Contains(t, out.String(), "Your role is admin")
	assert.Contains(t, out.String(), "Account not verified")
}

func TestLoginAndLogout(t *testing.T) {
	api := &fakeAPI{}
	app, out := newTestApp(t, api, "ann@example.com\n", "pw")

	require.NoError(t, app.Login(context.Background()))
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, ModeOnline, app.Mode)
	assert.Contains(t, out.String(), "Login successful")

	require.NoError(t, app.Logout(context.Background()))
	assert.False(t, app.isLoggedIn())
	assert.Empty(t, app.userEmail)
}

func TestLogin_Error(t *testing.T) {
	api := &fakeAPI{err: errors.New("unauthorized")}
	app, _ := newTestApp(t, api, "ann@example.com\n", "bad")

	require.Error(t, app.Login(context.Background()))
	assert.Empty(t, app.userEmail)
}

func TestVerifyUsesSessionEmail(t *testing.T) {
	api := &fakeAPI{}
	app, out := newTestApp(t, api, "123456\n")
	app.userEmail = "ann@example.com"

	require.NoError(t, app.Verify(context.Background()))
	assert.Contains(t, out.String(), "Email verified.")
}

func TestForgotAndReset(t *testing.T) {
	api := &fakeAPI{}
	app, _ := newTestApp(t, api, "ann@example.com\nYW5uQGV4YW1wbGUuY29t\nabc123\n", "newpw")

	require.NoError(t, app.Forgot(context.Background()))
	require.NoError(t, app.Reset(context.Background()))
	assert.Equal(t, []string{"ann@example.com", "YW5uQGV4YW1wbGUuY29t:abc123:newpw"}, api.resets)
}

func TestProtectedCommandsNeedLogin(t *testing.T) {
	app, _ := newTestApp(t, &fakeAPI{}, "")
	ctx := context.Background()

	for name, cmd := range map[string]func(context.Context) error{
		"me": app.Me, "cards": app.Cards, "addcard": app.AddCard, "editcard": app.EditCard,
		"setdefault": app.SetDefault, "deletecard": app.DeleteCard, "profile": app.Profile,
		"editprofile": app.EditProfile, "details": app.Details, "logout": app.Logout,
	} {
		assert.ErrorIs(t, cmd(ctx), errNotLoggedIn, name)
	}
}

func TestAddCard(t *testing.T) {
	api := &fakeAPI{loggedIn: true}
	app, out := newTestApp(t, api, "visa\n4111 1111 1111 1111\n12\n2030\nANN LEE\ny\n", "123")

	require.NoError(t, app.AddCard(context.Background()))
	assert.Equal(t, "4111 1111 1111 1111", api.addCard.GetCardNumber())
	assert.Equal(t, "123", api.addCard.GetCvc())
	assert.Equal(t, int32(12), api.addCard.GetExpiryMonth())
	assert.Equal(t, int32(2030), api.addCard.GetExpiryYear())
	assert.True(t, api.addCard.GetIsDefault())
	assert.Contains(t, out.String(), "************1111")
}

func TestAddCard_BadMonth(t *testing.T) {
	api := &fakeAPI{loggedIn: true}
	app, _ := newTestApp(t, api, "visa\n4111111111111111\ndec\n", "123")

	require.Error(t, app.AddCard(context.Background()))
	assert.Nil(t, api.addCard)
}

func TestEditCard_KeepsEmptyAnswers(t *testing.T) {
	api := &fakeAPI{loggedIn: true}
	app, _ := newTestApp(t, api, "c1\n\n2031\n\n")

	require.NoError(t, app.EditCard(context.Background()))
	require.NotNil(t, api.update)
	assert.Equal(t, "c1", api.update.GetCardId())
	assert.Nil(t, api.update.ExpiryMonth)
	require.NotNil(t, api.update.ExpiryYear)
	assert.Equal(t, int32(2031), api.update.GetExpiryYear())
	assert.Nil(t, api.update.NameOnCard)
}

func TestSetDefaultAndDelete(t *testing.T) {
	api := &fakeAPI{loggedIn: true}
	app, _ := newTestApp(t, api, "c1\nc1\nn\nc2\ny\n")
	ctx := context.Background()

	require.NoError(t, app.SetDefault(ctx))
	require.NoError(t, app.DeleteCard(ctx))
	require.NoError(t, app.DeleteCard(ctx))

	assert.Equal(t, []string{"c1"}, api.defaults)
	assert.Equal(t, []string{"c2"}, api.deleted)
}

func TestCardsListing(t *testing.T) {
	api := &fakeAPI{loggedIn: true, cards: []*pb.Card{
		{Id: "c1", CardType: "visa", MaskedNumber: "************1111", ExpiryMonth: 3, ExpiryYear: 2030, IsDefault: true},
	}}
	app, out := newTestApp(t, api, "")

	require.NoError(t, app.Cards(context.Background()))
	assert.Contains(t, out.String(), "03/2030")
	assert.Contains(t, out.String(), "*")

	api.cards = nil
	out.Reset()
	require.NoError(t, app.Cards(context.Background()))
	assert.Contains(t, out.String(), "No cards yet")
}

func TestEditProfile(t *testing.T) {
	api := &fakeAPI{loggedIn: true}
	input := "+2348012345678\n1990-04-01\n1500.50\nemployed\nAcme\nEngineer\n1 Main St\nLagos\nLA\n100001\nNigeria\n"
	app, out := newTestApp(t, api, input)

	require.NoError(t, app.EditProfile(context.Background()))
	assert.Equal(t, "1500.50", api.profile.GetMonthlyIncome())
	assert.Equal(t, "Acme", api.profile.GetEmployerName())
	assert.Equal(t, "Nigeria", api.profile.GetAddress().GetCountry())
	assert.Contains(t, out.String(), "Profile saved.")
}

func TestDetails(t *testing.T) {
	api := &fakeAPI{loggedIn: true}
	app, out := newTestApp(t, api, "")

	require.NoError(t, app.Details(context.Background()))
	assert.Contains(t, out.String(), "ann@example.com")
	assert.Contains(t, out.String(), "No profile yet")
	assert.Contains(t, out.String(), "No cards yet")
}
