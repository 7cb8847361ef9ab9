package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/loanvault/internal/common"
	"github.com/dmitrijs2005/loanvault/internal/dbx"
	"github.com/dmitrijs2005/loanvault/internal/logging"
	"github.com/dmitrijs2005/loanvault/internal/server/config"
	"github.com/dmitrijs2005/loanvault/internal/server/events"
	"github.com/dmitrijs2005/loanvault/internal/server/models"
	"github.com/dmitrijs2005/loanvault/internal/server/repositories/cards"
	"github.com/dmitrijs2005/loanvault/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/loanvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/loanvault/internal/server/repositories/tokenpairs"
	"github.com/dmitrijs2005/loanvault/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

// -------- users --------

type fakeUsersRepo struct {
	users.Repository
	byID      map[string]*models.User
	seq       int
	err       error
	lockErr   error
	locked    []string
	tableLock int
	calls     *[]string
	// beforeMark runs just before MarkVerified checks the row, standing in
	// for a concurrent writer.
	beforeMark func(u *models.User)
}

func newFakeUsers(us ...*models.User) *fakeUsersRepo {
	f := &fakeUsersRepo{byID: map[string]*models.User{}}
	for _, u := range us {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	f.seq++
	u.ID = fmt.Sprintf("user-%d", f.seq)
	u.CreatedAt = testNow
	cp := *u
	f.byID[u.ID] = &cp
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) Count(context.Context) (int64, error) {
	return int64(len(f.byID)), f.err
}

func (f *fakeUsersRepo) LockTable(context.Context) error {
	f.tableLock++
	return f.lockErr
}

func (f *fakeUsersRepo) LockForUpdate(_ context.Context, id string) error {
	if f.lockErr != nil {
		return f.lockErr
	}
	f.locked = append(f.locked, id)
	record(f.calls, "lock "+id)
	return nil
}

func (f *fakeUsersRepo) SetVerificationCode(_ context.Context, id string, code string) error {
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.VerificationCode = &code
	return nil
}

func (f *fakeUsersRepo) MarkVerified(_ context.Context, id string, code string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return false, nil
	}
	if f.beforeMark != nil {
		f.beforeMark(u)
	}
	if u.IsVerified || u.VerificationCode == nil || *u.VerificationCode != code {
		return false, nil
	}
	u.IsVerified = true
	u.VerificationCode = nil
	return true, nil
}

func (f *fakeUsersRepo) SetResetToken(_ context.Context, id string, token string, expiresAt time.Time) error {
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordResetToken = &token
	u.PasswordResetExpiresAt = &expiresAt
	return nil
}

func (f *fakeUsersRepo) UpdatePassword(_ context.Context, id string, hash string) error {
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash = hash
	u.PasswordResetToken = nil
	u.PasswordResetExpiresAt = nil
	return nil
}

// -------- token pairs --------

type fakePairsRepo struct {
	tokenpairs.Repository
	pairs []*models.TokenPair
	now   func() time.Time
	err   error
	// beforeRotate runs just before Rotate checks the pair, standing in for
	// a concurrent refresh.
	beforeRotate func(p *models.TokenPair)
}

func newFakePairs() *fakePairsRepo {
	return &fakePairsRepo{now: func() time.Time { return testNow }}
}

func (f *fakePairsRepo) Issue(_ context.Context, userID, access, refresh string, lifetime time.Duration) (*models.TokenPair, error) {
	if f.err != nil {
		return nil, f.err
	}
	p := &models.TokenPair{
		ID:           fmt.Sprintf("pair-%d", len(f.pairs)+1),
		UserID:       userID,
		AccessToken:  access,
		RefreshToken: refresh,
		CreatedAt:    f.now(),
		ExpiresAt:    f.now().Add(lifetime),
	}
	f.pairs = append(f.pairs, p)
	return p, nil
}

func (f *fakePairsRepo) FindValid(_ context.Context, access string) (*models.TokenPair, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.pairs {
		if p.AccessToken == access && p.IsValid(f.now()) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakePairsRepo) Rotate(_ context.Context, pairID, oldAccess, newAccess string, lifetime time.Duration) error {
	for _, p := range f.pairs {
		if p.ID != pairID {
			continue
		}
		if f.beforeRotate != nil {
			f.beforeRotate(p)
		}
		if p.AccessToken != oldAccess || !p.IsValid(f.now()) {
			return common.ErrInvalidToken
		}
		p.AccessToken = newAccess
		p.ExpiresAt = f.now().Add(lifetime)
		return nil
	}
	return common.ErrInvalidToken
}

func (f *fakePairsRepo) RevokeAll(_ context.Context, userID string) error {
	if f.err != nil {
		return f.err
	}
	kept := f.pairs[:0]
	for _, p := range f.pairs {
		if p.UserID != userID {
			kept = append(kept, p)
		}
	}
	f.pairs = kept
	return nil
}

func (f *fakePairsRepo) forUser(userID string) []*models.TokenPair {
	var out []*models.TokenPair
	for _, p := range f.pairs {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

// -------- cards --------

type fakeCardsRepo struct {
	cards.Repository
	byID  []*models.CreditCard
	err   error
	calls *[]string
}

// record appends op to a call log shared by the fake repositories, so tests
// can assert the order of locks and writes.
func record(calls *[]string, op string) {
	if calls != nil {
		*calls = append(*calls, op)
	}
}

func (f *fakeCardsRepo) Create(_ context.Context, c *models.CreditCard) (*models.CreditCard, error) {
	if f.err != nil {
		return nil, f.err
	}
	c.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", len(f.byID)+1)
	c.CreatedAt = testNow.Add(time.Duration(len(f.byID)) * time.Minute)
	cp := *c
	f.byID = append(f.byID, &cp)
	return c, nil
}

func (f *fakeCardsRepo) ListByUser(_ context.Context, userID string) ([]models.CreditCard, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.CreditCard
	for _, c := range f.byID {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsDefault != out[j].IsDefault {
			return out[i].IsDefault
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeCardsRepo) GetOwned(_ context.Context, cardID, userID string) (*models.CreditCard, error) {
	for _, c := range f.byID {
		if c.ID == cardID && c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeCardsRepo) ClearDefault(_ context.Context, userID string) error {
	record(f.calls, "clear "+userID)
	for _, c := range f.byID {
		if c.UserID == userID {
			c.IsDefault = false
		}
	}
	return nil
}

func (f *fakeCardsRepo) SetDefault(_ context.Context, cardID, userID string) error {
	record(f.calls, "set "+cardID)
	for _, c := range f.byID {
		if c.ID == cardID && c.UserID == userID {
			c.IsDefault = true
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeCardsRepo) Update(_ context.Context, card *models.CreditCard) (*models.CreditCard, error) {
	if f.err != nil {
		return nil, f.err
	}
	record(f.calls, "update "+card.ID)
	for i, c := range f.byID {
		if c.ID == card.ID && c.UserID == card.UserID {
			cp := *card
			f.byID[i] = &cp
			return card, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeCardsRepo) Delete(_ context.Context, cardID, userID string) error {
	for i, c := range f.byID {
		if c.ID == cardID && c.UserID == userID {
			f.byID = append(f.byID[:i], f.byID[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeCardsRepo) defaults(userID string) int {
	n := 0
	for _, c := range f.byID {
		if c.UserID == userID && c.IsDefault {
			n++
		}
	}
	return n
}

// -------- profiles --------

type fakeProfilesRepo struct {
	profiles.Repository
	byUser map[string]*models.Profile
	err    error
}

func newFakeProfiles() *fakeProfilesRepo {
	return &fakeProfilesRepo{byUser: map[string]*models.Profile{}}
}

func (f *fakeProfilesRepo) Exists(_ context.Context, userID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.byUser[userID]
	return ok, nil
}

func (f *fakeProfilesRepo) Get(_ context.Context, userID string) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.byUser[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfilesRepo) Create(_ context.Context, p *models.Profile) (*models.Profile, error) {
	if _, ok := f.byUser[p.UserID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	p.ID = "profile-" + p.UserID
	p.Address.ID = "address-" + p.UserID
	p.CreatedAt = testNow
	p.UpdatedAt = testNow
	cp := *p
	f.byUser[p.UserID] = &cp
	return p, nil
}

func (f *fakeProfilesRepo) Update(_ context.Context, p *models.Profile) (*models.Profile, error) {
	stored, ok := f.byUser[p.UserID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	p.ID = stored.ID
	p.Address.ID = stored.Address.ID
	p.UpdatedAt = testNow.Add(time.Hour)
	cp := *p
	f.byUser[p.UserID] = &cp
	return p, nil
}

// -------- manager & collaborators --------

type fakeRepoManager struct {
	repomanager.RepositoryManager
	u *fakeUsersRepo
	t *fakePairsRepo
	c *fakeCardsRepo
	p *fakeProfilesRepo

	calls []string
}

func newFakeManager() *fakeRepoManager {
	m := &fakeRepoManager{
		u: newFakeUsers(),
		t: newFakePairs(),
		c: &fakeCardsRepo{},
		p: newFakeProfiles(),
	}
	m.u.calls = &m.calls
	m.c.calls = &m.calls
	return m
}

func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository           { return m.u }
func (m *fakeRepoManager) TokenPairs(dbx.DBTX) tokenpairs.Repository { return m.t }
func (m *fakeRepoManager) Cards(dbx.DBTX) cards.Repository           { return m.c }
func (m *fakeRepoManager) Profiles(dbx.DBTX) profiles.Repository     { return m.p }

type sentMail struct {
	to, firstName, body string
}

type fakeNotifier struct {
	codes  []sentMail
	resets []sentMail
	err    error
}

func (n *fakeNotifier) SendVerificationCode(_ context.Context, to, firstName, code string) error {
	if n.err != nil {
		return n.err
	}
	n.codes = append(n.codes, sentMail{to, firstName, code})
	return nil
}

func (n *fakeNotifier) SendPasswordReset(_ context.Context, to, firstName, link string) error {
	if n.err != nil {
		return n.err
	}
	n.resets = append(n.resets, sentMail{to, firstName, link})
	return nil
}

type fakePublisher struct {
	events []events.Event
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, e events.Event) error {
	p.events = append(p.events, e)
	return p.err
}

func (p *fakePublisher) types() []string {
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// fakeCipher is reversible and visibly not plaintext.
type fakeCipher struct {
	err error
}

func (c fakeCipher) EncryptField(s string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return "enc:" + reverse(s), nil
}

func (c fakeCipher) DecryptField(s string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	v, ok := strings.CutPrefix(s, "enc:")
	if !ok {
		return "", errBoom{}
	}
	return reverse(v), nil
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// -------- helpers --------

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "test-secret",
		AccessTokenValidityDuration:  15 * time.Minute,
		RefreshTokenValidityDuration: 24 * time.Hour,
		PasswordResetTokenValidity:   time.Hour,
		FrontendURL:                  "https://app.example.com",
	}
}

var nopLogger logging.Logger = logging.Nop{}
