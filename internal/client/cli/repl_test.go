package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	err   error
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool                      { return f.loggedIn }
func (f *fakeExec) Signup(ctx context.Context) error      { return f.record("signup") }
func (f *fakeExec) Verify(ctx context.Context) error      { return f.record("verify") }
func (f *fakeExec) Resend(ctx context.Context) error      { return f.record("resend") }
func (f *fakeExec) Forgot(ctx context.Context) error      { return f.record("forgot") }
func (f *fakeExec) Reset(ctx context.Context) error       { return f.record("reset") }
func (f *fakeExec) Me(ctx context.Context) error          { return f.record("me") }
func (f *fakeExec) Details(ctx context.Context) error     { return f.record("details") }
func (f *fakeExec) Cards(ctx context.Context) error       { return f.record("cards") }
func (f *fakeExec) AddCard(ctx context.Context) error     { return f.record("addcard") }
func (f *fakeExec) EditCard(ctx context.Context) error    { return f.record("editcard") }
func (f *fakeExec) SetDefault(ctx context.Context) error  { return f.record("setdefault") }
func (f *fakeExec) DeleteCard(ctx context.Context) error  { return f.record("deletecard") }
func (f *fakeExec) Profile(ctx context.Context) error     { return f.record("profile") }
func (f *fakeExec) EditProfile(ctx context.Context) error { return f.record("editprofile") }

func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}

func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	captureOutput(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"addcard",
		"cards",
		"setdefault",
		"editprofile",
		"details",
		"foobar",
		"logout",
		"exit",
		"me",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	want := []string{"login", "addcard", "cards", "setdefault", "editprofile", "details", "logout"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("got calls %v, want %v", exec.calls, want)
	}
}

func TestRunREPL_PrintsErrorsAndContinues(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{err: errors.New("server unavailable")}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("me\nprofile")))

	if len(exec.calls) != 2 {
		t.Fatalf("expected both commands to run, got %v", exec.calls)
	}
	if !strings.Contains(strings.Join(*out, ""), "Error: server unavailable") {
		t.Fatalf("error not printed: %q", *out)
	}
}

func TestRunREPL_UnknownAndQuit(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("get\nquit\nme\n")))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if !strings.Contains(strings.Join(*out, ""), "Unknown command: get") {
		t.Fatalf("unknown command not reported: %q", *out)
	}
}
