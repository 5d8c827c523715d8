package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  map[string][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	if f.args == nil {
		f.args = map[string][]string{}
	}
	f.args[name] = args
	return nil
}

func (f *fakeExec) isLoggedIn() bool                   { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register", nil) }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) WhoAmI(ctx context.Context) error  { return f.record("whoami", nil) }
func (f *fakeExec) Popular(ctx context.Context) error { return f.record("popular", nil) }
func (f *fakeExec) Favs(ctx context.Context) error    { return f.record("favs", nil) }
func (f *fakeExec) Search(ctx context.Context, args []string) error {
	return f.record("search", args)
}
func (f *fakeExec) Year(ctx context.Context, args []string) error  { return f.record("year", args) }
func (f *fakeExec) Show(ctx context.Context, args []string) error  { return f.record("show", args) }
func (f *fakeExec) Fav(ctx context.Context, args []string) error   { return f.record("fav", args) }
func (f *fakeExec) Unfav(ctx context.Context, args []string) error { return f.record("unfav", args) }

func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = strings.TrimSpace(strings.ReplaceAll(strings.TrimSpace(toString(v)), "\n", " "))
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	capturePrint(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"search the matrix 2",
		"popular",
		"year 1999",
		"show tt0133093",
		"fav tt0133093",
		"favs",
		"unfav tt0133093",
		"whoami",
		"foobar",
		"",
		"logout",
		"exit",
		"register",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	want := []string{"login", "search", "popular", "year", "show", "fav", "favs", "unfav", "whoami", "logout"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	if got := strings.Join(exec.args["search"], " "); got != "the matrix 2" {
		t.Fatalf("search args: %q", got)
	}
	if got := exec.args["fav"]; len(got) != 1 || got[0] != "tt0133093" {
		t.Fatalf("fav args: %v", got)
	}
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := capturePrint(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("help\nlogin\nhelp\nquit\n")))

	var helps []string
	for _, l := range *lines {
		if strings.HasPrefix(l, "Available commands") {
			helps = append(helps, l)
		}
	}
	if len(helps) != 2 || helps[0] != helpGuest || helps[1] != helpLoggedIn {
		t.Fatalf("unexpected help output: %v", helps)
	}
}

func TestRunREPL_EOFStops(t *testing.T) {
	lines := capturePrint(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(bob)" }, bufio.NewScanner(strings.NewReader("")))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if len(*lines) != 1 || (*lines)[0] != "mk (bob)>" {
		t.Fatalf("unexpected prompt: %v", *lines)
	}
}
