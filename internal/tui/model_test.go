package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/navrail/navrail/internal/dispatch"
	"github.com/navrail/navrail/internal/gateway"
	"github.com/navrail/navrail/internal/navbar"
	"github.com/navrail/navrail/internal/screen"
	"github.com/navrail/navrail/internal/stream"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()

	channel := NewHostChannel()
	registry := screen.NewRegistry()

	checkout := screen.New("checkout", navbar.NavigationBar{
		Title:   "Checkout",
		Buttons: []navbar.Button{{ID: "exit", Title: "Exit"}},
	}, screen.WithUpdateChannel(channel))
	checkout.SetRoute("checkout")
	if err := registry.Register(checkout); err != nil {
		t.Fatalf("register checkout: %v", err)
	}

	profile := screen.New("profile", navbar.NavigationBar{
		Title: "Profile",
	}, screen.WithUpdateChannel(channel))
	profile.SetRoute("settings.profile")
	if err := registry.Register(profile); err != nil {
		t.Fatalf("register profile: %v", err)
	}

	presses := stream.New()
	dispatcher := dispatch.New(presses)

	gw := gateway.New(channel)
	gw.SetNavigator(gateway.NewNavigator(registry))

	return New(registry, presses, dispatcher, gw, channel, "checkout")
}

// recv pulls the next queued host request without going through the
// bubbletea runtime.
func recv(t *testing.T, m *Model) tea.Msg {
	t.Helper()
	select {
	case msg := <-m.channel.msgs:
		return msg
	case <-time.After(time.Second):
		t.Fatal("no host request queued")
		return nil
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// open navigates to the named screen and delivers the resulting
// navigate and auto-reset update requests to the model.
func open(t *testing.T, m *Model, name string) {
	t.Helper()
	if err := m.gateway.NavigateInternal(context.Background(), name, nil); err != nil {
		t.Fatalf("navigate %s: %v", name, err)
	}
	m.Update(recv(t, m)) // navigate
	m.Update(recv(t, m)) // auto-reset bar update
}

func TestNavigatePushesAndMounts(t *testing.T) {
	m := newTestModel(t)
	open(t, m, "checkout")

	top := m.top()
	if top == nil || top.name != "checkout" {
		t.Fatalf("top = %+v, want checkout", top)
	}
	if got := top.bar.Buttons[0].ID; got != "checkout.exit" {
		t.Errorf("button id = %q, want checkout.exit", got)
	}

	desc, _ := m.registry.Get("checkout")
	if got := m.dispatcher.Mounts(desc); got != 1 {
		t.Errorf("mounts = %d, want 1", got)
	}
}

func TestNumberKeyFiresOwnedHandler(t *testing.T) {
	m := newTestModel(t)
	open(t, m, "checkout")

	m.Update(runes("1"))

	last := m.log[len(m.log)-1]
	if !strings.Contains(last, `"exit"`) {
		t.Errorf("log = %q, want the decoded local id", last)
	}
}

func TestEscPopsAndUnmounts(t *testing.T) {
	m := newTestModel(t)
	open(t, m, "checkout")
	open(t, m, "profile")

	if len(m.stack) != 2 {
		t.Fatalf("stack = %d, want 2", len(m.stack))
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if len(m.stack) != 1 || m.top().name != "checkout" {
		t.Fatalf("stack after esc = %+v", m.stack)
	}

	profile, _ := m.registry.Get("profile")
	if got := m.dispatcher.Mounts(profile); got != 0 {
		t.Errorf("profile mounts = %d, want 0", got)
	}
	checkout, _ := m.registry.Get("checkout")
	if got := m.dispatcher.Mounts(checkout); got != 1 {
		t.Errorf("checkout mounts = %d, want 1", got)
	}
}

func TestRootEntryDoesNotPop(t *testing.T) {
	m := newTestModel(t)
	open(t, m, "checkout")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if len(m.stack) != 1 {
		t.Errorf("stack = %d, root should stay", len(m.stack))
	}
}

func TestFinishQuits(t *testing.T) {
	m := newTestModel(t)
	open(t, m, "checkout")

	m.Update(runes("f"))
	m.Update(recv(t, m))

	result, finished := m.Result()
	if !finished {
		t.Fatal("finish should end the flow")
	}
	if !strings.Contains(result, "checkout") {
		t.Errorf("result = %q, want the screen name in the payload", result)
	}
}

func TestReloadSwapsRegistryAndRemounts(t *testing.T) {
	m := newTestModel(t)
	open(t, m, "checkout")

	oldDesc, _ := m.registry.Get("checkout")

	next := screen.NewRegistry()
	checkout := screen.New("checkout", navbar.NavigationBar{
		Title: "Checkout v2",
		Buttons: []navbar.Button{
			{ID: "exit", Title: "Exit"},
			{ID: "help", Title: "Help"},
		},
	}, screen.WithUpdateChannel(m.channel))
	checkout.SetRoute("checkout")
	if err := next.Register(checkout); err != nil {
		t.Fatalf("register checkout: %v", err)
	}
	help := screen.New("help", navbar.NavigationBar{
		Title: "Help",
	}, screen.WithUpdateChannel(m.channel))
	help.SetRoute("help")
	if err := next.Register(help); err != nil {
		t.Fatalf("register help: %v", err)
	}

	m.Update(ReloadMsg{Registry: next})
	m.Update(recv(t, m)) // remount auto-reset update

	if got := m.top().bar.Title; got != "Checkout v2" {
		t.Errorf("title = %q, want the reloaded template's", got)
	}
	if len(m.top().bar.Buttons) != 2 {
		t.Errorf("buttons = %d, want 2", len(m.top().bar.Buttons))
	}

	if got := m.dispatcher.Mounts(oldDesc); got != 0 {
		t.Errorf("old descriptor mounts = %d, want 0", got)
	}
	newDesc, _ := next.Get("checkout")
	if got := m.dispatcher.Mounts(newDesc); got != 1 {
		t.Errorf("new descriptor mounts = %d, want 1", got)
	}

	// The navigator now resolves screens added by the reload.
	if err := m.gateway.NavigateInternal(context.Background(), "help", nil); err != nil {
		t.Fatalf("navigate help: %v", err)
	}
	m.Update(recv(t, m))
	m.Update(recv(t, m))
	if m.top().name != "help" {
		t.Errorf("top = %q, want help", m.top().name)
	}
}

func TestViewHonorsWindowHeight(t *testing.T) {
	m := newTestModel(t)
	open(t, m, "checkout")

	for i := 0; i < 20; i++ {
		m.pushLog(fmt.Sprintf("host event %d", i))
	}

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})

	view := m.View()
	if !strings.Contains(view, "host event 19") {
		t.Error("latest log line should stay visible")
	}
	if strings.Contains(view, "host event 12") {
		t.Error("log should shrink to fit the window height")
	}
}

func TestBackToPopsThroughGateway(t *testing.T) {
	m := newTestModel(t)
	open(t, m, "checkout")
	open(t, m, "profile")

	if err := m.gateway.BackTo(context.Background(), "checkout"); err != nil {
		t.Fatalf("BackTo: %v", err)
	}
	m.Update(recv(t, m))

	if m.top().name != "checkout" {
		t.Errorf("top = %q, want checkout", m.top().name)
	}
}
