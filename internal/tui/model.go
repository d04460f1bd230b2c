package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/navrail/navrail/internal/dispatch"
	"github.com/navrail/navrail/internal/gateway"
	"github.com/navrail/navrail/internal/navbar"
	"github.com/navrail/navrail/internal/payload"
	"github.com/navrail/navrail/internal/screen"
	"github.com/navrail/navrail/internal/stream"
)

// entry is one level of the simulated host stack.
type entry struct {
	name    string
	route   string
	overlay bool
	bar     navbar.NavigationBar
	mount   *dispatch.Mount
}

// Model drives the simulator. It plays the host runtime: navigation and
// update requests arrive through the HostChannel, key presses feed the
// button-press stream the way a native bar would.
type Model struct {
	registry   *screen.Registry
	presses    *stream.Stream
	dispatcher *dispatch.Dispatcher
	gateway    *gateway.Gateway
	channel    *HostChannel

	start string
	stack []entry
	log   []string

	input  textinput.Model
	typing bool

	width  int
	height int

	result   string
	finished bool
}

// errMsg carries a gateway or mount error into the update loop.
type errMsg struct{ err error }

// ReloadMsg swaps in a registry rebuilt from changed configuration. Live
// stack entries are remounted against the new descriptors.
type ReloadMsg struct {
	Registry *screen.Registry
}

// New assembles the simulator model. The gateway must already be wired
// to the same HostChannel and to a navigator over the same registry.
func New(registry *screen.Registry, presses *stream.Stream, dispatcher *dispatch.Dispatcher, gw *gateway.Gateway, channel *HostChannel, start string) *Model {
	input := textinput.New()
	input.Placeholder = "screen name"
	input.CharLimit = 64
	input.Width = 32

	return &Model{
		registry:   registry,
		presses:    presses,
		dispatcher: dispatcher,
		gateway:    gw,
		channel:    channel,
		start:      start,
		input:      input,
	}
}

// Init kicks off the host-request pump and navigates to the start screen.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.channel.wait(),
		func() tea.Msg {
			if err := m.gateway.NavigateInternal(context.Background(), m.start, nil); err != nil {
				return errMsg{err: err}
			}
			return nil
		},
	)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case navigateMsg:
		m.push(msg.req.Path, msg.req.Overlay, msg.req.NavigationBar)
		return m, m.channel.wait()

	case updateMsg:
		if e := m.entryByRoute(msg.req.Path); e != nil {
			e.bar = msg.req.NavigationBar
		}
		return m, m.channel.wait()

	case backMsg:
		if msg.req == nil {
			m.pop()
		} else {
			m.popTo(msg.req.Path)
		}
		return m, m.channel.wait()

	case finishMsg:
		m.result = msg.req.JSONPayload
		m.finished = true
		return m, tea.Quit

	case ReloadMsg:
		m.reload(msg.Registry)
		return m, nil

	case errMsg:
		m.pushLog(fmt.Sprintf("error: %v", msg.err))
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.typing {
		return m.handleTypingKey(msg)
	}

	ctx := context.Background()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "n":
		m.typing = true
		m.input.Focus()
		return m, textinput.Blink

	case "esc":
		// Host-native back: the left chevron with no button id.
		m.pop()
		return m, nil

	case "b":
		if err := m.gateway.Back(ctx); err != nil {
			m.pushLog(fmt.Sprintf("back failed: %v", err))
		}
		return m, nil

	case "f":
		p := payload.Payload{}
		if top := m.top(); top != nil {
			p["screen"] = top.name
		}
		if err := m.gateway.Finish(ctx, p); err != nil {
			m.pushLog(fmt.Sprintf("finish failed: %v", err))
		}
		return m, nil

	case "l":
		top := m.top()
		if top == nil {
			return m, nil
		}
		if top.bar.LeftButton != nil && top.bar.LeftButton.ID != "" {
			m.presses.Publish(stream.NewPress(top.bar.LeftButton.ID))
		} else {
			m.pop()
		}
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		top := m.top()
		if top == nil {
			return m, nil
		}
		idx := int(msg.String()[0] - '1')
		if idx < len(top.bar.Buttons) {
			m.presses.Publish(stream.NewPress(top.bar.Buttons[idx].ID))
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleTypingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := m.input.Value()
		m.input.Reset()
		m.input.Blur()
		m.typing = false

		if name == "" {
			return m, nil
		}
		if err := m.gateway.NavigateInternal(context.Background(), name, nil); err != nil {
			m.pushLog(fmt.Sprintf("navigate %q failed: %v", name, err))
		}
		return m, nil

	case "esc":
		m.input.Reset()
		m.input.Blur()
		m.typing = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// push mounts the screen that owns route and makes it the top of the
// simulated stack.
func (m *Model) push(route string, overlay bool, bar navbar.NavigationBar) {
	desc := m.screenByRoute(route)
	if desc == nil {
		m.pushLog(fmt.Sprintf("navigate to unregistered route %q", route))
		return
	}

	e := entry{name: desc.Name(), route: route, overlay: overlay, bar: bar}

	mount, err := m.mount(desc)
	if err != nil {
		m.pushLog(fmt.Sprintf("mount %s failed: %v", desc.Name(), err))
	} else {
		e.mount = mount
	}

	m.stack = append(m.stack, e)
	m.pushLog(fmt.Sprintf("pushed %s (route %s)", desc.Name(), route))
}

// mount registers a live instance with the dispatcher, logging presses
// the instance handles.
func (m *Model) mount(desc *screen.Descriptor) (*dispatch.Mount, error) {
	name := desc.Name()
	return m.dispatcher.Mount(context.Background(), desc,
		dispatch.WithHandler(func(localID string) {
			m.pushLog(fmt.Sprintf("%s handled button %q", name, localID))
		}))
}

// reload swaps the registry and navigator for ones rebuilt from changed
// configuration, then remounts every stack entry against its new
// descriptor. Entries whose route disappeared keep their old mount.
func (m *Model) reload(registry *screen.Registry) {
	if registry == nil {
		return
	}
	m.registry = registry
	m.gateway.SetNavigator(gateway.NewNavigator(registry))

	for i := range m.stack {
		e := &m.stack[i]

		desc := m.screenByRoute(e.route)
		if desc == nil {
			m.pushLog(fmt.Sprintf("route %q no longer configured", e.route))
			continue
		}

		if e.mount != nil {
			e.mount.Unmount()
			e.mount = nil
		}
		mount, err := m.mount(desc)
		if err != nil {
			m.pushLog(fmt.Sprintf("remount %s failed: %v", desc.Name(), err))
			continue
		}
		e.mount = mount
		e.name = desc.Name()
	}

	m.pushLog("configuration reloaded")
}

// pop unmounts and removes the top entry. The bottom entry stays put,
// matching a host that refuses to pop its root.
func (m *Model) pop() {
	if len(m.stack) <= 1 {
		return
	}
	top := m.stack[len(m.stack)-1]
	if top.mount != nil {
		top.mount.Unmount()
	}
	m.stack = m.stack[:len(m.stack)-1]
	m.pushLog(fmt.Sprintf("popped back to %s", m.stack[len(m.stack)-1].name))
}

// popTo pops entries until route is on top. An unknown route pops
// nothing.
func (m *Model) popTo(route string) {
	found := false
	for _, e := range m.stack {
		if e.route == route {
			found = true
			break
		}
	}
	if !found {
		m.pushLog(fmt.Sprintf("back to unknown route %q ignored", route))
		return
	}
	for len(m.stack) > 1 && m.top().route != route {
		m.pop()
	}
}

// entryByRoute returns the topmost stack entry for the route, or nil.
func (m *Model) entryByRoute(route string) *entry {
	for i := len(m.stack) - 1; i >= 0; i-- {
		if m.stack[i].route == route {
			return &m.stack[i]
		}
	}
	return nil
}

func (m *Model) top() *entry {
	if len(m.stack) == 0 {
		return nil
	}
	return &m.stack[len(m.stack)-1]
}

func (m *Model) screenByRoute(route string) *screen.Descriptor {
	for _, name := range m.registry.Names() {
		d, _ := m.registry.Get(name)
		if d.Route() == route {
			return d
		}
	}
	return nil
}

func (m *Model) pushLog(line string) {
	m.log = append(m.log, line)
	if len(m.log) > 50 {
		m.log = m.log[len(m.log)-50:]
	}
}

// Result returns the serialized finish payload, if the flow finished.
func (m *Model) Result() (string, bool) {
	return m.result, m.finished
}
