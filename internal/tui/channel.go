// Package tui is an interactive host-runtime simulator. It presents the
// registered screens as a terminal UI: the current screen's navigation
// bar is rendered from the requests a real host would receive, number
// keys fire qualified button presses into the shared stream, and text
// input drives internal navigation through the gateway.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/navrail/navrail/internal/host"
)

// HostChannel implements host.Channel by queueing each request as a
// bubbletea message for the simulator model to consume.
type HostChannel struct {
	msgs chan tea.Msg
}

type navigateMsg struct{ req host.NavigateRequest }
type updateMsg struct{ req host.UpdateRequest }
type backMsg struct{ req *host.BackRequest }
type finishMsg struct{ req host.FinishRequest }

// NewHostChannel creates a channel with room to absorb the requests a
// single model update can produce without blocking.
func NewHostChannel() *HostChannel {
	return &HostChannel{msgs: make(chan tea.Msg, 32)}
}

func (c *HostChannel) send(ctx context.Context, msg tea.Msg) error {
	select {
	case c.msgs <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Update queues a bar update.
func (c *HostChannel) Update(ctx context.Context, req host.UpdateRequest) error {
	return c.send(ctx, updateMsg{req: req})
}

// Navigate queues a push.
func (c *HostChannel) Navigate(ctx context.Context, req host.NavigateRequest) error {
	return c.send(ctx, navigateMsg{req: req})
}

// Back queues a pop; req may be nil for an unqualified back.
func (c *HostChannel) Back(ctx context.Context, req *host.BackRequest) error {
	return c.send(ctx, backMsg{req: req})
}

// Finish queues a flow dismissal.
func (c *HostChannel) Finish(ctx context.Context, req host.FinishRequest) error {
	return c.send(ctx, finishMsg{req: req})
}

// wait returns a command that delivers the next queued host request to
// the model.
func (c *HostChannel) wait() tea.Cmd {
	return func() tea.Msg {
		return <-c.msgs
	}
}
