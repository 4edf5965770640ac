package coordinator

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lexibar/internal/ui/services/interaction"
)

// OnScroll records a scroll position of the document under the bar.
// Events are coalesced: at most one frame is in flight and it samples the latest position.
func (c *Controller) OnScroll(y float64, documentHeight, viewportHeight int) tea.Cmd {
	c.pendingY = y
	c.maxScroll = float64(documentHeight - viewportHeight)
	if c.frameInFlight {
		return nil
	}
	c.frameSeq++
	c.frameInFlight = true
	return c.after(c.cfg.Scroll.Frame(), frameMsg{seq: c.frameSeq})
}

// Progress returns the current scroll progress in [0,1]
func (c *Controller) Progress() float64 {
	return progress(c.pendingY, c.maxScroll)
}

func progress(y, maxScroll float64) float64 {
	if maxScroll < 1 {
		maxScroll = 1
	}
	p := y / maxScroll
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (c *Controller) handleFrame(msg frameMsg) tea.Cmd {
	if msg.seq != c.frameSeq || !c.frameInFlight {
		return nil
	}
	c.frameInFlight = false

	now := c.nowMs()
	c.Scroll.OnScroll(c.pendingY, now)
	frame := c.evaluateScroll(now)

	c.idleSeq++
	return tea.Batch(
		frame,
		c.after(c.cfg.Scroll.IdleClear(), idleMsg{seq: c.idleSeq}),
		c.scheduleCooldown(now),
	)
}

// handleIdle clears the velocity window after a quiet period
func (c *Controller) handleIdle(msg idleMsg) tea.Cmd {
	if msg.seq != c.idleSeq {
		return nil
	}
	now := c.nowMs()
	if !c.Scroll.IdleDue(now) {
		return nil
	}
	c.Scroll.Clear(now)
	return tea.Batch(c.evaluateScroll(now), c.scheduleCooldown(now))
}

// handleCooldown re-evaluates the threshold once momentum has been released
func (c *Controller) handleCooldown(msg cooldownMsg) tea.Cmd {
	if msg.seq != c.cooldownSeq {
		return nil
	}
	now := c.nowMs()
	if c.Scroll.InMomentum(now) {
		return c.scheduleCooldown(now)
	}
	return c.evaluateScroll(now)
}

func (c *Controller) evaluateScroll(now int64) tea.Cmd {
	return c.apply(interaction.ScrollTick{
		Progress: c.Progress(),
		Momentum: c.Scroll.InMomentum(now),
	})
}

// scheduleCooldown arms a timer for a pending momentum release, superseding any earlier one
func (c *Controller) scheduleCooldown(now int64) tea.Cmd {
	until := c.Scroll.CooldownUntil()
	if until == 0 {
		return nil
	}
	c.cooldownSeq++
	wait := time.Duration(until-now) * time.Millisecond
	if wait < 0 {
		wait = 0
	}
	return c.after(wait, cooldownMsg{seq: c.cooldownSeq})
}
