package dispatch

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/dshills/discordkit/command"
	"github.com/dshills/discordkit/correlate"
	"github.com/dshills/discordkit/event"
)

// Handler is the central event switchboard. A platform adapter calls one
// Handle method per inbound event; the Handler resolves the responsible
// command or component callback and submits it to the executor. Construct
// through Builder.
type Handler struct {
	registry *Registry
	buttons  *ButtonRegistry
	selects  *correlate.Cache[ComponentFunc]
	modals   *correlate.Cache[ModalFunc]
	executor *Executor
	prefix   string
	log      *slog.Logger
	metrics  *Metrics

	// owners may be backfilled once at ready time, so gating is evaluated
	// at dispatch time against the current list.
	ownerMu sync.RWMutex
	owners  []string
}

// Registry exposes the command registry, mainly for help-text generation.
func (h *Handler) Registry() *Registry {
	return h.registry
}

// Buttons exposes the button correlation registry so paginators and other
// long-lived sessions can register their component prefixes.
func (h *Handler) Buttons() *ButtonRegistry {
	return h.buttons
}

// Metrics returns the dispatch statistics collector, or nil when metrics
// are disabled.
func (h *Handler) Metrics() *Metrics {
	return h.metrics
}

// Prefix returns the configured chat command prefix.
func (h *Handler) Prefix() string {
	return h.prefix
}

// Wait blocks until every submitted invocation has finished.
func (h *Handler) Wait() {
	h.executor.Wait()
}

// HandleMessage routes a free-text message. Messages from bots, without the
// prefix, or matching no registered chat command are dropped silently.
func (h *Handler) HandleMessage(ev event.Message) {
	if ev.FromBot || !strings.HasPrefix(ev.Content, h.prefix) {
		return
	}

	name, args := splitChat(ev.Content, h.prefix)
	cmd := h.registry.Resolve(command.KindChat, name)
	if cmd == nil {
		return
	}

	if cmd.OwnerOnly && !h.isOwner(ev.AuthorID) {
		h.log.Warn("owner-only command denied",
			"command", cmd.Name, "user", ev.AuthorID, "user_name", ev.AuthorName)
		return
	}

	h.log.Debug("chat command used",
		"command", cmd.Name, "user", ev.AuthorID, "user_name", ev.AuthorName)
	h.executor.Submit(cmd.Name, func() error {
		return cmd.Chat(ev, args)
	}, messageFallback(ev.Responder))
}

// HandleCommand routes a structured command invocation by exact full-name
// match.
func (h *Handler) HandleCommand(ev event.CommandInvocation) {
	cmd := h.registry.Resolve(command.KindSlash, ev.Name)
	if cmd == nil {
		return
	}

	h.log.Debug("slash command used",
		"command", cmd.Name, "user", ev.UserID, "user_name", ev.UserName)
	h.executor.Submit(cmd.Name, func() error {
		return cmd.Slash(ev)
	}, interactionFallback(ev.Responder))
}

// HandleUserContext routes a user context-menu invocation.
func (h *Handler) HandleUserContext(ev event.ContextInvocation) {
	h.handleContext(command.KindUserContext, ev)
}

// HandleMessageContext routes a message context-menu invocation.
func (h *Handler) HandleMessageContext(ev event.ContextInvocation) {
	h.handleContext(command.KindMessageContext, ev)
}

func (h *Handler) handleContext(kind command.Kind, ev event.ContextInvocation) {
	cmd := h.registry.Resolve(kind, ev.Name)
	if cmd == nil {
		return
	}

	h.log.Debug("context command used",
		"command", cmd.Name, "kind", kind.String(), "user", ev.UserID)
	h.executor.Submit(cmd.Name, func() error {
		return cmd.Context(ev)
	}, interactionFallback(ev.Responder))
}

// HandleAutocomplete routes an autocomplete request. Requests for commands
// without the Autocomplete capability are dropped; failures are logged
// only, since autocomplete UIs have no room for error text.
func (h *Handler) HandleAutocomplete(ev event.Autocomplete) {
	cmd := h.registry.Resolve(command.KindSlash, ev.CommandName)
	if cmd == nil {
		return
	}
	fn := cmd.AutocompleteHandler()
	if fn == nil {
		h.log.Debug("autocomplete request for command without the capability",
			"command", cmd.Name)
		return
	}

	h.executor.Submit(cmd.Name, func() error {
		return fn(ev)
	}, nil)
}

// HandleComponent routes a button press or select-menu activation. Buttons
// correlate by component-id prefix; an unmatched press gets an ephemeral
// "no longer valid" reply because the owning session may have been evicted.
// Selects correlate by exact id and unmatched activations are dropped.
func (h *Handler) HandleComponent(ev event.ComponentActivation) {
	switch ev.Type {
	case event.ComponentButton:
		fn, ok := h.buttons.Resolve(ev.ComponentID)
		if !ok {
			h.log.Debug("button press matched no session", "component", ev.ComponentID)
			if err := ev.Responder.Reply(NotValidReply, true); err != nil {
				h.log.Error("stale-button reply failed", "error", err)
			}
			return
		}
		h.executor.Submit("button "+ev.ComponentID, func() error {
			return fn(ev)
		}, interactionFallback(ev.Responder))

	case event.ComponentSelect:
		fn, ok := h.selects.Get(ev.ComponentID)
		if !ok {
			h.log.Debug("select activation matched no menu", "component", ev.ComponentID)
			return
		}
		h.executor.Submit("select "+ev.ComponentID, func() error {
			return fn(ev)
		}, interactionFallback(ev.Responder))
	}
}

// HandleModal routes a modal submission by exact modal id; unmatched
// submissions are dropped.
func (h *Handler) HandleModal(ev event.ModalSubmit) {
	fn, ok := h.modals.Get(ev.ModalID)
	if !ok {
		h.log.Debug("modal submission matched no modal", "modal", ev.ModalID)
		return
	}
	h.executor.Submit("modal "+ev.ModalID, func() error {
		return fn(ev)
	}, interactionFallback(ev.Responder))
}

// HandleReady pushes structured command descriptors to the platform and,
// when no owner ids were configured, resolves the application owner once.
func (h *Handler) HandleReady(ev event.Ready) {
	specs := make([]event.CommandSpec, 0)
	for _, kind := range []command.Kind{
		command.KindSlash, command.KindUserContext, command.KindMessageContext,
	} {
		for _, cmd := range h.registry.Commands(kind) {
			if spec, ok := cmd.Spec(); ok {
				specs = append(specs, spec)
			}
		}
	}
	if ev.Registrar != nil {
		if err := ev.Registrar.PushCommands(specs); err != nil {
			h.log.Error("pushing commands to the platform failed", "error", err)
		} else {
			h.log.Info("pushed commands to the platform", "count", len(specs))
		}
	}

	h.ownerMu.RLock()
	haveOwners := len(h.owners) > 0
	h.ownerMu.RUnlock()

	if !haveOwners && ev.Owner != nil {
		id, err := ev.Owner.AppOwnerID()
		if err != nil {
			h.log.Error("application owner lookup failed", "error", err)
			return
		}
		h.ownerMu.Lock()
		h.owners = append(h.owners, id)
		h.ownerMu.Unlock()
		h.log.Warn("no owner ids were configured; using the application owner", "owner", id)
	}
}

// isOwner reports whether id is on the owner list. Evaluated per dispatch
// so owners discovered at ready time gate correctly.
func (h *Handler) isOwner(id string) bool {
	h.ownerMu.RLock()
	defer h.ownerMu.RUnlock()
	for _, owner := range h.owners {
		if strings.EqualFold(owner, id) {
			return true
		}
	}
	return false
}

// Owners returns a copy of the current owner id list.
func (h *Handler) Owners() []string {
	h.ownerMu.RLock()
	defer h.ownerMu.RUnlock()
	return append([]string(nil), h.owners...)
}
