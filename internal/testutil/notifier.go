package testutil

import "sync"

// Toast is one recorded notification.
type Toast struct {
	Kind    string
	Message string
}

// Notifier records notifications instead of displaying them.
type Notifier struct {
	mu     sync.Mutex
	Toasts []Toast
}

func (n *Notifier) Success(msg string) { n.record("success", msg) }
func (n *Notifier) Error(msg string)   { n.record("error", msg) }
func (n *Notifier) Warning(msg string) { n.record("warning", msg) }
func (n *Notifier) Message(msg string) { n.record("default", msg) }

func (n *Notifier) record(kind, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Toasts = append(n.Toasts, Toast{Kind: kind, Message: msg})
}

// Last returns the most recent toast, or the zero Toast.
func (n *Notifier) Last() Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.Toasts) == 0 {
		return Toast{}
	}
	return n.Toasts[len(n.Toasts)-1]
}
