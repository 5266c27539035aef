package usecase

// Notifier surfaces short confirmation or failure messages to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
	Warning(message string)
	Message(message string)
}

// NopNotifier drops every message.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
func (NopNotifier) Warning(string) {}
func (NopNotifier) Message(string) {}
