package bookings

// LogNotifier показывает сообщения через журнал (для headless режима)
type LogNotifier struct {
	logger Logger
}

func NewLogNotifier(logger Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Alert пишет сообщение пользователю на уровне WARN
func (n *LogNotifier) Alert(message string) {
	n.logger.Warn("ALERT: %s", message)
}
