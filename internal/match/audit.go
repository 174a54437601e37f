package match

// AuditLog collects match decisions in order for operator review.
type AuditLog struct {
	lines []string
}

// Append adds a line to the log.
func (l *AuditLog) Append(line string) {
	l.lines = append(l.lines, line)
}

// Lines returns the collected log lines in append order.
func (l *AuditLog) Lines() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
