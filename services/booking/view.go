package booking

// WithSelectedTime keeps an appointment's own time visible on its viewing screen.
// When selected is not among times it is placed at the front of a new list.
func WithSelectedTime(times []string, selected string) []string {
	if selected == "" || containsTime(times, selected) {
		return times
	}
	out := make([]string, 0, len(times)+1)
	out = append(out, selected)
	return append(out, times...)
}
