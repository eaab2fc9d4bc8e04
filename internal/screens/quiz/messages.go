package quiz

import "time"

// tickMsg is sent every second to refresh the session clock. The clock
// itself is read from Options.Now.
type tickMsg time.Time
