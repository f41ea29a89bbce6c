package reminder

// Frequency is a plain string so that unknown values read from the
// store round-trip unchanged; IsDueOn treats them as never due.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

func ParseFrequency(raw string) (Frequency, error) {
	f := Frequency(raw)
	switch f {
	case FrequencyDaily, FrequencyWeekly:
		return f, nil
	}
	return "", ErrInvalidFrequency
}

func (f Frequency) String() string {
	return string(f)
}
