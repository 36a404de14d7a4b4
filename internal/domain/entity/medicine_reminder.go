package entity

// Frequency is how often a medicine has to be taken
type Frequency string

const (
	FrequencyDaily      Frequency = "daily"
	FrequencyTwiceDaily Frequency = "twice-daily"
	FrequencyWeekly     Frequency = "weekly"
	FrequencyMonthly    Frequency = "monthly"
)

var Frequencies = []Frequency{FrequencyDaily, FrequencyTwiceDaily, FrequencyWeekly, FrequencyMonthly}

func (f Frequency) Valid() bool {
	for _, known := range Frequencies {
		if f == known {
			return true
		}
	}
	return false
}

type MedicineReminder struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Dosage      string    `json:"dosage"`
	Frequency   Frequency `json:"frequency"`
	Description string    `json:"description"`
	NotifyAt    Timestamp `json:"notifyAt"`
}

func (m MedicineReminder) Identifier() string {
	return m.ID
}
