package store

// Settings holds the user-tunable behavior toggles.
type Settings struct {
	Vibrate            bool `json:"vibrate"`
	VibrateMs          int  `json:"vibrateMs"`
	AutoResetAfterLog  bool `json:"autoResetAfterLog"`
	HapticsOnDecrement bool `json:"hapticsOnDecrement"`
}

const (
	// VibrateMsMin and VibrateMsMax bound the haptic pulse length.
	VibrateMsMin = 0
	VibrateMsMax = 50
)

// DefaultSettings returns the built-in defaults. Persisted settings are
// merged over these field by field, so blobs written by older versions that
// miss newer fields still load.
func DefaultSettings() Settings {
	return Settings{
		Vibrate:            true,
		VibrateMs:          15,
		AutoResetAfterLog:  false,
		HapticsOnDecrement: false,
	}
}

// Clamp forces out-of-range values back into their documented bounds.
func (s Settings) Clamp() Settings {
	if s.VibrateMs < VibrateMsMin {
		s.VibrateMs = VibrateMsMin
	}
	if s.VibrateMs > VibrateMsMax {
		s.VibrateMs = VibrateMsMax
	}
	return s
}
