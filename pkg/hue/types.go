package hue

// State is the bridge-owned state block of a light. Hue, brightness and
// saturation are omitted by the bridge for lights that don't support them.
type State struct {
	On  bool `json:"on"`
	Hue *int `json:"hue,omitempty"`
	Bri *int `json:"bri,omitempty"`
	Sat *int `json:"sat,omitempty"`
}

// Light is a single light as reported by the bridge's v1 API.
type Light struct {
	Name      string `json:"name"`
	SWVersion string `json:"swversion"`
	State     State  `json:"state"`
}

// StateUpdate carries the light attributes to change. Nil fields are
// left untouched on the bridge; an update with no fields set is a no-op.
type StateUpdate struct {
	On         *bool
	Hue        *int
	Brightness *int
	Saturation *int
}

// wireBody translates the update into the bridge's wire field names.
// Returns nil when no fields are set.
func (u StateUpdate) wireBody() map[string]any {
	body := make(map[string]any)
	if u.On != nil {
		body["on"] = *u.On
	}
	if u.Hue != nil {
		body["hue"] = *u.Hue
	}
	if u.Brightness != nil {
		body["bri"] = *u.Brightness
	}
	if u.Saturation != nil {
		body["sat"] = *u.Saturation
	}
	if len(body) == 0 {
		return nil
	}
	return body
}

// pairingResult is one element of the list the bridge returns from POST /api.
type pairingResult struct {
	Success *pairingSuccess `json:"success"`
	Error   *pairingError   `json:"error"`
}

type pairingSuccess struct {
	Username string `json:"username"`
}

type pairingError struct {
	Type        int    `json:"type"`
	Description string `json:"description"`
}
