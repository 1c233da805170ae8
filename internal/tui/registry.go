package tui

// Popup is anything that can be dismissed when another popup opens.
type Popup interface {
	// ClosePopup hides the popup without applying its pending value.
	ClosePopup()
}

// PopupRegistry tracks every popup on the form and enforces that at most
// one of them is open at a time.
type PopupRegistry struct {
	popups []Popup
	open   Popup
}

// NewPopupRegistry creates an empty registry.
func NewPopupRegistry() *PopupRegistry {
	return &PopupRegistry{}
}

// Register adds a popup to the registry. Registering the same popup twice
// is a no-op.
func (r *PopupRegistry) Register(p Popup) {
	if p == nil {
		return
	}
	for _, existing := range r.popups {
		if existing == p {
			return
		}
	}
	r.popups = append(r.popups, p)
}

// Unregister removes a popup. If it was the open one, the open slot is
// cleared. Unregistering a popup that was never registered is a no-op,
// so destroy paths can call it unconditionally.
func (r *PopupRegistry) Unregister(p Popup) {
	if r.open == p {
		r.open = nil
	}
	for i, existing := range r.popups {
		if existing == p {
			r.popups = append(r.popups[:i], r.popups[i+1:]...)
			return
		}
	}
}

// WillOpen marks p as the open popup, closing whichever popup was open
// before. Callers invoke it right before showing their own popup.
func (r *PopupRegistry) WillOpen(p Popup) {
	if r.open != nil && r.open != p {
		r.open.ClosePopup()
	}
	r.open = p
}

// DidClose clears the open slot if p holds it. Popups call it from their
// own close path so the registry never points at a hidden popup.
func (r *PopupRegistry) DidClose(p Popup) {
	if r.open == p {
		r.open = nil
	}
}

// CloseAll closes the open popup, if any.
func (r *PopupRegistry) CloseAll() {
	if r.open != nil {
		r.open.ClosePopup()
		r.open = nil
	}
}

// Open returns the currently open popup, or nil.
func (r *PopupRegistry) Open() Popup {
	return r.open
}

// Len returns the number of registered popups.
func (r *PopupRegistry) Len() int {
	return len(r.popups)
}
