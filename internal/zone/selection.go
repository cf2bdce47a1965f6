package zone

// Selection overrides parts of the application state. Nil fields are left as
// they are in the snapshot.
type Selection struct {
	ZoneName    *string
	MixMode     *MixMode
	TimeIndex   *int
	ClearIndex  bool
	CurrentYear *int
}

// WithSelection returns a copy of s with sel applied. The receiver is not
// modified and the country data is shared.
func (s *Snapshot) WithSelection(sel Selection) *Snapshot {
	out := *s
	app := &out.Application

	if sel.ZoneName != nil {
		app.SelectedZoneName = *sel.ZoneName
	}
	if sel.MixMode != nil {
		app.ElectricityMixMode = *sel.MixMode
	}
	if sel.ClearIndex {
		app.SelectedZoneTimeIndex = nil
	}
	if sel.TimeIndex != nil {
		idx := *sel.TimeIndex
		app.SelectedZoneTimeIndex = &idx
	}
	if sel.CurrentYear != nil {
		app.CurrentYear = *sel.CurrentYear
	}
	return &out
}
