package form

// State tracks a form's initial values, its current values and the rule
// violations of the current values.
type State[F comparable] struct {
	Initial F
	Values  F
	Errors  Errors
}

// NewState starts a form at initial. No rules are evaluated until Update.
func NewState[F comparable](initial F) *State[F] {
	return &State[F]{
		Initial: initial,
		Values:  initial,
		Errors:  Errors{},
	}
}

// Update replaces the current values and re-evaluates rules against them.
func (s *State[F]) Update(values F, rules func(F) Errors) {
	s.Values = values
	s.Errors = rules(values)
	if s.Errors == nil {
		s.Errors = Errors{}
	}
}

// Dirty reports whether any field differs from its initial value.
func (s *State[F]) Dirty() bool {
	return s.Values != s.Initial
}

func (s *State[F]) Valid() bool {
	return len(s.Errors) == 0
}

// CanSubmit is false while a rule is violated or nothing has changed.
func (s *State[F]) CanSubmit() bool {
	return s.Valid() && s.Dirty()
}

// Error returns the message attached to field, or "".
func (s *State[F]) Error(field string) string {
	return s.Errors[field]
}
