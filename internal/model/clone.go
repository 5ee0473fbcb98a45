package model

// Clone returns a deep copy of the model. Every transforming entry point in
// the forecast core clones exactly once, here, and mutates only the copy.
func (m *Model) Clone() *Model {
	if m == nil {
		return nil
	}
	out := &Model{
		Accounts:         append([]Account(nil), m.Accounts...),
		StartingBalances: append([]StartingBalance(nil), m.StartingBalances...),
		Settings:         m.Settings.clone(),
		ModifiedAt:       m.ModifiedAt,
	}
	for _, r := range m.Rules {
		out.Rules = append(out.Rules, r.clone())
	}
	for _, o := range m.OneOffs {
		out.OneOffs = append(out.OneOffs, o.clone())
	}
	for _, d := range m.Debts {
		out.Debts = append(out.Debts, d.clone())
	}
	return out
}

func (r Rule) clone() Rule {
	out := r
	out.Tags = append([]string(nil), r.Tags...)
	if r.Enabled != nil {
		v := *r.Enabled
		out.Enabled = &v
	}
	if r.ValidFrom != nil {
		v := *r.ValidFrom
		out.ValidFrom = &v
	}
	if r.ValidTo != nil {
		v := *r.ValidTo
		out.ValidTo = &v
	}
	if r.Recurrence != nil {
		v := *r.Recurrence
		out.Recurrence = &v
	}
	return out
}

func (o OneOff) clone() OneOff {
	out := o
	out.Tags = append([]string(nil), o.Tags...)
	return out
}

func (d Debt) clone() Debt {
	out := d
	out.LumpSums = append([]LumpSum(nil), d.LumpSums...)
	return out
}

func (s Settings) clone() Settings {
	out := s
	out.Display = cloneAnyMap(s.Display)
	return out
}

func cloneAnyMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		if nested, ok := v.(map[string]any); ok {
			out[k] = cloneAnyMap(nested)
			continue
		}
		out[k] = v
	}
	return out
}
