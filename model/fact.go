package model

// FactValue is the outcome of evaluating one fact.
type FactValue struct {
	Name  string
	Value string
	// Resolved is false when the fact has no value (Facter's undef).
	Resolved bool
	// Suitable is false when confinement rejected the fact before evaluation.
	Suitable bool
	// Reason describes why a value is absent. Diagnostic only.
	Reason string
}

// FactsReport is the machine-readable form of a resolution run.
type FactsReport map[string]string

// Report collects the resolved facts into a name/value map. Absent facts are left out.
func Report(values []FactValue) FactsReport {
	out := FactsReport{}
	for _, v := range values {
		if v.Resolved {
			out[v.Name] = v.Value
		}
	}
	return out
}
