package core

import "strings"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free-form or enumerated parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value that shaped a run.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the parameters of one run for logs and captions.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// String renders the snapshot as space-separated key=value pairs in group order.
func (s ParameterSnapshot) String() string {
	var b strings.Builder
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(p.Key)
			b.WriteByte('=')
			b.WriteString(p.Value)
		}
	}
	return b.String()
}
