package memory

// ObjectSpec is the serialized form of a native object.
// Missing fields, references and collections are null.
type ObjectSpec struct {
	Id   string `json:"id"`
	Type string `json:"type"`
	Root bool   `json:"root,omitempty"`

	Fields      map[string]any      `json:"fields,omitempty"`
	Objects     map[string]string   `json:"objects,omitempty"`
	Collections map[string][]string `json:"collections,omitempty"`
}

// SpaceSpec is the serialized form of an object space.
type SpaceSpec struct {
	Objects []ObjectSpec `json:"objects"`
}
