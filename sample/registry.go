package sample

import "errors"

// ErrUnsupportedLabelCount reports a third distinct label in a binary dataset
var ErrUnsupportedLabelCount = errors.New("more than two distinct labels in samples")

// Registry maps label strings to the binary class codes 0 and 1.
// Codes are assigned first seen first: the first distinct label becomes
// class 0, the second becomes class 1.
type Registry struct {
	labels []string
}

// Code resolves label to its class code, registering it if unseen.
// A third distinct label fails with ErrUnsupportedLabelCount.
func (r *Registry) Code(label string) (int, error) {
	for code, known := range r.labels {
		if known == label {
			return code, nil
		}
	}
	if len(r.labels) >= 2 {
		return 0, ErrUnsupportedLabelCount
	}
	r.labels = append(r.labels, label)
	return len(r.labels) - 1, nil
}

// Label is the reverse lookup of Code
func (r *Registry) Label(code int) (string, error) {
	if code < 0 || code >= len(r.labels) {
		return "", errors.New("class code not registered")
	}
	return r.labels[code], nil
}

// Labels returns the registered labels in code order
func (r *Registry) Labels() (labels []string) {
	labels = make([]string, len(r.labels))
	copy(labels, r.labels)
	return
}

// Len gets the number of registered labels (at most 2)
func (r *Registry) Len() int {
	return len(r.labels)
}
