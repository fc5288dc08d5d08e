package i18n

import "errors"

// Error is an error whose message is a localizable message id. Sentinel
// errors are compared by identity; templated errors wrap their sentinel so
// errors.Is still matches.
type Error struct {
	ID   string
	Data map[string]any
	base *Error
}

func NewError(id string) *Error {
	return &Error{ID: id}
}

// With returns a copy of e carrying template data. The copy matches e under
// errors.Is.
func (e *Error) With(data map[string]any) *Error {
	return &Error{ID: e.ID, Data: data, base: e}
}

func (e *Error) Error() string {
	return T(e.ID, e.Data)
}

func (e *Error) Localize(lang string) string {
	return Localize(lang, e.ID, e.Data)
}

func (e *Error) Unwrap() error {
	if e.base == nil {
		return nil
	}
	return e.base
}

// Message localizes err when it carries an *Error somewhere in its chain and
// falls back to err.Error() otherwise.
func Message(lang string, err error) string {
	var le *Error
	if errors.As(err, &le) {
		return le.Localize(lang)
	}
	return err.Error()
}
