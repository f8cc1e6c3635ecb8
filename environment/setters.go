package environment

import "time"

// SetStatus returns an UpdateSetter that sets the environment's status.
func SetStatus(status Status) UpdateSetter {
	return func(e *Environment) error {
		if !status.IsValid() {
			return ErrInvalidStatus
		}
		e.Status = status
		return nil
	}
}

// SetURL returns an UpdateSetter that sets the environment's URL.
func SetURL(url string) UpdateSetter {
	return func(e *Environment) error {
		if url == "" {
			return ErrInvalidEnvironmentURL
		}
		e.URL = url
		return nil
	}
}

// SetLastChecked returns an UpdateSetter that sets the last checked time.
func SetLastChecked(t time.Time) UpdateSetter {
	return func(e *Environment) error {
		e.LastChecked = t
		return nil
	}
}
