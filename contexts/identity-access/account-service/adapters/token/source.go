package tokenadapter

import (
	platformtoken "dailytrack/internal/platform/token"
)

// Source bridges the platform token service into the module's TokenSource
// port so application code stays free of JWT details.
type Source struct {
	Service *platformtoken.Service
}

func (s Source) Issue(subjectID int64, username string) (string, error) {
	return s.Service.Issue(platformtoken.Claims{
		SubjectID: subjectID,
		Username:  username,
	})
}

func (s Source) Refresh(raw string) (string, error) {
	return s.Service.Refresh(raw)
}
